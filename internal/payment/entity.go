// AngelaMos | 2026
// entity.go

package payment

import (
	"time"
)

const (
	StatusCreated  = "CREATED"
	StatusPaid     = "PAID"
	StatusFailed   = "FAILED"
	StatusRefunded = "REFUNDED"
)

const (
	MethodCash         = "CASH"
	MethodCardRazorpay = "CARD_RAZORPAY"

	GatewayRazorpay = "RAZORPAY"
)

type Transaction struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	PaymentID string    `db:"payment_id"`
	BookingID *string   `db:"booking_id"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	Receipt   string    `db:"receipt"`
	Status    string    `db:"status"`
	Method    string    `db:"method"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Settings is the runtime payment configuration admins can change without
// a redeploy.
type Settings struct {
	Currency        string   `json:"currency"`
	Gateways        []string `json:"gateways"`
	Methods         []string `json:"methods"`
	GlobalEnabled   bool     `json:"globalEnabled"`
	RestrictedUsers []string `json:"restrictedUsers"`
}

func (s *Settings) Allows(userID string) bool {
	if !s.GlobalEnabled {
		return false
	}
	for _, id := range s.RestrictedUsers {
		if id == userID {
			return false
		}
	}
	return true
}

func (s *Settings) hasGateway(name string) bool {
	for _, g := range s.Gateways {
		if g == name {
			return true
		}
	}
	return false
}

func (s *Settings) hasMethod(code string) bool {
	for _, m := range s.Methods {
		if m == code {
			return true
		}
	}
	return false
}

type Method struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Gateway string `json:"gateway,omitempty"`
}

var allMethods = []Method{
	{Code: MethodCash, Name: "Cash", Type: "OFFLINE"},
	{Code: MethodCardRazorpay, Name: "Card / UPI / Netbanking", Type: "ONLINE", Gateway: GatewayRazorpay},
}

// EnabledMethods filters the known methods by the settings. Online methods
// also need their gateway switched on.
func (s *Settings) EnabledMethods() []Method {
	out := make([]Method, 0, len(allMethods))
	for _, m := range allMethods {
		if !s.hasMethod(m.Code) {
			continue
		}
		if m.Gateway != "" && !s.hasGateway(m.Gateway) {
			continue
		}
		out = append(out, m)
	}
	return out
}
