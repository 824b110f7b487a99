// AngelaMos | 2026
// dto.go

package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Amount accepts a JSON number or a numeric string and remembers the raw
// form so it can be echoed back unchanged.
type Amount struct {
	Value float64
	raw   json.RawMessage
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	text := string(b)
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.New("amount must be a number")
	}

	a.Value = v
	a.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a.raw) > 0 {
		return a.raw, nil
	}
	return json.Marshal(a.Value)
}

var (
	_ json.Marshaler   = Amount{}
	_ json.Unmarshaler = (*Amount)(nil)
)

type CreateOrderRequest struct {
	Amount    Amount `json:"amount"`
	Currency  string `json:"currency"   validate:"omitempty,len=3,alpha"`
	Receipt   string `json:"receipt"    validate:"omitempty,max=40"`
	BookingID string `json:"booking_id" validate:"omitempty,uuid"`
}

type CreateOrderResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
	Amount        Amount `json:"amount"`
	Currency      string `json:"currency"`
}

type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"   validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature"  validate:"required"`
}

type VerifyResponse struct {
	Verified  bool    `json:"verified"`
	Status    string  `json:"status"`
	OrderID   string  `json:"orderId"`
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	BookingID string  `json:"bookingId,omitempty"`
}

type StatusResponse struct {
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	OrderID   string    `json:"orderId"`
	Method    string    `json:"method"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}

// RefundRequest refunds the whole payment when Amount is nil.
type RefundRequest struct {
	PaymentID string   `json:"payment_id" validate:"required"`
	Amount    *float64 `json:"amount"     validate:"omitempty,gt=0"`
}

type RefundResponse struct {
	RefundID  string  `json:"refundId"`
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

type AllowedResponse struct {
	UserID  string   `json:"userId"`
	Allowed bool     `json:"allowed"`
	Methods []Method `json:"methods"`
}

type UpdateSettingsRequest struct {
	Currency        string   `json:"currency"        validate:"required,len=3,alpha"`
	Gateways        []string `json:"gateways"        validate:"dive,oneof=RAZORPAY"`
	Methods         []string `json:"methods"         validate:"dive,oneof=CASH CARD_RAZORPAY"`
	GlobalEnabled   bool     `json:"globalEnabled"`
	RestrictedUsers []string `json:"restrictedUsers" validate:"dive,required"`
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity map[string]interface{} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
