// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"math"
	"time"
)

type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

type GatewayPayment struct {
	ID               string
	OrderID          string
	Status           string
	Amount           int64
	Currency         string
	Method           string
	Email            string
	Contact          string
	ErrorCode        string
	ErrorDescription string
	CreatedAt        time.Time
}

// Settled reports whether the gateway has taken the money.
func (p *GatewayPayment) Settled() bool {
	return p.Status == "captured" || p.Status == "authorized"
}

type Refund struct {
	ID        string
	PaymentID string
	Amount    int64
	Status    string
}

// Gateway amounts are in the smallest currency unit (paise).
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	Refund(ctx context.Context, paymentID string, amount int64) (*Refund, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

func toMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromMinor(amount int64) float64 {
	return float64(amount) / 100
}
