// AngelaMos | 2026
// razorpay.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"

	"github.com/cricketacademy/academy-api/internal/config"
)

// Razorpay adapts the official SDK to Gateway. The SDK has no context
// support, so ctx is only checked before each call.
type Razorpay struct {
	client        *razorpay.Client
	secret        string
	webhookSecret string
}

func NewRazorpay(cfg config.RazorpayConfig) (*Razorpay, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, errors.New("razorpay key_id and key_secret are required")
	}
	webhookSecret := cfg.WebhookSecret
	if webhookSecret == "" {
		webhookSecret = cfg.KeySecret
	}
	return &Razorpay{
		client:        razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		secret:        cfg.KeySecret,
		webhookSecret: webhookSecret,
	}, nil
}

func (r *Razorpay) CreateOrder(
	ctx context.Context,
	amount int64,
	currency, receipt string,
	notes map[string]string,
) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"payment_capture": 1,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	return &Order{
		ID:       str(body["id"]),
		Amount:   integer(body["amount"]),
		Currency: str(body["currency"]),
		Receipt:  str(body["receipt"]),
		Status:   str(body["status"]),
	}, nil
}

func (r *Razorpay) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay fetch payment %s: %w", paymentID, err)
	}

	return paymentFromMap(body), nil
}

func (r *Razorpay) Refund(ctx context.Context, paymentID string, amount int64) (*Refund, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.client.Payment.Refund(paymentID, int(amount), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay refund %s: %w", paymentID, err)
	}

	return &Refund{
		ID:        str(body["id"]),
		PaymentID: str(body["payment_id"]),
		Amount:    integer(body["amount"]),
		Status:    str(body["status"]),
	}, nil
}

func (r *Razorpay) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, r.secret)
}

func (r *Razorpay) VerifyWebhookSignature(body []byte, signature string) bool {
	return utils.VerifyWebhookSignature(string(body), signature, r.webhookSecret)
}

// paymentFromMap reads a payment entity as returned by the REST API or
// embedded in a webhook payload.
func paymentFromMap(m map[string]interface{}) *GatewayPayment {
	p := &GatewayPayment{
		ID:               str(m["id"]),
		OrderID:          str(m["order_id"]),
		Status:           str(m["status"]),
		Amount:           integer(m["amount"]),
		Currency:         str(m["currency"]),
		Method:           str(m["method"]),
		Email:            str(m["email"]),
		Contact:          str(m["contact"]),
		ErrorCode:        str(m["error_code"]),
		ErrorDescription: str(m["error_description"]),
	}
	if ts := integer(m["created_at"]); ts > 0 {
		p.CreatedAt = time.Unix(ts, 0).UTC()
	}
	return p
}

func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func integer(v interface{}) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64) //nolint:errcheck // zero on garbage
		return n
	default:
		return 0
	}
}
