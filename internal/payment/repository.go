// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByOrderID(ctx context.Context, orderID string) (*Transaction, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*Transaction, error)
	// MarkPaid reports false when the order was already PAID.
	MarkPaid(ctx context.Context, orderID, paymentID, method string) (bool, error)
	MarkFailed(ctx context.Context, orderID, paymentID string) error
	MarkRefunded(ctx context.Context, paymentID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const transactionColumns = `id, order_id, payment_id, booking_id, amount, currency,
	receipt, status, method, created_at, updated_at`

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	query := `
		INSERT INTO payment_transactions (id, order_id, payment_id, booking_id,
		                                  amount, currency, receipt, status, method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		t.ID, t.OrderID, t.PaymentID, t.BookingID,
		t.Amount, t.Currency, t.Receipt, t.Status, t.Method,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create transaction: %w", core.DuplicateError("order_id"))
		}
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *repository) getOne(ctx context.Context, op, where, arg string) (*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE ` + where

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Transaction, error) {
	return r.getOne(ctx, "get transaction by order", "order_id = $1", orderID)
}

func (r *repository) GetByPaymentID(ctx context.Context, paymentID string) (*Transaction, error) {
	return r.getOne(ctx, "get transaction by payment",
		"payment_id = $1 ORDER BY updated_at DESC LIMIT 1", paymentID)
}

func (r *repository) MarkPaid(ctx context.Context, orderID, paymentID, method string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = 'PAID', payment_id = $2, method = $3, updated_at = NOW()
		WHERE order_id = $1 AND status IN ('CREATED', 'FAILED')`,
		orderID, paymentID, method)
	if err != nil {
		return false, fmt.Errorf("mark transaction paid: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark transaction paid: %w", err)
	}
	return rows > 0, nil
}

func (r *repository) MarkFailed(ctx context.Context, orderID, paymentID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = 'FAILED', payment_id = $2, updated_at = NOW()
		WHERE order_id = $1 AND status = 'CREATED'`,
		orderID, paymentID)
	if err != nil {
		return fmt.Errorf("mark transaction failed: %w", err)
	}
	return nil
}

func (r *repository) MarkRefunded(ctx context.Context, paymentID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = 'REFUNDED', updated_at = NOW()
		WHERE payment_id = $1`, paymentID)
	if err != nil {
		return fmt.Errorf("mark transaction refunded: %w", err)
	}
	return nil
}
