// AngelaMos | 2026
// events_test.go

package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return p.err
}

func TestSettle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	transient := errors.New("smtp down")

	tests := []struct {
		name        string
		handlerErr  error
		redelivered bool
		wantAck     bool
		wantRequeue bool
	}{
		{name: "success acks", wantAck: true},
		{name: "transient first attempt requeues", handlerErr: transient, wantRequeue: true},
		{name: "transient redelivery drops", handlerErr: transient, redelivered: true},
		{name: "permanent drops", handlerErr: ErrPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAck{}
			h := HandlerFunc(func(context.Context, string, []byte) error { return tt.handlerErr })

			settle(context.Background(), logger, h, RKBookingCreated, nil, tt.redelivered, ack)

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, !tt.wantAck, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		ev, err := Decode[BookingEvent]([]byte(`{"booking_id":"b1","price":1200}`))
		require.NoError(t, err)
		assert.Equal(t, "b1", ev.BookingID)
		assert.InDelta(t, 1200.0, ev.Price, 0.001)
	})

	t.Run("malformed body is permanent", func(t *testing.T) {
		_, err := Decode[PaymentEvent]([]byte(`{not json`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPermanent)
	})
}

func TestEmitSwallowsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	pub := &recordingPublisher{err: errors.New("broker gone")}

	Emit(context.Background(), pub, logger, RKPaymentPaid, PaymentEvent{PaymentID: "pay_1"})

	assert.Equal(t, []string{RKPaymentPaid}, pub.keys)
	assert.Contains(t, buf.String(), "publish event failed")

	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, logger, RKPaymentPaid, nil)
	})
}
