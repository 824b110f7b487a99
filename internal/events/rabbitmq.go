// AngelaMos | 2026
// rabbitmq.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/cricketacademy/academy-api/internal/config"
)

type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(cfg config.RabbitMQConfig) (*AMQPPublisher, error) {
	conn, ch, err := open(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func open(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()   //nolint:errcheck // already failing
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, ch, nil
}

// Publish is safe for concurrent use. amqp channels are not, so
// publishes are serialised.
func (p *AMQPPublisher) Publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Ping reports whether the broker connection is still open.
func (p *AMQPPublisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close() //nolint:errcheck // closing the connection closes it anyway
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Handler processes one delivery. Returning an error wrapping ErrPermanent
// drops the message; any other error requeues it once.
type Handler interface {
	Handle(ctx context.Context, key string, body []byte) error
}

type HandlerFunc func(ctx context.Context, key string, body []byte) error

func (f HandlerFunc) Handle(ctx context.Context, key string, body []byte) error {
	return f(ctx, key, body)
}

type Consumer struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

func NewConsumer(cfg config.RabbitMQConfig, keys []string, logger *slog.Logger) (*Consumer, error) {
	conn, ch, err := open(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}

	fail := func(err error) (*Consumer, error) {
		_ = ch.Close()   //nolint:errcheck // already failing
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, err
	}

	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return fail(fmt.Errorf("declare queue: %w", err))
	}
	for _, key := range keys {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			return fail(fmt.Errorf("bind %s: %w", key, err))
		}
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail(fmt.Errorf("set qos: %w", err))
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Consumer{conn: conn, ch: ch, queue: q.Name, logger: logger}, nil
}

// Run consumes until ctx is cancelled or the broker closes the channel.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.dispatch(ctx, h, d)
		}
	}
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Consumer) dispatch(ctx context.Context, h Handler, d amqp.Delivery) {
	settle(ctx, c.logger, h, d.RoutingKey, d.Body, d.Redelivered, &d)
}

func settle(
	ctx context.Context,
	logger *slog.Logger,
	h Handler,
	key string,
	body []byte,
	redelivered bool,
	ack acknowledger,
) {
	err := h.Handle(ctx, key, body)
	if err == nil {
		if ackErr := ack.Ack(false); ackErr != nil {
			logger.WarnContext(ctx, "ack failed", "routing_key", key, "error", ackErr)
		}
		return
	}

	requeue := !errors.Is(err, ErrPermanent) && !redelivered
	logger.ErrorContext(ctx, "handle delivery failed",
		"routing_key", key,
		"requeue", requeue,
		"error", err,
	)
	if nackErr := ack.Nack(false, requeue); nackErr != nil {
		logger.WarnContext(ctx, "nack failed", "routing_key", key, "error", nackErr)
	}
}

func (c *Consumer) Ping(context.Context) error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close() //nolint:errcheck // closing the connection closes it anyway
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
