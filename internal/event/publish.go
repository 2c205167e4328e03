package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Message is the envelope of every event on the exchange. The routing key equals Event.
type Message struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type PublishingChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       PublishingChannel
	exchange string
	logger   *zap.Logger
	now      func() time.Time
}

func NewRabbitPublisher(uri, exchange string, logger *zap.Logger) (*RabbitPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel creation failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}

	logger.Info("rabbitmq publisher ready", zap.String("exchange", exchange))

	return &RabbitPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish sends payload wrapped in a Message, routed by event name.
func (p *RabbitPublisher) Publish(ctx context.Context, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(Message{
		Event:     event,
		Timestamp: p.now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	if err := p.ch.PublishWithContext(
		ctx,
		p.exchange,
		event,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		},
	); err != nil {
		return err
	}

	p.logger.Debug("event published", zap.String("event", event), zap.Int("bytes", len(body)))
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

func (NopPublisher) Close() {}
