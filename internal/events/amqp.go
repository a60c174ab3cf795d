package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// AMQPPublisher publishes persistent JSON messages to a durable topic
// exchange, using the event type as routing key. The connection is opened
// lazily and re-dialled after the broker drops it.
type AMQPPublisher struct {
	url      string
	exchange string
	log      zerolog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string, log zerolog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:      url,
		exchange: exchange,
		log:      log.With().Str("component", "events").Logger(),
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev ReservationEvent) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Type,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, p.exchange, ev.Type, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("events: publish %s: %w", ev.Type, err)
	}
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("events: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		p.exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange %s: %w", p.exchange, err)
	}

	p.conn, p.ch = conn, ch
	p.log.Info().Str("exchange", p.exchange).Msg("connected to broker")
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func encode(ev ReservationEvent) ([]byte, error) {
	if ev.Type == "" {
		return nil, errors.New("events: missing event type")
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	return json.Marshal(ev)
}
