package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("publisher closed")

// Publisher delivers outbox payloads to a topic exchange.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}

// AMQPPublisher keeps one connection and channel and redials after the broker drops them.
type AMQPPublisher struct {
	url      string
	exchange string

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, exchange: cfg.Exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	err := p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         payload,
	})
	if err != nil {
		p.reset()
		return errs.Wrapf(err, "publish %s", topic)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	return p.reset()
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "declare exchange")
	}

	p.conn, p.ch = conn, ch
	slog.Info("connected to rabbitmq", "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) reset() error {
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}

// LogPublisher is used when no broker is configured; events are only logged.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	slog.Debug("event published without broker", "topic", topic, "bytes", len(payload))
	return nil
}

func (LogPublisher) Close() error { return nil }

// New picks the AMQP publisher when a URL is configured.
func New(cfg config.AMQPConfig) Publisher {
	if cfg.URL == "" {
		slog.Info("AMQP_URL not set, outbox events will be logged only")
		return LogPublisher{}
	}
	return NewAMQPPublisher(cfg)
}
