package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события в topic exchange RabbitMQ
// Соединение устанавливается лениво и переоткрывается после обрыва
type Publisher struct {
	url      string
	exchange string
	log      Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	closed bool
}

// NewPublisher создает publisher. Подключение происходит при первой публикации
func NewPublisher(url, exchange string, log Logger) *Publisher {
	return &Publisher{
		url:      url,
		exchange: exchange,
		log:      log,
	}
}

// PublishBookingCompleted публикует событие завершения бронирования
func (p *Publisher) PublishBookingCompleted(ctx context.Context, event BookingCompleted) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}
	return p.publish(ctx, RoutingBookingCompleted, body)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	conn, err := p.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare exchange %s: %v", ErrPublish, p.exchange, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("%w: routing_key=%s: %v", ErrPublish, routingKey, err)
	}

	return nil
}

// connection возвращает живое соединение. Вызывается под p.mu
func (p *Publisher) connection() (*amqp.Connection, error) {
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	p.conn = conn
	p.log.Info("events: connected to broker, exchange=%s", p.exchange)

	return conn, nil
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

// Noop publisher для окружений без брокера
type Noop struct{}

func (Noop) PublishBookingCompleted(context.Context, BookingCompleted) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
