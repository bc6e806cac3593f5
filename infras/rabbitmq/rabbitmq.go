package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"jamat/config"
	"jamat/shared/constant"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const consumerPrefetch = 50

var errClosed = errors.New("rabbitmq client is closed")

type Client interface {
	Publish(ctx context.Context, queue, key string, payload any) error
	Consume(ctx context.Context, queue string, handler func(delivery amqp.Delivery) error) error
	Close() error
}

type rabbitClientImpl struct {
	url string

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// New returns a client that dials lazily on the first publish.
func New(config *config.Config) Client {
	return &rabbitClientImpl{url: config.Events.AMQP.URL}
}

func (r *rabbitClientImpl) channel() (*amqp.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errClosed
	}

	if r.ch != nil && !r.ch.IsClosed() {
		return r.ch, nil
	}

	if r.conn == nil || r.conn.IsClosed() {
		conn, err := amqp.Dial(r.url)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}

		r.conn = conn
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	r.ch = ch

	return ch, nil
}

func declare(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return nil
}

// Publish sends payload as a persistent JSON message to the durable queue.
func (r *rabbitClientImpl) Publish(ctx context.Context, queue, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal rabbitmq payload: %w", err)
	}

	ch, err := r.channel()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq unavailable")

		return err
	}

	if err = declare(ch, queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    key,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq publish failed")

		return fmt.Errorf("publish to %s: %w", queue, err)
	}

	return nil
}

// Consume acks deliveries the handler accepts and rejects the rest without requeue. It returns when ctx is done.
func (r *rabbitClientImpl) Consume(ctx context.Context, queue string, handler func(delivery amqp.Delivery) error) error {
	ch, err := r.channel()
	if err != nil {
		return err
	}

	if err = ch.Qos(consumerPrefetch, 0, false); err != nil {
		log.Warn().Err(err).Msg("rabbitmq set QoS failed")
	}

	if err = declare(ch, queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consume %s: delivery channel closed", queue)
			}

			if err := handler(d); err != nil {
				log.Error().Err(err).Str("queue", queue).Msg("rabbitmq handler failed")

				_ = d.Reject(false)

				continue
			}

			_ = d.Ack(false)
		}
	}
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	var errs []error

	if r.ch != nil && !r.ch.IsClosed() {
		errs = append(errs, r.ch.Close())
	}

	if r.conn != nil && !r.conn.IsClosed() {
		errs = append(errs, r.conn.Close())
	}

	return errors.Join(errs...)
}
