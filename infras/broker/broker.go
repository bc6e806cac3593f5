// Package broker publishes and tails domain events over the configured transport.
package broker

//go:generate go run go.uber.org/mock/mockgen -source=./broker.go -destination=./mocks/broker_mock.go -package=mocks

import (
	"context"
	"errors"
	"jamat/config"
	"jamat/infras/kafka"
	"jamat/infras/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

var ErrNoBroker = errors.New("no event broker configured")

// Handler receives the message key and its raw JSON body.
type Handler func(key string, body []byte) error

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Broker interface {
	Publisher
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Name() string
	Close() error
}

// New selects the transport from EVENTS_BROKER.
func New(cfg *config.Config) Broker {
	switch cfg.Events.Broker {
	case config.BrokerKafka:
		return NewKafka(kafka.New(cfg), cfg.Events.Kafka.ConsumerGroup)
	case config.BrokerAMQP:
		return NewAMQP(rabbitmq.New(cfg))
	default:
		log.Info().Msg("No event broker configured, events are dropped")

		return NewNoop()
	}
}

type kafkaBroker struct {
	client kafka.Client
	group  string
}

func NewKafka(client kafka.Client, consumerGroup string) Broker {
	return &kafkaBroker{client: client, group: consumerGroup}
}

func (b *kafkaBroker) Name() string {
	return config.BrokerKafka
}

func (b *kafkaBroker) Publish(ctx context.Context, topic, key string, payload any) error {
	return b.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: payload}) //nolint:wrapcheck
}

func (b *kafkaBroker) Subscribe(ctx context.Context, topic string, handler Handler) error {
	b.client.Consume(ctx, b.group, topic, func(message kafkaGo.Message) {
		if err := handler(string(message.Key), message.Value); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("event handler failed")
		}
	})

	return nil
}

func (b *kafkaBroker) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type amqpBroker struct {
	client rabbitmq.Client
}

func NewAMQP(client rabbitmq.Client) Broker {
	return &amqpBroker{client: client}
}

func (b *amqpBroker) Name() string {
	return config.BrokerAMQP
}

func (b *amqpBroker) Publish(ctx context.Context, topic, key string, payload any) error {
	return b.client.Publish(ctx, topic, key, payload) //nolint:wrapcheck
}

func (b *amqpBroker) Subscribe(ctx context.Context, topic string, handler Handler) error {
	return b.client.Consume(ctx, topic, func(delivery amqp.Delivery) error { //nolint:wrapcheck
		return handler(delivery.MessageId, delivery.Body)
	})
}

func (b *amqpBroker) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type noopBroker struct{}

func NewNoop() Broker {
	return noopBroker{}
}

func (noopBroker) Name() string {
	return config.BrokerNone
}

func (noopBroker) Publish(_ context.Context, topic, key string, _ any) error {
	log.Debug().Str("topic", topic).Str("key", key).Msg("event dropped, no broker configured")

	return nil
}

func (noopBroker) Subscribe(_ context.Context, _ string, _ Handler) error {
	return ErrNoBroker
}

func (noopBroker) Close() error {
	return nil
}
