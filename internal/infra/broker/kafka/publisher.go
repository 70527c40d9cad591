package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"namunjari/internal/domain/shared/events"
)

const eventsTopic = "reservations.events"

// Publisher pushes domain events onto Kafka for downstream consumers
// (booking exports, analytics). It implements policies.EventPublisher.
type Publisher struct {
	sync   sarama.SyncProducer
	prefix string
}

// NewPublisher connects a synchronous idempotent producer. prefix, when
// set, namespaces the topic per environment ("staging.reservations.events").
func NewPublisher(brokers []string, prefix string, cfg *sarama.Config) (*Publisher, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{sync: sync, prefix: prefix}, nil
}

type envelope struct {
	Event       string          `json:"event"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Publish sends one event, keyed by aggregate id so a reservation's
// events stay in order on one partition.
func (p *Publisher) Publish(ctx context.Context, evt events.DomainEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope{
		Event:       evt.EventName(),
		AggregateID: evt.AggregateID(),
		OccurredAt:  evt.OccurredAt(),
		Payload:     payload,
	})
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic(),
		Key:   sarama.StringEncoder(evt.AggregateID()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(evt.EventName())},
		},
	}
	_, _, err = p.sync.SendMessage(msg)
	return err
}

func (p *Publisher) topic() string {
	if p.prefix != "" {
		return p.prefix + "." + eventsTopic
	}
	return eventsTopic
}

func (p *Publisher) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}
