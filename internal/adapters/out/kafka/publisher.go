// Package kafka publishes domain events to Kafka topics with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courierledger/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 2 * time.Second

// Envelope is the JSON body of every message.
type Envelope struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher routes events to a topic by event name. Events without a route go
// to the default topic.
type Publisher struct {
	writer       MessageWriter
	routes       map[string]string
	defaultTopic string
	timeout      time.Duration
}

// NewWriter builds a writer without a fixed topic; every message carries its own.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer MessageWriter, defaultTopic string, routes map[string]string) *Publisher {
	return &Publisher{
		writer:       writer,
		routes:       routes,
		defaultTopic: defaultTopic,
		timeout:      defaultWriteTimeout,
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...ports.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := p.message(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d event(s): %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) message(e ports.Event) (kafka.Message, error) {
	if e.Name == "" {
		return kafka.Message{}, errors.New("event name is required")
	}
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s payload: %w", e.Name, err)
	}
	body, err := json.Marshal(Envelope{Name: e.Name, OccurredAt: e.OccurredAt.UTC(), Payload: payload})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s envelope: %w", e.Name, err)
	}

	topic, ok := p.routes[e.Name]
	if !ok {
		topic = p.defaultTopic
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(e.Key),
		Value: body,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(e.Name)},
		},
	}, nil
}

// LogPublisher stands in when no broker is configured. It only logs.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "LogPublisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...ports.Event) error {
	for _, e := range events {
		p.logger.DebugContext(ctx, "event", "name", e.Name, "key", e.Key)
	}
	return nil
}
