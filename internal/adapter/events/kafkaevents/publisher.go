// Package kafkaevents publishes committed lifecycle events to Kafka for
// downstream consumers such as reporting and audit.
package kafkaevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/scanreview-backend/internal/config"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one Kafka message per event, keyed by case ID so a
// case's events stay in one partition.
type Publisher struct {
	w       messageWriter
	timeout time.Duration
}

// NewWriter builds a writer for the configured topic.
func NewWriter(cfg config.EventsConfig) *kafka.Writer {
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.BrokerList(),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
	})
}

// New creates a Publisher. timeout bounds each write.
func New(w messageWriter, timeout time.Duration) *Publisher {
	return &Publisher{w: w, timeout: timeout}
}

// Publish writes ev to the topic.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.CaseID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("write event %s: %w", ev.Type, err)
	}
	return nil
}

// Close flushes pending writes.
func (p *Publisher) Close() error {
	return p.w.Close()
}
