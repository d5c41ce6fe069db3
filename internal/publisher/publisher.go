// Package publisher streams the timeline of ingested matches to Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/match"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is implemented by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type TimelineMessage struct {
	MatchID uuid.UUID `json:"match_id"`
	match.TimelineEntry
}

type Publisher struct {
	writer MessageWriter
	topic  string
}

// NewWriter returns a writer for the given broker. The topic is set per
// message.
func NewWriter(endpoint string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(endpoint),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func New(writer MessageWriter, topic string) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
	}
}

// PublishTimeline writes one message per timeline entry, keyed by match id
// so the entries of a match stay ordered within a partition.
func (p *Publisher) PublishTimeline(ctx context.Context, matchID uuid.UUID, timeline []match.TimelineEntry) error {
	if len(timeline) == 0 {
		return nil
	}

	key := []byte(matchID.String())
	messages := make([]kafka.Message, 0, len(timeline))
	for _, entry := range timeline {
		value, err := json.Marshal(TimelineMessage{
			MatchID:       matchID,
			TimelineEntry: entry,
		})
		if err != nil {
			return fmt.Errorf("marshalling timeline entry: %w", err)
		}
		messages = append(messages, kafka.Message{
			Topic: p.topic,
			Key:   key,
			Value: value,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("publishing timeline of %s: %w", matchID, err)
	}
	return nil
}
