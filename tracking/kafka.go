package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the part of [kafka.Writer] used by [KafkaSink].
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

var _ MessageWriter = (*kafka.Writer)(nil)

// NewKafkaWriter returns a writer producing to topic.
// Messages with the same key, the conversion id, land on the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// eventRecord is the JSON payload of a Kafka message.
// Decimals are strings so consumers never see a float.
type eventRecord struct {
	ID         string     `json:"id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	FromAmount string     `json:"from_amount"`
	ToAmount   string     `json:"to_amount"`
	Rate       string     `json:"rate"`
	RateTime   *time.Time `json:"rate_time,omitempty"`
	RateSource string     `json:"rate_source,omitempty"`
	At         time.Time  `json:"at"`
}

func newEventRecord(e Event) eventRecord {
	r := eventRecord{
		ID:         e.ID.String(),
		From:       e.From,
		To:         e.To,
		FromAmount: e.FromAmount.String(),
		ToAmount:   e.ToAmount.String(),
		Rate:       e.Rate.String(),
		RateSource: e.RateSource,
		At:         e.At,
	}
	if !e.RateTime.IsZero() {
		t := e.RateTime
		r.RateTime = &t
	}
	return r
}

// KafkaSink publishes every event as one JSON message.
type KafkaSink struct {
	w   MessageWriter
	log *zap.Logger
}

// NewKafkaSink returns a sink writing to w. The logger may be nil.
func NewKafkaSink(w MessageWriter, log *zap.Logger) *KafkaSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaSink{w: w, log: log}
}

func (s *KafkaSink) Append(ctx context.Context, e Event) error {
	value, err := json.Marshal(newEventRecord(e))
	if err != nil {
		return fmt.Errorf("encoding event %v: %w", e.ID, err)
	}
	msg := kafka.Message{
		Key:     []byte(e.ID.String()),
		Value:   value,
		Headers: []kafka.Header{{Key: "pair", Value: []byte(e.Pair())}},
		Time:    e.At,
	}
	if err := s.w.WriteMessages(ctx, msg); err != nil {
		s.log.Error("publishing conversion event", zap.Stringer("id", e.ID), zap.Error(err))
		return fmt.Errorf("publishing event %v: %w", e.ID, err)
	}
	s.log.Debug("published conversion event", zap.Stringer("id", e.ID), zap.String("pair", e.Pair()))
	return nil
}
