package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/sounding-etl/internal/config"
	"github.com/couchcryptid/sounding-etl/internal/domain"
)

const (
	maxAttempts    = 3
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 2 * time.Second
)

// messageWriter is the subset of kafkago.Writer the Writer depends on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes computed profiles to a Kafka topic.
// It implements pipeline.Loader.
type Writer struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured bulletin topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaBulletinTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, timeout: cfg.KafkaPublishTimeout, logger: logger}
}

func (w *Writer) Name() string { return "kafka" }

// Load publishes the profile as a single JSON message keyed by its source.
// Transient broker errors are retried with exponential backoff until the
// publish timeout expires.
func (w *Writer) Load(ctx context.Context, p domain.Profile) error {
	msg, err := serializeToMessage(p)
	if err != nil {
		return err
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err = w.writer.WriteMessages(ctx, msg)
		if err == nil {
			w.logger.Debug("profile published", "source", p.Source, "attempt", attempt, "bytes", len(msg.Value))
			return nil
		}
		if attempt == maxAttempts || ctx.Err() != nil {
			return fmt.Errorf("publish profile after %d attempts: %w", attempt, err)
		}
		w.logger.Warn("publish profile failed, retrying", "error", err, "attempt", attempt, "backoff", backoff)
		if !retry.SleepWithContext(ctx, backoff) {
			return fmt.Errorf("publish profile: %w", ctx.Err())
		}
		backoff = retry.NextBackoff(backoff, maxBackoff)
	}
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Profile into a Kafka message.
func serializeToMessage(p domain.Profile) (kafkago.Message, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize profile: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(p.Source),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte(p.Source)},
			{Key: "computed_at", Value: []byte(p.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
