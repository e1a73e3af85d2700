package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"coachbook/internal/pkg/config"
	"coachbook/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

var (
	ErrNoBrokers = errs.New("at least one kafka broker is required")
	ErrNoTopic   = errs.New("kafka topic cannot be empty")
)

type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
	Time    time.Time
}

// PartialFailure reports which messages of a batch were not written, by index.
type PartialFailure struct {
	Failed map[int]error
}

func (e *PartialFailure) Error() string {
	return "kafka write failed for part of the batch"
}

// KafkaPublisher writes to any topic; the topic travels on each message.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{}, // same booking key, same partition
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		Compression:  compression(cfg.Compression),
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "detail", slog.AnyValue(append([]any{msg}, args...)))
		}),
	}
	return &KafkaPublisher{writer: writer}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}
	batch := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Topic == "" {
			return ErrNoTopic
		}
		batch = append(batch, toKafkaMessage(m))
	}

	err := p.writer.WriteMessages(ctx, batch...)
	if err == nil {
		return nil
	}
	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		failed := make(map[int]error, writeErrs.Count())
		for i, e := range writeErrs {
			if e != nil {
				failed[i] = e
			}
		}
		return &PartialFailure{Failed: failed}
	}
	return errs.Wrap(err, "failed to write kafka messages")
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(m Message) kafka.Message {
	km := kafka.Message{
		Topic: m.Topic,
		Key:   []byte(m.Key),
		Value: m.Value,
		Time:  m.Time,
	}
	for k, v := range m.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return km
}

func requiredAcks(n int) kafka.RequiredAcks {
	switch n {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

// compression returns 0 (uncompressed) for "none" and unknown codecs.
func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "snappy":
		return compress.Snappy
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	default:
		return 0
	}
}
