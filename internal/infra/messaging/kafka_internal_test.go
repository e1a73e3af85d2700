//go:build unit

package messaging

import (
	"log/slog"
	"sort"
	"testing"
	"time"

	"coachbook/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredAcks(t *testing.T) {
	assert.Equal(t, kafka.RequireNone, requiredAcks(0))
	assert.Equal(t, kafka.RequireOne, requiredAcks(1))
	assert.Equal(t, kafka.RequireAll, requiredAcks(-1))
	assert.Equal(t, kafka.RequireAll, requiredAcks(7))
}

func TestCompression(t *testing.T) {
	assert.Equal(t, compress.Snappy, compression("snappy"))
	assert.Equal(t, compress.Lz4, compression("lz4"))
	assert.Equal(t, compress.Gzip, compression("gzip"))
	assert.Equal(t, compress.Zstd, compression("zstd"))
	assert.Equal(t, compress.Compression(0), compression("none"))
}

func TestToKafkaMessage(t *testing.T) {
	ts := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	km := toKafkaMessage(Message{
		Topic:   "booking-events",
		Key:     "C-S-2024-1-10-9-0",
		Value:   []byte(`{"ok":true}`),
		Headers: map[string]string{"event-kind": "booking.created", "event-id": "1"},
		Time:    ts,
	})

	assert.Equal(t, "booking-events", km.Topic)
	assert.Equal(t, []byte("C-S-2024-1-10-9-0"), km.Key)
	assert.Equal(t, []byte(`{"ok":true}`), km.Value)
	assert.Equal(t, ts, km.Time)

	keys := make([]string, 0, len(km.Headers))
	for _, h := range km.Headers {
		keys = append(keys, h.Key)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"event-id", "event-kind"}, keys)
}

func TestNewKafkaPublisher(t *testing.T) {
	_, err := NewKafkaPublisher(config.KafkaConfig{}, slog.Default())
	require.ErrorIs(t, err, ErrNoBrokers)

	p, err := NewKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, slog.Default())
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
