package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageReader — минимальный контракт над kafka.Reader,
// чтобы легко подменять его моками в тестах.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReaderFactory — создание ридера по готовому конфигу.
type ReaderFactory func(cfg kafka.ReaderConfig) MessageReader

func newKafkaReader(cfg kafka.ReaderConfig) MessageReader {
	return kafka.NewReader(cfg)
}
