package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrInvalidConfig = errors.New("invalid kafka config")

// ClientConfig — параметры подключения брокер-клиента.
type ClientConfig struct {
	Brokers     []string
	GroupID     string
	Topic       string
	StartOffset string
	// PollTimeout > 0 — Poll возвращает PollEmpty, если за это время сообщений не было.
	PollTimeout time.Duration
	// CommitTimeout ограничивает Commit и StoreOffset.
	CommitTimeout time.Duration
}

// Validate — брокеры, группа и топик обязательны.
func (c *ClientConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("%w: no brokers", ErrInvalidConfig)
	}
	for _, b := range c.Brokers {
		if strings.TrimSpace(b) == "" {
			return fmt.Errorf("%w: empty broker address", ErrInvalidConfig)
		}
	}
	if strings.TrimSpace(c.GroupID) == "" {
		return fmt.Errorf("%w: empty group id", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Topic) == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidConfig)
	}
	return nil
}

// ReaderConfig — конфиг kafka.Reader: ручной синхронный коммит (CommitInterval=0).
// Новая группа читает с начала топика, если явно не указано "last".
func (c *ClientConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "last", "latest":
		rc.StartOffset = kafka.LastOffset
	default:
		rc.StartOffset = kafka.FirstOffset
	}

	return rc
}

// ConsumerConfig — настройки консьюмера просроченных заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string

	PollTimeout    time.Duration
	ProcessTimeout time.Duration // 0 — без ограничения
	CommitTimeout  time.Duration
	StopTimeout    time.Duration // 0 — Stop ждёт воркер без ограничения (или до дедлайна ctx)
}

// ClientConfig — часть настроек, относящаяся к брокер-клиенту.
func (c *ConsumerConfig) ClientConfig() ClientConfig {
	return ClientConfig{
		Brokers:       c.Brokers,
		GroupID:       c.GroupID,
		Topic:         c.Topic,
		StartOffset:   c.StartOffset,
		PollTimeout:   c.PollTimeout,
		CommitTimeout: c.CommitTimeout,
	}
}
