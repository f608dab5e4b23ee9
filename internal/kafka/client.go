package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/segmentio/kafka-go"
)

var (
	ErrNotSubscribed     = errors.New("kafka client is not subscribed")
	ErrAlreadySubscribed = errors.New("kafka client is already subscribed")
	ErrTopicMismatch     = errors.New("topic does not match client config")
	ErrClientClosed      = errors.New("kafka client is closed")
)

// PollStatus — исход одного Poll.
type PollStatus int

const (
	PollMessage  PollStatus = iota // получено сообщение
	PollEmpty                      // истёк PollTimeout, сообщений нет
	PollCanceled                   // ожидание прервано отменой контекста
)

func (s PollStatus) String() string {
	switch s {
	case PollMessage:
		return "message"
	case PollEmpty:
		return "empty"
	case PollCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("PollStatus(%d)", int(s))
	}
}

// PollResult — результат Poll; Message заполнен только при PollMessage.
type PollResult struct {
	Status  PollStatus
	Message kafka.Message
}

// Client — брокер-клиент поверх kafka.Reader: подписка, ожидание сообщения с отменой
// и ручное подтверждение (коммит в группу + запись offset в журнал).
type Client struct {
	cfg       ClientConfig
	offsets   ports.OffsetStore
	newReader ReaderFactory
	errLog    kafka.Logger

	mu     sync.Mutex
	reader MessageReader
	closed bool

	closeOnce sync.Once
	closeErr  error
}

type ClientOption func(*Client)

// WithOffsetStore — журнал offset'ов; без него StoreOffset ничего не делает.
func WithOffsetStore(s ports.OffsetStore) ClientOption {
	return func(c *Client) { c.offsets = s }
}

func WithReaderFactory(f ReaderFactory) ClientOption {
	return func(c *Client) {
		if f != nil {
			c.newReader = f
		}
	}
}

// WithErrorLogger — ошибки самого kafka.Reader (сеть, ребаланс) уходят в наш логгер.
func WithErrorLogger(log ports.Logger) ClientOption {
	return func(c *Client) {
		if log == nil {
			return
		}
		c.errLog = kafka.LoggerFunc(func(msg string, args ...any) {
			log.Errorf(context.Background(), "kafka reader: "+msg, args...)
		})
	}
}

func NewClient(cfg ClientConfig, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{cfg: cfg, newReader: newKafkaReader}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Subscribe — создаёт ридер группы на топик. Повторная подписка — ошибка.
func (c *Client) Subscribe(topic string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}
	if c.reader != nil {
		return ErrAlreadySubscribed
	}
	if strings.TrimSpace(topic) != strings.TrimSpace(c.cfg.Topic) {
		return fmt.Errorf("%w: %q, configured %q", ErrTopicMismatch, topic, c.cfg.Topic)
	}

	rc := c.cfg.ReaderConfig()
	rc.ErrorLogger = c.errLog
	c.reader = c.newReader(rc)
	return nil
}

// Poll — ждёт следующее сообщение. Отмена ctx — не ошибка, а PollCanceled.
func (c *Client) Poll(ctx context.Context) (PollResult, error) {
	if ctx.Err() != nil {
		return PollResult{Status: PollCanceled}, nil
	}
	r, err := c.subscribed()
	if err != nil {
		return PollResult{}, err
	}

	fetchCtx := ctx
	if c.cfg.PollTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.cfg.PollTimeout)
		defer cancel()
	}

	msg, err := r.FetchMessage(fetchCtx)
	switch {
	case err == nil:
		return PollResult{Status: PollMessage, Message: msg}, nil
	case ctx.Err() != nil:
		// сюда же попадает io.EOF закрытого ридера после отмены
		return PollResult{Status: PollCanceled}, nil
	case fetchCtx.Err() != nil:
		return PollResult{Status: PollEmpty}, nil
	default:
		return PollResult{}, fmt.Errorf("fetch message: %w", err)
	}
}

// Commit — синхронный коммит offset'а сообщения в consumer group.
func (c *Client) Commit(ctx context.Context, msg kafka.Message) error {
	r, err := c.subscribed()
	if err != nil {
		return err
	}
	ctx, cancel := c.ackContext(ctx)
	defer cancel()

	if err := r.CommitMessages(ctx, msg); err != nil {
		return fmt.Errorf("commit partition=%d offset=%d: %w", msg.Partition, msg.Offset, err)
	}
	return nil
}

// StoreOffset — записывает следующий к чтению offset (offset+1) в журнал.
func (c *Client) StoreOffset(ctx context.Context, msg kafka.Message) error {
	if c.offsets == nil {
		return nil
	}
	ctx, cancel := c.ackContext(ctx)
	defer cancel()

	topic := msg.Topic
	if topic == "" {
		topic = c.cfg.Topic
	}
	off := ports.ConsumerOffset{
		GroupID:   c.cfg.GroupID,
		Topic:     topic,
		Partition: msg.Partition,
		Offset:    msg.Offset + 1,
	}
	if err := c.offsets.StoreOffset(ctx, off); err != nil {
		return fmt.Errorf("store offset partition=%d offset=%d: %w", msg.Partition, off.Offset, err)
	}
	return nil
}

// Close — закрывает ридер один раз; повторные вызовы возвращают тот же результат.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		r := c.reader
		c.closed = true
		c.mu.Unlock()

		if r != nil {
			c.closeErr = r.Close()
		}
	})
	return c.closeErr
}

func (c *Client) subscribed() (MessageReader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	if c.reader == nil {
		return nil, ErrNotSubscribed
	}
	return c.reader, nil
}

func (c *Client) ackContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CommitTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.CommitTimeout)
	}
	return ctx, func() {}
}
