package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что консьюмер удовлетворяет порту фонового сервиса.
var _ ports.BackgroundWorker = (*PastDueOrdersConsumer)(nil)

var (
	ErrWorkerFailed   = errors.New("past-due orders worker failed")
	ErrAlreadyStarted = errors.New("consumer already started")
	ErrNotStarted     = errors.New("consumer not started")
	ErrAlreadyStopped = errors.New("consumer already stopped")
	// ErrStopped — Start после Stop: перезапуск требует нового консьюмера.
	ErrStopped = errors.New("consumer stopped")
)

// State — состояние жизненного цикла консьюмера.
type State int

const (
	StateCreated State = iota
	StateStarted
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Decoder — разбор сообщения в заказ; ok=false — сообщение не разобрать.
type Decoder func(raw []byte) (domain.NotificationOrder, bool)

// PastDueOrdersConsumer — читает просроченные заказы из топика по одному,
// передаёт их обработчику и подтверждает сообщение только после успешной обработки.
type PastDueOrdersConsumer struct {
	cfg       ConsumerConfig
	processor ports.OrderProcessor
	log       ports.Logger
	offsets   ports.OffsetStore
	newReader ReaderFactory
	decode    Decoder
	tracer    trace.Tracer

	mu     sync.Mutex
	state  State
	client *Client
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

type Option func(*PastDueOrdersConsumer)

// WithConsumerOffsetStore — журнал подтверждённых offset'ов.
func WithConsumerOffsetStore(s ports.OffsetStore) Option {
	return func(c *PastDueOrdersConsumer) { c.offsets = s }
}

// WithConsumerReaderFactory — подмена kafka.Reader (тесты).
func WithConsumerReaderFactory(f ReaderFactory) Option {
	return func(c *PastDueOrdersConsumer) { c.newReader = f }
}

func WithDecoder(d Decoder) Option {
	return func(c *PastDueOrdersConsumer) {
		if d != nil {
			c.decode = d
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *PastDueOrdersConsumer) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

func NewPastDueOrdersConsumer(
	cfg ConsumerConfig,
	processor ports.OrderProcessor,
	log ports.Logger,
	opts ...Option,
) *PastDueOrdersConsumer {
	c := &PastDueOrdersConsumer{
		cfg:       cfg,
		processor: processor,
		log:       log,
		newReader: newKafkaReader,
		decode:    domain.TryParse,
		tracer:    otel.Tracer(tracerName),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start — подписывается на топик и запускает воркер в отдельной горутине.
// Не блокируется; воркер живёт до Stop, а не до отмены ctx.
func (c *PastDueOrdersConsumer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateCreated:
	case StateStarted:
		return ErrAlreadyStarted
	default:
		return ErrStopped
	}

	client, err := NewClient(c.cfg.ClientConfig(),
		WithOffsetStore(c.offsets),
		WithReaderFactory(c.newReader),
		WithErrorLogger(c.log),
	)
	if err != nil {
		return err
	}
	if err := client.Subscribe(c.cfg.Topic); err != nil {
		_ = client.Close()
		return fmt.Errorf("subscribe %s: %w", c.cfg.Topic, err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.client = client
	c.cancel = cancel
	c.state = StateStarted

	go c.run(runCtx, client)

	c.log.Infof(ctx, "past-due orders consumer started topic=%s group_id=%s brokers=%v",
		c.cfg.Topic, c.cfg.GroupID, c.cfg.Brokers)
	return nil
}

// Stop — отменяет воркер, ждёт его выхода (не дольше StopTimeout или дедлайна ctx)
// и закрывает клиент.
func (c *PastDueOrdersConsumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateStarted:
	case StateCreated:
		c.mu.Unlock()
		return ErrNotStarted
	default:
		c.mu.Unlock()
		return ErrAlreadyStopped
	}
	c.state = StateStopping
	cancel, client := c.cancel, c.client
	c.mu.Unlock()

	cancel()
	c.awaitWorker(ctx)
	closeErr := client.Close()

	c.mu.Lock()
	c.state = StateStopped
	c.mu.Unlock()

	if closeErr != nil {
		return fmt.Errorf("close kafka client: %w", closeErr)
	}
	c.log.Infof(ctx, "past-due orders consumer stopped topic=%s", c.cfg.Topic)
	return nil
}

// Done закрывается после выхода воркера.
func (c *PastDueOrdersConsumer) Done() <-chan struct{} { return c.done }

// Err — причина завершения воркера; nil, если он вышел по отмене или ещё работает.
func (c *PastDueOrdersConsumer) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *PastDueOrdersConsumer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *PastDueOrdersConsumer) run(ctx context.Context, client *Client) {
	defer close(c.done)

	err := c.consumeSafely(ctx, client)

	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// consumeSafely — паника обработчика превращается в фатальную ошибку воркера.
func (c *PastDueOrdersConsumer) consumeSafely(ctx context.Context, client *Client) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrWorkerFailed, r)
			c.log.Errorf(ctx, "past-due orders worker panicked: %v", r)
		}
	}()
	return c.consumeOrders(ctx, client)
}

func (c *PastDueOrdersConsumer) awaitWorker(ctx context.Context) {
	var timeout <-chan time.Time
	if c.cfg.StopTimeout > 0 {
		t := time.NewTimer(c.cfg.StopTimeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case <-c.done:
	case <-timeout:
		c.log.Warnf(ctx, "worker did not exit within %s, closing client anyway", c.cfg.StopTimeout)
	case <-ctx.Done():
		c.log.Warnf(ctx, "stop context done before worker exit: %v", ctx.Err())
	}
}
