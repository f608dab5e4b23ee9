package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/Gunvolt24/notifications/pkg/metrics"
)

// ErrRestartsExhausted — воркер падал MaxRestarts раз подряд.
var ErrRestartsExhausted = errors.New("worker restarts exhausted")

var errWorkerExited = errors.New("worker exited without error")

// WorkerFactory — новый воркер на каждую попытку: остановленный контроллер не перезапускается.
type WorkerFactory func() (ports.BackgroundWorker, error)

type SupervisorConfig struct {
	Name           string        // метка для логов и метрики (топик)
	RestartInitial time.Duration // первая пауза перед перезапуском
	RestartMax     time.Duration // потолок паузы
	MaxRestarts    int           // 0 — без ограничения
	StopTimeout    time.Duration // ожидание Stop текущего воркера
}

// Supervisor — перезапускает воркер после фатальной ошибки с экспоненциальной
// паузой (equal jitter). Воркер, проработавший дольше RestartMax, считается
// стабильным: пауза и счётчик попыток сбрасываются.
type Supervisor struct {
	cfg       SupervisorConfig
	newWorker WorkerFactory
	log       ports.Logger

	jitterRand *rand.Rand
	sleep      func(ctx context.Context, d time.Duration) bool
	now        func() time.Time

	mu      sync.Mutex
	current ports.BackgroundWorker
}

func NewSupervisor(cfg SupervisorConfig, newWorker WorkerFactory, log ports.Logger) *Supervisor {
	if cfg.RestartInitial <= 0 {
		cfg.RestartInitial = time.Second
	}
	if cfg.RestartMax < cfg.RestartInitial {
		cfg.RestartMax = cfg.RestartInitial
	}
	return &Supervisor{
		cfg:        cfg,
		newWorker:  newWorker,
		log:        log,
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // джиттер, не криптография
		sleep:      sleepWithBackoff,
		now:        time.Now,
	}
}

// Run — блокируется до отмены ctx (останавливает текущий воркер, возвращает nil)
// или до исчерпания перезапусков (возвращает ErrRestartsExhausted с последней ошибкой).
func (s *Supervisor) Run(ctx context.Context) error {
	backoff := s.cfg.RestartInitial
	restarts := 0

	for {
		started := s.now()
		err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}

		if s.now().Sub(started) > s.cfg.RestartMax {
			backoff = s.cfg.RestartInitial
			restarts = 0
		}
		if s.cfg.MaxRestarts > 0 && restarts >= s.cfg.MaxRestarts {
			s.log.Errorf(ctx, "%s: giving up after %d restarts: %v", s.cfg.Name, restarts, err)
			return fmt.Errorf("%w: %s after %d restarts: %w", ErrRestartsExhausted, s.cfg.Name, restarts, err)
		}
		restarts++

		delay := s.withJitterEqual(backoff)
		s.log.Warnf(ctx, "%s: worker failed, restart %d in %s: %v", s.cfg.Name, restarts, delay, err)
		metrics.ConsumerRestarts.WithLabelValues(s.cfg.Name).Inc()

		if !s.sleep(ctx, delay) {
			return nil
		}
		backoff = nextBackoff(backoff, s.cfg.RestartMax)
	}
}

// runOnce — один воркер от Start до завершения; возвращает причину падения.
func (s *Supervisor) runOnce(ctx context.Context) error {
	w, err := s.newWorker()
	if err != nil {
		return fmt.Errorf("create worker: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	s.setCurrent(w)
	defer s.setCurrent(nil)

	select {
	case <-ctx.Done():
		s.stopWorker(w)
		return ctx.Err()
	case <-w.Done():
	}

	err = w.Err()
	// воркер уже вышел: Stop только закрывает клиент
	s.stopWorker(w)
	// порт BackgroundWorker не запрещает выход с nil без Stop: это тоже падение,
	// иначе Run обернул бы nil в ErrRestartsExhausted
	if err == nil {
		err = errWorkerExited
	}
	return err
}

func (s *Supervisor) stopWorker(w ports.BackgroundWorker) {
	ctx := context.Background()
	if s.cfg.StopTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StopTimeout)
		defer cancel()
	}
	if err := w.Stop(ctx); err != nil {
		s.log.Warnf(ctx, "%s: stop worker: %v", s.cfg.Name, err)
	}
}

func (s *Supervisor) setCurrent(w ports.BackgroundWorker) {
	s.mu.Lock()
	s.current = w
	s.mu.Unlock()
}

// Current — воркер текущей попытки (nil между попытками).
func (s *Supervisor) Current() ports.BackgroundWorker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (s *Supervisor) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(s.jitterRand.Int63n(int64(d-half)+1))
}

// nextBackoff — удвоение с потолком max.
func nextBackoff(current, max time.Duration) time.Duration {
	current *= 2
	if current > max {
		return max
	}
	return current
}

// sleepWithBackoff ждёт d или останавливается по контексту.
func sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
