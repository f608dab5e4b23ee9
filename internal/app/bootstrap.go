package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/notifications/config"
	cachemem "github.com/Gunvolt24/notifications/internal/cache/memory"
	"github.com/Gunvolt24/notifications/internal/kafka"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/Gunvolt24/notifications/internal/repo/postgres"
	rest "github.com/Gunvolt24/notifications/internal/transport/http"
	"github.com/Gunvolt24/notifications/internal/usecase"
	"github.com/Gunvolt24/notifications/pkg/logger"
	"github.com/Gunvolt24/notifications/pkg/metrics"
	"github.com/Gunvolt24/notifications/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Runner — блокирующий фоновый компонент (супервизор консьюмера).
type Runner interface {
	Run(ctx context.Context) error
}

// App — собранное приложение и его внешние интерфейсы (HTTP, метрики, консьюмер).
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // API сводок
	MetricsServer   *http.Server  // отдельный /metrics; nil — только на HTTPServer
	Consumer        Runner        // супервизор консьюмера просроченных заказов
	gracefulTimeout time.Duration // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// consumerConfig — настройки контроллера из секции Kafka.
func consumerConfig(k config.Kafka) kafka.ConsumerConfig {
	return kafka.ConsumerConfig{
		Brokers:        k.Brokers,
		Topic:          k.PastDueOrdersTopic,
		GroupID:        k.GroupID,
		StartOffset:    k.StartOffset,
		PollTimeout:    k.PollTimeout,
		ProcessTimeout: k.ProcessTimeout,
		CommitTimeout:  k.CommitTimeout,
		StopTimeout:    k.StopTimeout,
	}
}

// supervisorConfig — политика перезапусков из секции Kafka.
func supervisorConfig(k config.Kafka) SupervisorConfig {
	return SupervisorConfig{
		Name:           k.PastDueOrdersTopic,
		RestartInitial: k.RestartInitial,
		RestartMax:     k.RestartMax,
		MaxRestarts:    k.MaxRestarts,
		StopTimeout:    k.StopTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Пропагатор нужен консьюмеру и без экспорта трасс.
	telemetry.InstallPropagator()
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		_ = shutdownTrace(context.Background())
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Доменный слой.
	notificationRepo := postgres.NewNotificationRepository(pool)
	offsetStore := postgres.NewOffsetStore(pool)
	processor := usecase.NewOrderProcessingService(notificationRepo, logg)
	summaryService := usecase.NewNotificationSummaryService(
		postgres.NewSummaryRepository(pool),
		cachemem.NewSummaryCache(cfg.Cache.Capacity, cfg.Cache.TTL),
		logg,
	)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}
	router := rest.NewRouter(rest.NewHandler(summaryService, logg, cfg.HTTP.HandlerTimeout), otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if addr := cfg.Metrics.Addr; addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	// Каждая попытка супервизора — новый контроллер.
	consumerCfg := consumerConfig(cfg.Kafka)
	supervisor := NewSupervisor(supervisorConfig(cfg.Kafka), func() (ports.BackgroundWorker, error) {
		return kafka.NewPastDueOrdersConsumer(consumerCfg, processor, logg,
			kafka.WithConsumerOffsetStore(offsetStore),
		), nil
	}, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		Consumer:        supervisor,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и супервизор консьюмера; ждёт отмены ctx или
// фоновой ошибки и всё останавливает. Если супервизор сдался, его ошибка
// возвращается, чтобы процесс завершился с ненулевым кодом.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	errCh := make(chan error, 3)
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		a.Logger.Infof(ctx, "past-due orders consumer starting")
		if err := a.Consumer.Run(runCtx); err != nil {
			errCh <- err
		}
	}()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "background error: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		}
	}

	// супервизор останавливает текущий контроллер по отмене runCtx
	cancelRun()
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		a.Logger.Warnf(ctx, "consumer did not stop within %s", gt)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
