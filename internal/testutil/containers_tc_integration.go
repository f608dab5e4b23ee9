//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	postgresImage = "postgres:16-alpine"
	redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

// containerHooks — этапы жизни контейнеров в stdout через zap.
func containerHooks() tc.ContainerLifecycleHooks {
	base, err := zap.NewDevelopment()
	if err != nil {
		base = zap.NewNop()
	}
	return tc.DefaultLoggingHook(zap.NewStdLog(base.Named("tc")))
}

// Stop — остановка контейнера(ов) окружения.
type Stop func(context.Context) error

// PGContainer — postgres со схемой notifications и готовым пулом.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

func StartPostgresTC(ctx context.Context) (*PGContainer, Stop, error) {
	pg, err := postgres.Run(ctx, postgresImage,
		tc.WithLifecycleHooks(containerHooks()),
		postgres.WithDatabase("notifications"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		// лог "ready" postgres печатает дважды: после initdb и после рестарта
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	terminate := func(context.Context) error { return tc.TerminateContainer(pg) }

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, fmt.Errorf("parse pool config: %w", err)
	}
	cfg.MaxConns = 5

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, fmt.Errorf("new pool: %w", err)
	}

	stop := func(c context.Context) error {
		pool.Close()
		return terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// KafkaEnv — redpanda и базовое имя топиков для теста.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, Stop, error) {
	rp, err := redpanda.Run(ctx, redpandaImage,
		tc.WithLifecycleHooks(containerHooks()),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx) // "host:port"
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// PipelineEnv — всё, что нужно контроллеру просроченных заказов: мигрированная БД и брокер.
type PipelineEnv struct {
	PG    *PGContainer
	Kafka *KafkaEnv
}

// StartPipelineTC — postgres (с миграциями) и redpanda; stop гасит оба контейнера.
func StartPipelineTC(ctx context.Context, baseTopic string) (*PipelineEnv, Stop, error) {
	pg, stopPG, err := StartPostgresTC(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := ApplyMigrationsGoose(ctx, pg.DSN); err != nil {
		_ = stopPG(ctx)
		return nil, nil, err
	}

	kf, stopKF, err := StartKafkaTC(ctx, baseTopic)
	if err != nil {
		_ = stopPG(ctx)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		return errors.Join(stopKF(c), stopPG(c))
	}
	return &PipelineEnv{PG: pg, Kafka: kf}, stop, nil
}
