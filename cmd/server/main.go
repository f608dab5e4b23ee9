package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/notifications/config"
	"github.com/Gunvolt24/notifications/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// локальные переменные окружения; в контейнере файла нет
	_ = godotenv.Load(".env.local")

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer cleanup()

	// ненулевой код выхода, если супервизор исчерпал перезапуски
	return application.Run(ctx)
}
