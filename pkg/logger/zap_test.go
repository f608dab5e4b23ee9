package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/notifications/pkg/ctxmeta"
	"github.com/Gunvolt24/notifications/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.New(zap.New(core)), logs
}

func TestZapLogger_ContextFields(t *testing.T) {
	log, logs := newObserved()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithOrderID(ctx, "order-1")
	log.Warnf(ctx, "undecodable message skipped offset=%d", 7)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Fatalf("level=%s, want warn", e.Level)
	}
	if e.Message != "undecodable message skipped offset=7" {
		t.Fatalf("unexpected message: %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "req-1" || fields["order_id"] != "order-1" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestZapLogger_NoContextFields(t *testing.T) {
	log, logs := newObserved()

	log.Infof(context.Background(), "started")
	log.Errorf(context.Background(), "failed: %v", "boom")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("background context must add no fields, got %v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("level=%s, want error", entries[1].Level)
	}
}
