package kafka

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/pkg/ctxmeta"
	"github.com/Gunvolt24/notifications/pkg/metrics"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Gunvolt24/notifications/internal/kafka"

// Стадии, на которых воркер может упасть.
const (
	stagePoll    = "poll"
	stageProcess = "process"
	stageCommit  = "commit"
	stageStore   = "store"
)

// consumeOrders — основной цикл воркера:
// 1) Poll с отменой по ctx; PollCanceled → штатный выход, PollEmpty → следующая итерация;
// 2) не разобранное сообщение пропускается без подтверждения;
// 3) успешная обработка → Commit, затем StoreOffset, и только потом следующий Poll;
// 4) любая другая ошибка фатальна: воркер выходит с ErrWorkerFailed.
func (c *PastDueOrdersConsumer) consumeOrders(ctx context.Context, client *Client) error {
	for ctx.Err() == nil {
		res, err := client.Poll(ctx)
		if err != nil {
			return c.fail(ctx, stagePoll, kafka.Message{Topic: c.cfg.Topic, Offset: -1}, err)
		}

		switch res.Status {
		case PollCanceled:
			c.log.Infof(ctx, "past-due orders worker canceled topic=%s", c.cfg.Topic)
			return nil
		case PollEmpty:
			continue
		}

		if err := c.handleMessage(ctx, client, res.Message); err != nil {
			return err
		}
	}

	c.log.Infof(ctx, "past-due orders worker canceled topic=%s", c.cfg.Topic)
	return nil
}

// handleMessage — разбор, обработка и подтверждение одного сообщения.
func (c *PastDueOrdersConsumer) handleMessage(ctx context.Context, client *Client, msg kafka.Message) error {
	metrics.KafkaMessagesConsumed.WithLabelValues(c.cfg.Topic).Inc()

	order, ok := c.decode(msg.Value)
	if !ok {
		metrics.KafkaMessagesSkipped.WithLabelValues(c.cfg.Topic).Inc()
		c.log.Warnf(ctx, "undecodable message skipped topic=%s partition=%d offset=%d",
			msg.Topic, msg.Partition, msg.Offset)
		return nil
	}

	// Обработка и подтверждение не прерываются отменой: Stop дожидается конца сообщения.
	workCtx := otel.GetTextMapPropagator().Extract(context.WithoutCancel(ctx), headerCarrier(msg.Headers))
	workCtx = ctxmeta.WithOrderID(workCtx, order.ID.String())
	workCtx, span := c.tracer.Start(workCtx, "pastdue_orders.process",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", msg.Topic),
			attribute.Int("messaging.kafka.destination.partition", msg.Partition),
			attribute.Int64("messaging.kafka.message.offset", msg.Offset),
			attribute.String("notifications.order_id", order.ID.String()),
		),
	)
	defer span.End()

	if err := c.process(workCtx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, stageProcess)
		return c.fail(workCtx, stageProcess, msg, err)
	}
	metrics.KafkaMessagesProcessed.WithLabelValues(c.cfg.Topic).Inc()

	if err := client.Commit(workCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, stageCommit)
		return c.fail(workCtx, stageCommit, msg, err)
	}
	if err := client.StoreOffset(workCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, stageStore)
		return c.fail(workCtx, stageStore, msg, err)
	}
	metrics.KafkaMessagesAcknowledged.WithLabelValues(c.cfg.Topic).Inc()
	return nil
}

// process — вызов обработчика с таймаутом ProcessTimeout (если задан).
func (c *PastDueOrdersConsumer) process(ctx context.Context, order domain.NotificationOrder) error {
	if c.cfg.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ProcessTimeout)
		defer cancel()
	}
	return c.processor.ProcessOrder(ctx, order)
}

// fail — логирует и оборачивает фатальную ошибку воркера.
func (c *PastDueOrdersConsumer) fail(ctx context.Context, stage string, msg kafka.Message, err error) error {
	metrics.KafkaMessagesFailed.WithLabelValues(c.cfg.Topic, stage).Inc()
	c.log.Errorf(ctx, "past-due orders worker failed stage=%s topic=%s partition=%d offset=%d: %v",
		stage, c.cfg.Topic, msg.Partition, msg.Offset, err)
	return fmt.Errorf("%w: %s: %w", ErrWorkerFailed, stage, err)
}

// headerCarrier — заголовки Kafka как carrier для W3C trace context.
func headerCarrier(headers []kafka.Header) propagation.MapCarrier {
	carrier := make(propagation.MapCarrier, len(headers))
	for _, h := range headers {
		carrier[h.Key] = string(h.Value)
	}
	return carrier
}
