package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что NotificationRepository удовлетворяет интерфейсу порта.
var _ ports.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository — заказы и письма в схеме notifications (pgxpool).
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// RegisterOrder — вставка заказа по alternateid; повтор ничего не меняет.
func (r *NotificationRepository) RegisterOrder(ctx context.Context, order *domain.NotificationOrder) error {
	if order == nil || order.ID == uuid.Nil {
		return fmt.Errorf("register order: id is required")
	}
	raw, err := order.Serialize()
	if err != nil {
		return fmt.Errorf("serialize order: %w", err)
	}
	created := order.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO notifications.orders (
			alternateid, creatorname, sendersreference, created, requestedsendtime, notificationorder
		) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6::jsonb)
		ON CONFLICT (alternateid) DO NOTHING
	`, order.ID, order.Creator.ShortName, order.SendersReference, created, order.RequestedSendTime, string(raw),
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// AddEmailNotification — вставка письма; то же alternateid повторно не пишется.
func (r *NotificationRepository) AddEmailNotification(ctx context.Context, n *domain.EmailNotification) error {
	if n == nil || n.ID == uuid.Nil {
		return fmt.Errorf("add email notification: id is required")
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO notifications.emailnotifications (
			_orderid, alternateid, recipientid, toaddress, result, resulttime, requestedsendtime
		)
		SELECT o._id, $2::uuid, NULLIF($3::text, ''), $4::text, $5::text, $6::timestamptz, $7::timestamptz
		FROM notifications.orders o
		WHERE o.alternateid = $1::uuid
		ON CONFLICT (alternateid) DO NOTHING
	`, n.OrderID, n.ID, n.RecipientID, n.ToAddress, string(n.Result), n.ResultTime, n.RequestedSendTime)
	if err != nil {
		return fmt.Errorf("insert email notification: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// 0 строк: либо письмо уже есть, либо нет заказа
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications.orders WHERE alternateid = $1)`, n.OrderID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, n.OrderID)
	}
	return nil
}

func (r *NotificationRepository) SetProcessingStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderProcessingStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications.orders
		SET processedstatus = $2, processed = now()
		WHERE alternateid = $1
	`, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update processing status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return nil
}

// ProcessingStatus — текущий статус обработки заказа; ErrOrderNotFound, если заказа нет.
func (r *NotificationRepository) ProcessingStatus(ctx context.Context, orderID uuid.UUID) (domain.OrderProcessingStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT processedstatus FROM notifications.orders WHERE alternateid = $1`, orderID,
	).Scan(&status)
	if err != nil {
		if isNoRows(err) {
			return "", fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return "", fmt.Errorf("select processing status: %w", err)
	}
	return domain.OrderProcessingStatus(status), nil
}
