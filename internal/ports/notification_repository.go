package ports

import (
	"context"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/google/uuid"
)

type NotificationRepository interface {
	// RegisterOrder — заводит заказ, если его ещё нет; существующий не меняется.
	RegisterOrder(ctx context.Context, order *domain.NotificationOrder) error
	// AddEmailNotification — идемпотентно: повторная вставка того же письма не ошибка.
	AddEmailNotification(ctx context.Context, n *domain.EmailNotification) error
	SetProcessingStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderProcessingStatus) error
}
