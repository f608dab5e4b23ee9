package ports

import (
	"context"

	"github.com/Gunvolt24/notifications/internal/domain"
)

// OrderProcessor — обработка заказа, у которого наступил срок отправки.
// Ошибка означает, что заказ не обработан и сообщение нельзя подтверждать.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, order domain.NotificationOrder) error
}
