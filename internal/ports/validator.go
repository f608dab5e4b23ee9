package ports

import (
	"context"

	"github.com/Gunvolt24/notifications/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order *domain.NotificationOrder) error
}
