package ports

import (
	"context"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/google/uuid"
)

// SummaryRepository — чтение сводки по письмам заказа.
// (nil, nil), если заказа нет или он принадлежит другому отправителю.
type SummaryRepository interface {
	GetEmailSummary(ctx context.Context, orderID uuid.UUID, creator string) (*domain.EmailNotificationSummary, error)
}

// SummaryService — сводка по письмам заказа для HTTP-слоя.
type SummaryService interface {
	GetEmailSummary(ctx context.Context, orderID uuid.UUID, creator string) (*domain.EmailNotificationSummary, error)
}

// SummaryCache — интерфейс кэша сводок.
// Требования к реализации: потокобезопасность; возврат копий сущности.
type SummaryCache interface {
	// Get — (summary, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) (*domain.EmailNotificationSummary, bool)
	Set(ctx context.Context, key string, s *domain.EmailNotificationSummary) error
}
