package validate

import (
	"context"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
)

// ValidateOrderFromJSON — разбор тем же декодером, что и у консьюмера, затем валидация.
// Не разобранный payload → ErrUndecodable.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.NotificationOrder, error) {
	order, ok := domain.TryParse(raw)
	if !ok {
		return nil, ErrUndecodable
	}
	if err := validator.Validate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
