package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/Gunvolt24/notifications/pkg/validate"
	"github.com/google/uuid"
)

// Проверка, что сервис удовлетворяет порту обработчика заказов.
var _ ports.OrderProcessor = (*OrderProcessingService)(nil)

// OrderProcessingService — прикладная логика обработки просроченного заказа:
// заказ на email-канале превращается в письма (по одному на адрес получателя).
type OrderProcessingService struct {
	repo ports.NotificationRepository
	log  ports.Logger
	now  func() time.Time
}

type ProcessingOption func(*OrderProcessingService)

// WithClock — источник времени для ResultTime (тесты).
func WithClock(now func() time.Time) ProcessingOption {
	return func(s *OrderProcessingService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewOrderProcessingService — DI-конструктор.
func NewOrderProcessingService(
	repo ports.NotificationRepository,
	log ports.Logger,
	opts ...ProcessingOption,
) *OrderProcessingService {
	s := &OrderProcessingService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessOrder — генерирует письма заказа и переводит его в Processed.
// Повторная обработка того же заказа порождает те же id писем, поэтому
// повторная доставка сообщения не создаёт дублей.
func (s *OrderProcessingService) ProcessOrder(ctx context.Context, order domain.NotificationOrder) error {
	if err := s.repo.RegisterOrder(ctx, &order); err != nil {
		s.log.Errorf(ctx, "repo.RegisterOrder failed order=%s err=%v", order.ID, err)
		return fmt.Errorf("register order: %w", err)
	}

	if order.NotificationChannel != domain.ChannelEmail {
		s.log.Warnf(ctx, "channel %q is not handled, order=%s marked completed", order.NotificationChannel, order.ID)
		return s.setStatus(ctx, order.ID, domain.OrderCompleted)
	}
	if len(order.Recipients) == 0 {
		s.log.Infof(ctx, "order=%s has no recipients, marked completed", order.ID)
		return s.setStatus(ctx, order.ID, domain.OrderCompleted)
	}

	start := time.Now()
	generated := 0
	for ri, r := range order.Recipients {
		for _, n := range s.notificationsFor(order, ri, r) {
			if err := s.repo.AddEmailNotification(ctx, n); err != nil {
				s.log.Errorf(ctx, "repo.AddEmailNotification failed order=%s notification=%s err=%v", order.ID, n.ID, err)
				return fmt.Errorf("add email notification: %w", err)
			}
			generated++
		}
	}

	if err := s.setStatus(ctx, order.ID, domain.OrderProcessed); err != nil {
		return err
	}
	s.log.Infof(ctx, "order=%s processed notifications=%d took=%s", order.ID, generated, time.Since(start))
	return nil
}

// notificationsFor — письма для получателя с позицией ri в заказе. Получатель без
// email-адреса всё равно даёт одно письмо — с результатом Failed_RecipientNotIdentified.
func (s *OrderProcessingService) notificationsFor(order domain.NotificationOrder, ri int, r domain.Recipient) []*domain.EmailNotification {
	now := s.now().UTC()

	var out []*domain.EmailNotification
	for ai, ap := range r.AddressInfo {
		if ap.AddressType != domain.AddressEmail {
			continue
		}
		address := strings.TrimSpace(ap.EmailAddress)
		if address == "" {
			continue
		}
		result := domain.EmailNew
		if !validate.IsEmail(address) {
			result = domain.EmailFailedInvalidEmailFormat
		}
		out = append(out, &domain.EmailNotification{
			ID:                NotificationID(order.ID, ri, ai, r.RecipientID, address),
			OrderID:           order.ID,
			RequestedSendTime: order.RequestedSendTime,
			RecipientID:       r.RecipientID,
			ToAddress:         address,
			Result:            result,
			ResultTime:        now,
		})
	}

	if len(out) == 0 {
		out = append(out, &domain.EmailNotification{
			ID:                NotificationID(order.ID, ri, -1, r.RecipientID, ""),
			OrderID:           order.ID,
			RequestedSendTime: order.RequestedSendTime,
			RecipientID:       r.RecipientID,
			Result:            domain.EmailFailedRecipientNotIdentified,
			ResultTime:        now,
		})
	}
	return out
}

func (s *OrderProcessingService) setStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderProcessingStatus) error {
	if err := s.repo.SetProcessingStatus(ctx, orderID, status); err != nil {
		s.log.Errorf(ctx, "repo.SetProcessingStatus failed order=%s status=%s err=%v", orderID, status, err)
		return fmt.Errorf("set processing status %s: %w", status, err)
	}
	return nil
}

// NotificationID — детерминированный UUIDv5 письма в пространстве id заказа.
// Позиции получателя и адреса входят в ключ: recipientId необязателен, и без них
// анонимные получатели получили бы один id. addressIdx = -1 — письмо без адреса.
func NotificationID(orderID uuid.UUID, recipientIdx, addressIdx int, recipientID, address string) uuid.UUID {
	key := fmt.Sprintf("%d|%d|%s|%s", recipientIdx, addressIdx, recipientID, strings.ToLower(address))
	return uuid.NewSHA1(orderID, []byte(key))
}
