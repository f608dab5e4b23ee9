package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/google/uuid"
)

var _ ports.SummaryService = (*NotificationSummaryService)(nil)

// ErrSummaryNotFound — у отправителя нет заказа с таким id.
var ErrSummaryNotFound = errors.New("email notification summary not found")

var resultDescriptions = map[domain.EmailNotificationResultType]string{
	domain.EmailNew:                          "The email has been created, but has not been picked up for processing yet.",
	domain.EmailSending:                      "The email is being processed and will be attempted sent shortly.",
	domain.EmailSucceeded:                    "The email has been accepted by the third party email service and will be sent shortly.",
	domain.EmailDelivered:                    "The email was delivered to the recipient. No errors reported, making it likely it was received by the recipient.",
	domain.EmailFailed:                       "The email was not sent due to an unspecified failure.",
	domain.EmailFailedRecipientNotIdentified: "The email was not sent because the recipient's email address was not found.",
	domain.EmailFailedInvalidEmailFormat:     "The email was not sent because the recipient’s email address is in an invalid format.",
}

// ResultDescription — описание результата письма; для неизвестного результата пусто.
func ResultDescription(r domain.EmailNotificationResultType) string {
	return resultDescriptions[r]
}

// IsSuccessResult — письмо принято почтовым сервисом или доставлено.
func IsSuccessResult(r domain.EmailNotificationResultType) bool {
	return r == domain.EmailSucceeded || r == domain.EmailDelivered
}

// NotificationSummaryService — сводка по письмам заказа: кэш, при промахе — БД с записью в кэш.
type NotificationSummaryService struct {
	repo  ports.SummaryRepository
	cache ports.SummaryCache
	log   ports.Logger
}

func NewNotificationSummaryService(
	repo ports.SummaryRepository,
	cache ports.SummaryCache,
	log ports.Logger,
) *NotificationSummaryService {
	return &NotificationSummaryService{repo: repo, cache: cache, log: log}
}

func (s *NotificationSummaryService) GetEmailSummary(
	ctx context.Context,
	orderID uuid.UUID,
	creator string,
) (*domain.EmailNotificationSummary, error) {
	key := SummaryCacheKey(creator, orderID)
	if s.cache != nil {
		if summary, found := s.cache.Get(ctx, key); found {
			s.log.Infof(ctx, "cache hit for summary=%s", key)
			return summary, nil
		}
		s.log.Infof(ctx, "cache miss for summary=%s", key)
	}

	start := time.Now()
	summary, err := s.repo.GetEmailSummary(ctx, orderID, creator)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetEmailSummary failed order=%s err=%v", orderID, err)
		return nil, err
	}
	if summary == nil {
		return nil, ErrSummaryNotFound
	}

	enrich(summary)

	if s.cache != nil {
		if setErr := s.cache.Set(ctx, key, summary); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed summary=%s err=%v", key, setErr)
		}
	}
	s.log.Infof(ctx, "db fetch summary order=%s took=%s", orderID, time.Since(start))
	return summary, nil
}

// SummaryCacheKey — ключ кэша: сводка видна только своему отправителю.
func SummaryCacheKey(creator string, orderID uuid.UUID) string {
	return creator + "/" + orderID.String()
}

// enrich — описания результатов, признак успеха и счётчики.
func enrich(summary *domain.EmailNotificationSummary) {
	succeeded := 0
	for i := range summary.Notifications {
		n := &summary.Notifications[i]
		n.Succeeded = IsSuccessResult(n.ResultStatus.Result)
		n.ResultStatus.ResultDescription = ResultDescription(n.ResultStatus.Result)
		if n.Succeeded {
			succeeded++
		}
	}
	summary.Generated = len(summary.Notifications)
	summary.Succeeded = succeeded
}
