package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports/mocks"
	"github.com/Gunvolt24/notifications/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

const creator = "ttd"

func notificationWithResult(result domain.EmailNotificationResultType) domain.EmailNotificationWithResult {
	return domain.EmailNotificationWithResult{
		ID:           uuid.New(),
		Recipient:    domain.EmailRecipient{ToAddress: "user@example.com"},
		ResultStatus: domain.NotificationResult{Result: result, ResultTime: fixedTime},
	}
}

func TestGetEmailSummary_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummaryRepository(ctrl)
	cache := mocks.NewMockSummaryCache(ctrl)

	cached := &domain.EmailNotificationSummary{OrderID: orderID}
	cache.EXPECT().Get(gomock.Any(), "ttd/"+orderID.String()).Return(cached, true)

	svc := usecase.NewNotificationSummaryService(repo, cache, noopLogger{})
	got, err := svc.GetEmailSummary(context.Background(), orderID, creator)
	if err != nil || got != cached {
		t.Fatalf("expected cached summary, got err=%v summary=%+v", err, got)
	}
}

func TestGetEmailSummary_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummaryRepository(ctrl)
	cache := mocks.NewMockSummaryCache(ctrl)

	fromDB := &domain.EmailNotificationSummary{
		OrderID:          orderID,
		SendersReference: "ref-1",
		Notifications: []domain.EmailNotificationWithResult{
			notificationWithResult(domain.EmailNew),
			notificationWithResult(domain.EmailSucceeded),
			notificationWithResult(domain.EmailDelivered),
			notificationWithResult(domain.EmailFailedInvalidEmailFormat),
		},
	}

	key := usecase.SummaryCacheKey(creator, orderID)
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, false),
		repo.EXPECT().GetEmailSummary(gomock.Any(), orderID, creator).Return(fromDB, nil),
		cache.EXPECT().Set(gomock.Any(), key, fromDB),
	)

	svc := usecase.NewNotificationSummaryService(repo, cache, noopLogger{})
	got, err := svc.GetEmailSummary(context.Background(), orderID, creator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Generated != 4 || got.Succeeded != 2 {
		t.Fatalf("unexpected counters generated=%d succeeded=%d", got.Generated, got.Succeeded)
	}

	wantSucceeded := []bool{false, true, true, false}
	for i, n := range got.Notifications {
		if n.Succeeded != wantSucceeded[i] {
			t.Fatalf("notification %d: succeeded=%v, want %v", i, n.Succeeded, wantSucceeded[i])
		}
		if n.ResultStatus.ResultDescription == "" {
			t.Fatalf("notification %d: empty description", i)
		}
	}
	if got.Notifications[3].ResultStatus.ResultDescription !=
		"The email was not sent because the recipient’s email address is in an invalid format." {
		t.Fatalf("unexpected description: %q", got.Notifications[3].ResultStatus.ResultDescription)
	}
}

func TestGetEmailSummary_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummaryRepository(ctrl)
	cache := mocks.NewMockSummaryCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	repo.EXPECT().GetEmailSummary(gomock.Any(), orderID, creator).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewNotificationSummaryService(repo, cache, noopLogger{})
	if _, err := svc.GetEmailSummary(context.Background(), orderID, creator); !errors.Is(err, usecase.ErrSummaryNotFound) {
		t.Fatalf("expected ErrSummaryNotFound, got %v", err)
	}
}

func TestGetEmailSummary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummaryRepository(ctrl)
	cache := mocks.NewMockSummaryCache(ctrl)

	boom := errors.New("db down")
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	repo.EXPECT().GetEmailSummary(gomock.Any(), orderID, creator).Return(nil, boom)

	svc := usecase.NewNotificationSummaryService(repo, cache, noopLogger{})
	if _, err := svc.GetEmailSummary(context.Background(), orderID, creator); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGetEmailSummary_CacheSetFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummaryRepository(ctrl)
	cache := mocks.NewMockSummaryCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	repo.EXPECT().GetEmailSummary(gomock.Any(), orderID, creator).Return(&domain.EmailNotificationSummary{OrderID: orderID}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("full"))

	svc := usecase.NewNotificationSummaryService(repo, cache, noopLogger{})
	got, err := svc.GetEmailSummary(context.Background(), orderID, creator)
	if err != nil || got.Generated != 0 {
		t.Fatalf("cache failure must not fail the request: err=%v summary=%+v", err, got)
	}
}

func TestResultDescription_Unknown(t *testing.T) {
	if d := usecase.ResultDescription("Bounced"); d != "" {
		t.Fatalf("unknown result must have no description, got %q", d)
	}
	if usecase.IsSuccessResult(domain.EmailSending) {
		t.Fatalf("Sending is not a success")
	}
}
