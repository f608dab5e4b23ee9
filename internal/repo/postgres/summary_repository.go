package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.SummaryRepository = (*SummaryRepository)(nil)

// SummaryRepository — чтение писем заказа для сводки.
type SummaryRepository struct {
	pool *pgxpool.Pool
}

func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

// GetEmailSummary — заказ отправителя creator со всеми его письмами.
// Если заказа нет (или он чужой), возвращает (nil, nil).
// Описания и счётчики заполняет сервис.
func (r *SummaryRepository) GetEmailSummary(
	ctx context.Context,
	orderID uuid.UUID,
	creator string,
) (*domain.EmailNotificationSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.sendersreference,
			n.alternateid::text, n.recipientid, n.toaddress, n.result, n.resulttime
		FROM notifications.orders o
		LEFT JOIN notifications.emailnotifications n ON n._orderid = o._id
		WHERE o.alternateid = $1 AND o.creatorname = $2
		ORDER BY n._id
	`, orderID, creator)
	if err != nil {
		return nil, fmt.Errorf("select email summary: %w", err)
	}
	defer rows.Close()

	var summary *domain.EmailNotificationSummary
	for rows.Next() {
		var (
			sendersRef  *string
			id          *string
			recipientID *string
			toAddress   *string
			result      *string
			resultTime  *time.Time
		)
		if err := rows.Scan(&sendersRef, &id, &recipientID, &toAddress, &result, &resultTime); err != nil {
			return nil, fmt.Errorf("scan email summary: %w", err)
		}

		if summary == nil {
			summary = &domain.EmailNotificationSummary{
				OrderID:          orderID,
				SendersReference: deref(sendersRef),
				Notifications:    []domain.EmailNotificationWithResult{},
			}
		}
		// заказ без писем: одна строка с NULL от LEFT JOIN
		if id == nil {
			continue
		}

		notificationID, err := uuid.Parse(*id)
		if err != nil {
			return nil, fmt.Errorf("parse notification id: %w", err)
		}
		n := domain.EmailNotificationWithResult{
			ID: notificationID,
			Recipient: domain.EmailRecipient{
				RecipientID: deref(recipientID),
				ToAddress:   deref(toAddress),
			},
			ResultStatus: domain.NotificationResult{
				Result: domain.EmailNotificationResultType(deref(result)),
			},
		}
		if resultTime != nil {
			n.ResultStatus.ResultTime = resultTime.UTC()
		}
		summary.Notifications = append(summary.Notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("email summary rows: %w", err)
	}
	return summary, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }
