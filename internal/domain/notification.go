package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderProcessingStatus — статус обработки заказа.
type OrderProcessingStatus string

const (
	OrderRegistered OrderProcessingStatus = "Registered"
	OrderProcessing OrderProcessingStatus = "Processing"
	OrderProcessed  OrderProcessingStatus = "Processed"
	OrderCompleted  OrderProcessingStatus = "Completed"
)

// EmailNotificationResultType — результат доставки письма.
type EmailNotificationResultType string

const (
	EmailNew                          EmailNotificationResultType = "New"
	EmailSending                      EmailNotificationResultType = "Sending"
	EmailSucceeded                    EmailNotificationResultType = "Succeeded"
	EmailDelivered                    EmailNotificationResultType = "Delivered"
	EmailFailed                       EmailNotificationResultType = "Failed"
	EmailFailedRecipientNotIdentified EmailNotificationResultType = "Failed_RecipientNotIdentified"
	EmailFailedInvalidEmailFormat     EmailNotificationResultType = "Failed_InvalidEmailFormat"
)

// EmailNotification — одно письмо, сгенерированное из заказа.
type EmailNotification struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	RequestedSendTime time.Time
	RecipientID       string
	ToAddress         string
	Result            EmailNotificationResultType
	ResultTime        time.Time
}

// NotificationResult — статус письма для отчёта.
type NotificationResult struct {
	Result            EmailNotificationResultType `json:"status"`
	ResultDescription string                      `json:"description,omitempty"`
	ResultTime        time.Time                   `json:"lastUpdate"`
}

// EmailRecipient — адресат письма в отчёте.
type EmailRecipient struct {
	RecipientID string `json:"recipientId,omitempty"`
	ToAddress   string `json:"emailAddress"`
}

// EmailNotificationWithResult — письмо с результатом доставки.
type EmailNotificationWithResult struct {
	ID           uuid.UUID          `json:"id"`
	Succeeded    bool               `json:"succeeded"`
	Recipient    EmailRecipient     `json:"recipient"`
	ResultStatus NotificationResult `json:"sendStatus"`
}

// EmailNotificationSummary — сводка по письмам заказа.
type EmailNotificationSummary struct {
	OrderID          uuid.UUID                     `json:"orderId"`
	SendersReference string                        `json:"sendersReference,omitempty"`
	Generated        int                           `json:"generated"`
	Succeeded        int                           `json:"succeeded"`
	Notifications    []EmailNotificationWithResult `json:"notifications"`
}
