package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/google/uuid"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

var (
	// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
	ErrInvalidOrder = errors.New("order validation failed")
	// ErrUndecodable — сообщение, которое консьюмер пропустит без подтверждения.
	ErrUndecodable = errors.New("payload is not a notification order")
)

var contentTypes = map[string]struct{}{"Plain": {}, "Html": {}}

type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Validate возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.NotificationOrder) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	if order.NotificationChannel == domain.ChannelEmail {
		if err := v.validateTemplates(order.Templates); err != nil {
			return err
		}
	}
	return v.validateRecipients(order.Recipients)
}

// validateCore — валидация основных полей заказа.
func (v *OrderValidator) validateCore(order *domain.NotificationOrder) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID == uuid.Nil {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.Creator.ShortName) == "" {
		return fmt.Errorf("%w: creator.shortName обязателен", ErrInvalidOrder)
	}
	if order.RequestedSendTime.IsZero() {
		return fmt.Errorf("%w: requestedSendTime обязателен", ErrInvalidOrder)
	}
	switch order.NotificationChannel {
	case domain.ChannelEmail, domain.ChannelSms:
	default:
		return fmt.Errorf("%w: notificationChannel %q не поддерживается", ErrInvalidOrder, order.NotificationChannel)
	}
	return nil
}

// Валидация шаблона письма
func (v *OrderValidator) validateTemplates(templates []domain.EmailTemplate) error {
	if len(templates) == 0 {
		return fmt.Errorf("%w: templates не должен быть пустым", ErrInvalidOrder)
	}
	t := templates[0]
	if t.Subject == "" {
		return fmt.Errorf("%w: templates[0].subject обязателен", ErrInvalidOrder)
	}
	if t.Body == "" {
		return fmt.Errorf("%w: templates[0].body обязателен", ErrInvalidOrder)
	}
	if _, ok := contentTypes[t.ContentType]; !ok {
		return fmt.Errorf("%w: templates[0].contentType %q не поддерживается", ErrInvalidOrder, t.ContentType)
	}
	if t.FromAddress != "" && !IsEmail(t.FromAddress) {
		return fmt.Errorf("%w: templates[0].fromAddress некорректен", ErrInvalidOrder)
	}
	return nil
}

// Валидация получателей: адреса только проверяются на тип,
// некорректный email — не ошибка заказа, а результат конкретного письма.
func (v *OrderValidator) validateRecipients(recipients []domain.Recipient) error {
	if len(recipients) == 0 {
		return fmt.Errorf("%w: recipients не должен быть пустым", ErrInvalidOrder)
	}
	for i := range recipients {
		for j, ap := range recipients[i].AddressInfo {
			switch ap.AddressType {
			case domain.AddressEmail, domain.AddressSms:
			default:
				return fmt.Errorf("%w: recipients[%d].addressInfo[%d].addressType %q не поддерживается",
					ErrInvalidOrder, i, j, ap.AddressType)
			}
		}
	}
	return nil
}

// IsEmail — адрес вида local@domain без имени и угловых скобок.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}
