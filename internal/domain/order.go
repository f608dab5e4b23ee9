package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationChannel — канал доставки уведомлений заказа.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "Email"
	ChannelSms   NotificationChannel = "Sms"
)

// AddressType — тип адреса получателя.
type AddressType string

const (
	AddressEmail AddressType = "Email"
	AddressSms   AddressType = "Sms"
)

// Creator — отправитель заказа (сервис-владелец).
type Creator struct {
	ShortName string `json:"shortName"`
}

// EmailTemplate — шаблон письма заказа.
type EmailTemplate struct {
	FromAddress string `json:"fromAddress"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	ContentType string `json:"contentType"`
}

// AddressPoint — одна точка контакта получателя.
type AddressPoint struct {
	AddressType  AddressType `json:"addressType"`
	EmailAddress string      `json:"emailAddress,omitempty"`
	MobileNumber string      `json:"mobileNumber,omitempty"`
}

// Recipient — получатель с набором адресов.
type Recipient struct {
	RecipientID string         `json:"recipientId,omitempty"`
	AddressInfo []AddressPoint `json:"addressInfo"`
}

// NotificationOrder — заказ на рассылку, срок отправки которого наступил.
// Приходит из топика просроченных заказов в виде JSON.
type NotificationOrder struct {
	ID                  uuid.UUID           `json:"id"`
	SendersReference    string              `json:"sendersReference,omitempty"`
	RequestedSendTime   time.Time           `json:"requestedSendTime"`
	Creator             Creator             `json:"creator"`
	Created             time.Time           `json:"created"`
	NotificationChannel NotificationChannel `json:"notificationChannel"`
	Templates           []EmailTemplate     `json:"templates"`
	Recipients          []Recipient         `json:"recipients"`
}

// TryParse — декодирует сообщение в заказ. Никогда не паникует и не возвращает ошибку:
// ok=false означает, что сообщение не разобрать (битый JSON, лишние данные, пустой id).
func TryParse(raw []byte) (NotificationOrder, bool) {
	var order NotificationOrder
	if len(raw) == 0 {
		return NotificationOrder{}, false
	}
	if err := json.Unmarshal(raw, &order); err != nil {
		return NotificationOrder{}, false
	}
	if order.ID == uuid.Nil {
		return NotificationOrder{}, false
	}
	return order, true
}

// Serialize — обратная операция к TryParse.
func (o *NotificationOrder) Serialize() ([]byte, error) {
	return json.Marshal(o)
}

// EmailTemplate — первый шаблон письма, если он есть.
func (o *NotificationOrder) EmailTemplate() (EmailTemplate, bool) {
	if len(o.Templates) == 0 {
		return EmailTemplate{}, false
	}
	return o.Templates[0], true
}
