//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/google/uuid"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeOrder — валидный просроченный заказ на email-канале с одним получателем.
func MakeOrder(opts ...func(*domain.NotificationOrder)) domain.NotificationOrder {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.NotificationOrder{
		ID:                  uuid.New(),
		SendersReference:    "ref-" + UniqSuffix(),
		RequestedSendTime:   now.Add(-time.Minute),
		Creator:             domain.Creator{ShortName: "ttd"},
		Created:             now.Add(-time.Hour),
		NotificationChannel: domain.ChannelEmail,
		Templates: []domain.EmailTemplate{{
			FromAddress: "noreply@example.com",
			Subject:     "Subject",
			Body:        "Body",
			ContentType: "Plain",
		}},
		Recipients: []domain.Recipient{{
			RecipientID: "r-" + UniqSuffix(),
			AddressInfo: []domain.AddressPoint{{
				AddressType:  domain.AddressEmail,
				EmailAddress: "user-" + UniqSuffix() + "@example.com",
			}},
		}},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCreator(name string) func(*domain.NotificationOrder) {
	return func(o *domain.NotificationOrder) { o.Creator.ShortName = name }
}

func WithOrderID(id uuid.UUID) func(*domain.NotificationOrder) {
	return func(o *domain.NotificationOrder) { o.ID = id }
}

// WithEmailRecipients — по одному получателю на каждый адрес.
func WithEmailRecipients(addresses ...string) func(*domain.NotificationOrder) {
	return func(o *domain.NotificationOrder) {
		o.Recipients = make([]domain.Recipient, 0, len(addresses))
		for i, a := range addresses {
			o.Recipients = append(o.Recipients, domain.Recipient{
				RecipientID: "r-" + string(rune('a'+i)),
				AddressInfo: []domain.AddressPoint{{AddressType: domain.AddressEmail, EmailAddress: a}},
			})
		}
	}
}
