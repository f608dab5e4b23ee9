package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/pkg/validate"
	"github.com/google/uuid"
)

func validOrder() *domain.NotificationOrder {
	return &domain.NotificationOrder{
		ID:                  uuid.MustParse("d4ee51b8-4a62-4d1a-9e1c-3c6d9f0c2a11"),
		SendersReference:    "ref-1",
		RequestedSendTime:   time.Date(2025, 11, 26, 6, 22, 19, 0, time.UTC),
		Creator:             domain.Creator{ShortName: "ttd"},
		Created:             time.Date(2025, 11, 26, 6, 20, 0, 0, time.UTC),
		NotificationChannel: domain.ChannelEmail,
		Templates: []domain.EmailTemplate{{
			FromAddress: "noreply@example.com",
			Subject:     "Subject",
			Body:        "Body",
			ContentType: "Plain",
		}},
		Recipients: []domain.Recipient{{
			RecipientID: "r-1",
			AddressInfo: []domain.AddressPoint{{AddressType: domain.AddressEmail, EmailAddress: "user@example.com"}},
		}},
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := validate.NewOrderValidator()
	ctx := context.Background()

	t.Run("valid order", func(t *testing.T) {
		if err := v.Validate(ctx, validOrder()); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	t.Run("invalid recipient email is not an order error", func(t *testing.T) {
		o := validOrder()
		o.Recipients[0].AddressInfo[0].EmailAddress = "not-an-email"
		if err := v.Validate(ctx, o); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	t.Run("sms order without templates", func(t *testing.T) {
		o := validOrder()
		o.NotificationChannel = domain.ChannelSms
		o.Templates = nil
		if err := v.Validate(ctx, o); err != nil {
			t.Fatalf("expected valid sms order, got: %v", err)
		}
	})

	type testCase struct {
		name      string
		makeOrder func() *domain.NotificationOrder
		msg       string
	}

	cases := []testCase{
		{
			name:      "nil order",
			makeOrder: func() *domain.NotificationOrder { return nil },
			msg:       "заказ не может быть nil",
		},
		{
			name: "nil id",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.ID = uuid.Nil
				return o
			},
			msg: "id обязателен",
		},
		{
			name: "empty creator",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Creator.ShortName = " "
				return o
			},
			msg: "creator.shortName обязателен",
		},
		{
			name: "zero requested send time",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.RequestedSendTime = time.Time{}
				return o
			},
			msg: "requestedSendTime обязателен",
		},
		{
			name: "unknown channel",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.NotificationChannel = "Fax"
				return o
			},
			msg: "notificationChannel",
		},
		{
			name: "email order without templates",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Templates = nil
				return o
			},
			msg: "templates не должен быть пустым",
		},
		{
			name: "empty subject",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Templates[0].Subject = ""
				return o
			},
			msg: "subject обязателен",
		},
		{
			name: "empty body",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Templates[0].Body = ""
				return o
			},
			msg: "body обязателен",
		},
		{
			name: "unknown content type",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Templates[0].ContentType = "Markdown"
				return o
			},
			msg: "contentType",
		},
		{
			name: "bad from address",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Templates[0].FromAddress = "Sender <noreply@example.com>"
				return o
			},
			msg: "fromAddress некорректен",
		},
		{
			name: "no recipients",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Recipients = nil
				return o
			},
			msg: "recipients не должен быть пустым",
		},
		{
			name: "unknown address type",
			makeOrder: func() *domain.NotificationOrder {
				o := validOrder()
				o.Recipients[0].AddressInfo[0].AddressType = "Pigeon"
				return o
			},
			msg: "addressType",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeOrder())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected message to contain %q, got: %v", tc.msg, err)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := map[string]bool{
		"user@example.com":         true,
		" user@example.com ":       true,
		"":                         false,
		"not-an-email":             false,
		"User <user@example.com>":  false,
		"user@":                    false,
		"first.last+tag@sub.co.uk": true,
	}
	for in, want := range tests {
		if got := validate.IsEmail(in); got != want {
			t.Fatalf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}
