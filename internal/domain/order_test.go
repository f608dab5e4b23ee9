package domain_test

import (
	"testing"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/google/uuid"
)

func TestTryParse(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	valid := `{"id":"` + id.String() + `","sendersReference":"ref-1","requestedSendTime":"2023-06-16T08:50:00Z",` +
		`"creator":{"shortName":"ttd"},"created":"2023-06-16T08:45:00Z","notificationChannel":"Email",` +
		`"templates":[{"fromAddress":"sender@domain.com","subject":"subject","body":"body","contentType":"Plain"}],` +
		`"recipients":[{"recipientId":"r-1","addressInfo":[{"addressType":"Email","emailAddress":"recipient@domain.com"}]}]}`

	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"valid order", valid, true},
		{"unknown fields tolerated", `{"id":"` + id.String() + `","extra":42}`, true},
		{"empty payload", "", false},
		{"not json", "not-a-json", false},
		{"truncated json", `{"id":"` + id.String() + `"`, false},
		{"trailing data", `{"id":"` + id.String() + `"} {}`, false},
		{"missing id", `{"sendersReference":"ref-1"}`, false},
		{"nil id", `{"id":"00000000-0000-0000-0000-000000000000"}`, false},
		{"bad id", `{"id":"not-a-uuid"}`, false},
		{"json array", `[]`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			order, ok := domain.TryParse([]byte(tt.raw))
			if ok != tt.wantOK {
				t.Fatalf("TryParse(%q): ok=%v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && order.ID != id {
				t.Fatalf("id: want %s, got %s", id, order.ID)
			}
			if !ok && order.ID != uuid.Nil {
				t.Fatalf("failed parse must return zero order, got %+v", order)
			}
		})
	}
}

func TestTryParse_Fields(t *testing.T) {
	src := domain.NotificationOrder{
		ID:                  uuid.New(),
		SendersReference:    "ref-2",
		RequestedSendTime:   time.Date(2023, 6, 16, 8, 50, 0, 0, time.UTC),
		Creator:             domain.Creator{ShortName: "ttd"},
		Created:             time.Date(2023, 6, 16, 8, 45, 0, 0, time.UTC),
		NotificationChannel: domain.ChannelEmail,
		Templates:           []domain.EmailTemplate{{FromAddress: "a@b.c", Subject: "s", Body: "b", ContentType: "Html"}},
		Recipients: []domain.Recipient{{
			RecipientID: "r-1",
			AddressInfo: []domain.AddressPoint{{AddressType: domain.AddressEmail, EmailAddress: "x@y.z"}},
		}},
	}

	raw, err := src.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, ok := domain.TryParse(raw)
	if !ok {
		t.Fatalf("TryParse must accept serialized order: %s", raw)
	}
	if got.SendersReference != "ref-2" || got.Creator.ShortName != "ttd" || got.NotificationChannel != domain.ChannelEmail {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got.RequestedSendTime.Equal(src.RequestedSendTime) {
		t.Fatalf("requestedSendTime: want %v, got %v", src.RequestedSendTime, got.RequestedSendTime)
	}
	tpl, ok := got.EmailTemplate()
	if !ok || tpl.Subject != "s" || tpl.ContentType != "Html" {
		t.Fatalf("unexpected template: %+v ok=%v", tpl, ok)
	}
	if len(got.Recipients) != 1 || got.Recipients[0].AddressInfo[0].EmailAddress != "x@y.z" {
		t.Fatalf("unexpected recipients: %+v", got.Recipients)
	}
}

func TestEmailTemplate_Missing(t *testing.T) {
	var o domain.NotificationOrder
	if _, ok := o.EmailTemplate(); ok {
		t.Fatalf("order without templates must return ok=false")
	}
}
