package validate

import (
	"context"
	"errors"
	"testing"
)

func TestValidateOrderFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	order, err := ValidateOrderFromJSON(ctx, validator, []byte(minimalValidOrderJSON(testOrderID1, "user@example.com")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID.String() != testOrderID1 {
		t.Fatalf("unexpected order id: %s", order.ID)
	}
}

func TestValidateOrderFromJSON_UnknownFieldTolerated(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// консьюмер не отбрасывает сообщения с новыми полями
	raw := `{"unknown":"x",` + minimalValidOrderJSON(testOrderID2, "user@example.com")[1:]
	if _, err := ValidateOrderFromJSON(ctx, validator, []byte(raw)); err != nil {
		t.Fatalf("unknown fields must be tolerated, got: %v", err)
	}
}

func TestValidateOrderFromJSON_Undecodable(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	for _, raw := range []string{
		"not-a-json",
		minimalValidOrderJSON(testOrderID3, "user@example.com") + "{}",
		`{"id":"00000000-0000-0000-0000-000000000000"}`,
	} {
		if _, err := ValidateOrderFromJSON(ctx, validator, []byte(raw)); !errors.Is(err, ErrUndecodable) {
			t.Fatalf("expected ErrUndecodable for %.40q, got: %v", raw, err)
		}
	}
}

func TestValidateOrderFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// разбирается, но без creator
	raw := `{"id":"` + testOrderID1 + `","requestedSendTime":"2023-06-16T08:50:00Z","notificationChannel":"Email"}`
	_, err := ValidateOrderFromJSON(ctx, validator, []byte(raw))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected domain validation error, got %v", err)
	}
}

// ---- helpers ----

const (
	testOrderID1 = "0f1e2d3c-4b5a-4968-8776-655443322110"
	testOrderID2 = "1a2b3c4d-5e6f-4a0b-9c1d-2e3f4a5b6c7d"
	testOrderID3 = "9e8d7c6b-5a49-4382-a716-253443526170"
)

func minimalValidOrderJSON(id, email string) string {
	return `{
  "id": "` + id + `",
  "sendersReference": "ref",
  "requestedSendTime": "2023-06-16T08:50:00Z",
  "creator": {"shortName": "ttd"},
  "created": "2023-06-16T08:45:00Z",
  "notificationChannel": "Email",
  "templates": [{"fromAddress":"noreply@example.com","subject":"s","body":"b","contentType":"Plain"}],
  "recipients": [{"recipientId":"r-1","addressInfo":[{"addressType":"Email","emailAddress":"` + email + `"}]}]
}`
}
