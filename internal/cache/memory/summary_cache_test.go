package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/google/uuid"
)

func newSummary(ref string) *domain.EmailNotificationSummary {
	return &domain.EmailNotificationSummary{
		OrderID:          uuid.New(),
		SendersReference: ref,
		Generated:        1,
		Notifications: []domain.EmailNotificationWithResult{{
			ID:           uuid.New(),
			Recipient:    domain.EmailRecipient{ToAddress: "u@e.com"},
			ResultStatus: domain.NotificationResult{Result: domain.EmailNew},
		}},
	}
}

// fakeClock — управляемое время для проверок TTL.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewSummaryCache(2, 5*time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "ttd/1"); ok {
		t.Fatalf("expected miss before Set")
	}

	_ = c.Set(ctx, "ttd/1", newSummary("ref-1"))
	got, ok := c.Get(ctx, "ttd/1")
	if !ok || got.SendersReference != "ref-1" {
		t.Fatalf("expected hit for ttd/1")
	}
}

func TestTTL_AbsoluteExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewSummaryCache(2, time.Minute)
	c.now = clock.Now
	ctx := context.Background()

	_ = c.Set(ctx, "k", newSummary("ref"))
	clock.Advance(40 * time.Second)
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before TTL")
	}
	// попадание не продлевает TTL
	clock.Advance(30 * time.Second)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed, len=%d", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewSummaryCache(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "A", newSummary("A"))
	_ = c.Set(ctx, "B", newSummary("B"))
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// C вытеснит B — к нему обращались раньше всех
	_ = c.Set(ctx, "C", newSummary("C"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	for _, k := range []string{"A", "C"} {
		if _, ok := c.Get(ctx, k); !ok {
			t.Fatalf("expected hit for %s", k)
		}
	}
}

func TestSet_Overwrite(t *testing.T) {
	c := NewSummaryCache(1, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "k", newSummary("old"))
	_ = c.Set(ctx, "k", newSummary("new"))

	got, ok := c.Get(ctx, "k")
	if !ok || got.SendersReference != "new" {
		t.Fatalf("expected overwritten value, got %+v", got)
	}
	if c.Len() != 1 {
		t.Fatalf("overwrite must not grow cache, len=%d", c.Len())
	}
}

func TestSet_IgnoresNilAndEmptyKey(t *testing.T) {
	c := NewSummaryCache(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "k", nil)
	_ = c.Set(ctx, " ", newSummary("x"))
	if c.Len() != 0 {
		t.Fatalf("nothing must be stored, len=%d", c.Len())
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := NewSummaryCache(2, 0)
	ctx := context.Background()

	src := newSummary("ref")
	_ = c.Set(ctx, "k", src)
	src.Notifications[0].Succeeded = true

	got, _ := c.Get(ctx, "k")
	if got.Notifications[0].Succeeded {
		t.Fatalf("cache must not share notifications with caller")
	}
	got.Notifications[0].Recipient.ToAddress = "changed"

	again, _ := c.Get(ctx, "k")
	if again.Notifications[0].Recipient.ToAddress != "u@e.com" {
		t.Fatalf("cache must return copies")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewSummaryCache(16, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			for j := 0; j < 100; j++ {
				_ = c.Set(ctx, key, newSummary(key))
				_, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 8 {
		t.Fatalf("expected 8 entries, got %d", c.Len())
	}
}
