package memory

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/Gunvolt24/notifications/pkg/metrics"
)

var _ ports.SummaryCache = (*SummaryCache)(nil)

type entry struct {
	key       string
	summary   *domain.EmailNotificationSummary
	expiresAt time.Time
}

// SummaryCache — LRU-кэш сводок с абсолютным TTL: статусы писем меняются,
// поэтому попадание не продлевает жизнь записи.
type SummaryCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

// NewSummaryCache — capacity <= 0 трактуется как 1, ttl <= 0 — без истечения.
func NewSummaryCache(capacity int, ttl time.Duration) *SummaryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SummaryCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *SummaryCache) Get(_ context.Context, key string) (*domain.EmailNotificationSummary, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.expired(ent, now) {
		c.remove(elem)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.reportSize()
		return nil, false
	}

	c.ll.MoveToFront(elem)
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneSummary(ent.summary), true
}

func (c *SummaryCache) Set(_ context.Context, key string, s *domain.EmailNotificationSummary) error {
	if s == nil || strings.TrimSpace(key) == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry)
		ent.summary = cloneSummary(s)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpired(now)

	c.items[key] = c.ll.PushFront(&entry{
		key:       key,
		summary:   cloneSummary(s),
		expiresAt: c.expiryFrom(now),
	})
	for c.ll.Len() > c.capacity {
		c.evictOldest()
	}
	c.reportSize()
	return nil
}

// Len — число записей, включая ещё не вычищенные просроченные.
func (c *SummaryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
