package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/notifications/internal/domain"
	"github.com/Gunvolt24/notifications/pkg/metrics"
)

// evictOldest — удаляет наименее используемую запись.
func (c *SummaryCache) evictOldest() {
	if back := c.ll.Back(); back != nil {
		c.remove(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

func (c *SummaryCache) remove(elem *list.Element) {
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.items, ent.key)
	}
	c.ll.Remove(elem)
}

func (c *SummaryCache) expired(ent *entry, now time.Time) bool {
	return c.ttl > 0 && now.After(ent.expiresAt)
}

func (c *SummaryCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpired — вычищает просроченные записи с хвоста до первой актуальной.
// Хвост — самые давно использованные, но не обязательно самые старые по TTL,
// поэтому это лишь дешёвая уборка перед вставкой.
func (c *SummaryCache) pruneExpired(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		if !c.expired(back.Value.(*entry), now) {
			return
		}
		c.remove(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

func (c *SummaryCache) reportSize() {
	metrics.CacheSize.Set(float64(len(c.items)))
}

// cloneSummary — копия сводки, чтобы внешние изменения не отражались на кэше.
func cloneSummary(s *domain.EmailNotificationSummary) *domain.EmailNotificationSummary {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Notifications != nil {
		cp.Notifications = append([]domain.EmailNotificationWithResult(nil), s.Notifications...)
	}
	return &cp
}
