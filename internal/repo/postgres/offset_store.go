package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.OffsetStore = (*OffsetStore)(nil)

// OffsetStore — журнал подтверждённых offset'ов консьюмера.
// Хранит следующий к чтению offset по (group, topic, partition).
type OffsetStore struct {
	pool *pgxpool.Pool
}

func NewOffsetStore(pool *pgxpool.Pool) *OffsetStore { return &OffsetStore{pool: pool} }

// StoreOffset — upsert; offset никогда не уменьшается (повторная доставка старого сообщения
// не откатывает журнал назад).
func (s *OffsetStore) StoreOffset(ctx context.Context, off ports.ConsumerOffset) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO notifications.consumer_offsets (groupid, topic, partition, "offset", updated)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (groupid, topic, partition) DO UPDATE SET
			"offset" = GREATEST(notifications.consumer_offsets."offset", EXCLUDED."offset"),
			updated = now()
	`, off.GroupID, off.Topic, off.Partition, off.Offset); err != nil {
		return fmt.Errorf("upsert consumer offset: %w", err)
	}
	return nil
}

// Offset — сохранённый offset; ok=false, если для партиции ещё ничего не записано.
func (s *OffsetStore) Offset(ctx context.Context, groupID, topic string, partition int) (int64, bool, error) {
	var off int64
	err := s.pool.QueryRow(ctx, `
		SELECT "offset" FROM notifications.consumer_offsets
		WHERE groupid = $1 AND topic = $2 AND partition = $3
	`, groupID, topic, partition).Scan(&off)
	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select consumer offset: %w", err)
	}
	return off, true, nil
}
