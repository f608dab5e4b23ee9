package ports

import "context"

// ConsumerOffset — следующий к чтению offset партиции для группы.
type ConsumerOffset struct {
	GroupID   string
	Topic     string
	Partition int
	Offset    int64
}

// OffsetStore — локальный журнал подтверждённых позиций консьюмера.
type OffsetStore interface {
	StoreOffset(ctx context.Context, off ConsumerOffset) error
}
