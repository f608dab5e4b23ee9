package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of orders processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_skipped_total",
			Help: "Number of messages skipped without acknowledgment (undecodable payload)",
		},
		[]string{"topic"},
	)
	KafkaMessagesAcknowledged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_acknowledged_total",
			Help: "Number of messages committed and stored in the offset ledger",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of fatal consumer failures by stage",
		},
		[]string{"topic", "stage"}, // poll|process|commit|store
	)
	ConsumerRestarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_restarts_total",
			Help: "Number of consumer restarts performed by the supervisor",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация в дефолтном реестре; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesSkipped,
			KafkaMessagesAcknowledged, KafkaMessagesFailed, ConsumerRestarts,
			CacheOps, CacheSize,
		)
	})
}
