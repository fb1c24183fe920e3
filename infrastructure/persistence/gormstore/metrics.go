package gormstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// uowTransactions 工作单元结果计数：committed / rolled_back / commit_failed
	uowTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "uow",
			Name:      "transactions_total",
			Help:      "Total number of unit of work executions by outcome",
		},
		[]string{"outcome"},
	)

	// searchDuration 仓储搜索耗时（count + fetch）
	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "repository",
			Name:      "search_duration_seconds",
			Help:      "Repository search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"aggregate"},
	)

	// outboxEvents 写入 outbox 的事件数
	outboxEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "outbox",
			Name:      "events_saved_total",
			Help:      "Total number of domain events saved to the outbox",
		},
		[]string{"event"},
	)
)
