// Package metrics holds the application-level Prometheus collectors.
// HTTP request metrics live in the router; these cover the domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "health_api"

var (
	// Record counters per entity type
	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of health records created",
	}, []string{"record_type"})

	RecordsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of health records deleted",
	}, []string{"record_type"})

	// Streak metrics
	StreakAdvances = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "streak_advances_total",
		Help:      "Total number of streak counter advances",
	}, []string{"streak_type"})

	StreakCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "streak_current_days",
		Help:      "Current consecutive-day count per streak type",
	}, []string{"streak_type"})

	// Advice engine metrics
	AdviceGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advice_generated_total",
		Help:      "Total number of advice list generations",
	})

	AdviceItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advice_items_total",
		Help:      "Total number of advice items emitted, by priority",
	}, []string{"priority"})
)
