package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Simulation Metrics
var (
	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDaysAdvanced,
			Help:      HelpTextDaysAdvanced,
		},
	)

	InventorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameInventorySize,
			Help:      HelpTextInventorySize,
		},
	)
)

// Item Metrics
var (
	ItemsAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsAdvanced,
			Help:      HelpTextItemsAdvanced,
		},
		[]string{LabelCategory, LabelConjured},
	)

	QualityGained = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameQualityGained,
			Help:      HelpTextQualityGained,
		},
		[]string{LabelCategory},
	)

	QualityLost = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameQualityLost,
			Help:      HelpTextQualityLost,
		},
		[]string{LabelCategory},
	)

	ItemsPastSellBy = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsPastSellBy,
			Help:      HelpTextItemsPastSellBy,
		},
		[]string{LabelCategory},
	)

	QualityDelta = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameQualityDelta,
			Help:      HelpTextQualityDelta,
			Buckets:   QualityDeltaBuckets,
		},
		[]string{LabelCategory},
	)
)
