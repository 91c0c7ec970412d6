package metrics

import (
	"strconv"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// EngineRecorder feeds the daily update engine's observations into the
// package metrics. It satisfies shop.Recorder.
type EngineRecorder struct{}

// NewEngineRecorder creates a new engine recorder. Series for every
// category the engine updates are created up front so an export lists them
// even when a run never touched that category.
func NewEngineRecorder() *EngineRecorder {
	for _, category := range domain.AllCategories {
		if category == domain.CategoryLegendary {
			continue
		}
		label := string(category)
		ItemsAdvanced.WithLabelValues(label, strconv.FormatBool(false))
		QualityGained.WithLabelValues(label)
		QualityLost.WithLabelValues(label)
		ItemsPastSellBy.WithLabelValues(label)
	}
	return &EngineRecorder{}
}

// ObserveItem records one item update
func (r *EngineRecorder) ObserveItem(category domain.Category, conjured bool, qualityDelta int, pastSellBy bool) {
	label := string(category)

	ItemsAdvanced.WithLabelValues(label, strconv.FormatBool(conjured)).Inc()
	QualityDelta.WithLabelValues(label).Observe(float64(qualityDelta))

	switch {
	case qualityDelta > 0:
		QualityGained.WithLabelValues(label).Add(float64(qualityDelta))
	case qualityDelta < 0:
		QualityLost.WithLabelValues(label).Add(float64(-qualityDelta))
	}

	if pastSellBy {
		ItemsPastSellBy.WithLabelValues(label).Inc()
	}
}

// ObserveDay records one completed daily update
func (r *EngineRecorder) ObserveDay(itemCount int) {
	DaysAdvanced.Inc()
	InventorySize.Set(float64(itemCount))
}
