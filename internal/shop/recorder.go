package shop

import "github.com/osse101/GildedRose_Go/internal/domain"

// Recorder observes the engine's work. Implementations must not modify items.
type Recorder interface {
	// ObserveItem is called once per non-legendary item per day
	ObserveItem(category domain.Category, conjured bool, qualityDelta int, pastSellBy bool)
	// ObserveDay is called once per AdvanceOneDay call
	ObserveDay(itemCount int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveItem(domain.Category, bool, int, bool) {}
func (noopRecorder) ObserveDay(int)                               {}
