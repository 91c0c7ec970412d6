package domain

// Item names with special handling
const (
	ItemAgedBrie  = "Aged Brie"
	ItemBackstage = "Backstage passes to a TAFKAL80ETC concert"
	ItemSulfuras  = "Sulfuras, Hand of Ragnaros"

	// ConjuredMarker anywhere in a name marks the item as conjured
	ConjuredMarker = "Conjured"
)

// Quality bounds for every item except the legendary one
const (
	MinQuality = 0
	MaxQuality = 50

	// LegendaryQuality is the quality the legendary item is stocked with.
	// It is outside the normal range and never changes.
	LegendaryQuality = 80
)

// Backstage pass bonus thresholds, compared against sellIn before the daily decrement
const (
	BackstageFirstBonusBelow  = 11
	BackstageSecondBonusBelow = 6
)
