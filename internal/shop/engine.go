package shop

import (
	"math"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Engine provides the pure daily update logic (no I/O, no locking).
// Concurrent calls on overlapping item lists are not supported.
type Engine struct {
	recorder Recorder
}

// Option configures an Engine
type Option func(*Engine)

// WithRecorder attaches a recorder that observes every advanced item
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine creates a new daily update engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{recorder: noopRecorder{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AdvanceOneDay moves every item forward by one day, mutating SellIn and
// Quality in place. Items update independently of each other and of their
// order in the slice. It never fails.
func (e *Engine) AdvanceOneDay(items []*domain.Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		e.advanceItem(item)
	}
	e.recorder.ObserveDay(len(items))
}

// advanceItem applies, in order: the quality change for the category using
// the current sellIn, the sellIn decrement, and the past-sell-by adjustment
// when the new sellIn is negative. Both quality steps apply on the day the
// item crosses its sell-by date.
func (e *Engine) advanceItem(item *domain.Item) {
	category, conjured := item.Classification()
	if category == domain.CategoryLegendary {
		return
	}

	before := item.Quality

	switch category {
	case domain.CategoryAgedBrie:
		raise(item)
	case domain.CategoryBackstage:
		raise(item)
		if item.SellIn < domain.BackstageFirstBonusBelow {
			raise(item)
		}
		if item.SellIn < domain.BackstageSecondBonusBelow {
			raise(item)
		}
	default:
		decay(item, conjured)
	}

	elapse(item)

	pastSellBy := item.SellIn < 0
	if pastSellBy {
		switch category {
		case domain.CategoryBackstage:
			item.Quality = domain.MinQuality
		case domain.CategoryAgedBrie:
			raise(item)
		default:
			decay(item, conjured)
		}
	}

	e.recorder.ObserveItem(category, conjured, item.Quality-before, pastSellBy)
}

// elapse removes one day from sellIn. It saturates at math.MinInt rather
// than wrapping to a far-future date.
func elapse(item *domain.Item) {
	if item.SellIn > math.MinInt {
		item.SellIn--
	}
}

// raise adds one quality point, capped at MaxQuality
func raise(item *domain.Item) {
	if item.Quality < domain.MaxQuality {
		item.Quality++
	}
}

// lower removes one quality point, floored at MinQuality
func lower(item *domain.Item) {
	if item.Quality > domain.MinQuality {
		item.Quality--
	}
}

// decay lowers quality once, and once more for conjured items
func decay(item *domain.Item, conjured bool) {
	lower(item)
	if conjured {
		lower(item)
	}
}
