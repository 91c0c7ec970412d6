package shop

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// The methods below expose each daily rule on its own. Each is only valid
// under its precondition and returns a domain rule error when misused.
// AdvanceOneDay does not go through them; it branches on category directly.

// UpdateSellIn decrements sellIn by one, saturating at math.MinInt.
// Returns ErrLegendaryImmutable for the legendary item.
func (e *Engine) UpdateSellIn(item *domain.Item) error {
	if item.IsLegendary() {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrLegendaryImmutable, item.Name)
	}
	elapse(item)
	return nil
}

// DecreaseQuality lowers quality by one, or to zero for a backstage pass.
// Only valid when quality is positive and the item is not legendary.
func (e *Engine) DecreaseQuality(item *domain.Item) error {
	if item.Quality <= domain.MinQuality {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrQualityNotPositive, item.Name)
	}
	category, _ := item.Classification()
	if category == domain.CategoryLegendary {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrLegendaryImmutable, item.Name)
	}
	if category == domain.CategoryBackstage {
		item.Quality = domain.MinQuality
		return nil
	}
	item.Quality--
	return nil
}

// IncreaseQuality raises quality by one.
// Only valid when quality is below MaxQuality and the item is not legendary.
func (e *Engine) IncreaseQuality(item *domain.Item) error {
	if item.Quality >= domain.MaxQuality {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrQualityTooHigh, item.Name)
	}
	if item.IsLegendary() {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrLegendaryImmutable, item.Name)
	}
	item.Quality++
	return nil
}

// IncreaseBackstageQuality applies the backstage pass bonus increments:
// one when sellIn < 11 and another when sellIn < 6.
// Only valid for backstage passes; stops at the first increment that fails.
func (e *Engine) IncreaseBackstageQuality(item *domain.Item) error {
	category, _ := item.Classification()
	if category != domain.CategoryBackstage {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrMismatchingItem, item.Name)
	}
	if item.SellIn < domain.BackstageFirstBonusBelow {
		if err := e.IncreaseQuality(item); err != nil {
			return err
		}
	}
	if item.SellIn < domain.BackstageSecondBonusBelow {
		if err := e.IncreaseQuality(item); err != nil {
			return err
		}
	}
	return nil
}

// DecreaseConjuredQuality applies the extra decrease for conjured items.
// Only valid for conjured items with positive quality.
func (e *Engine) DecreaseConjuredQuality(item *domain.Item) error {
	if _, conjured := item.Classification(); !conjured {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrMismatchingItem, item.Name)
	}
	return e.DecreaseQuality(item)
}

// ApplyPastSellBy applies the adjustment for items whose sellIn is negative:
// Aged Brie gains one more point, backstage passes drop to zero and every
// other item loses one more point (two when conjured).
func (e *Engine) ApplyPastSellBy(item *domain.Item) error {
	if item.SellIn >= 0 {
		return fmt.Errorf(ErrFmtRuleViolation, domain.ErrSellInNotNegative, item.Name)
	}

	category, conjured := item.Classification()
	if category == domain.CategoryAgedBrie {
		return e.IncreaseQuality(item)
	}

	if err := e.DecreaseQuality(item); err != nil {
		return err
	}
	if conjured && item.Quality > domain.MinQuality {
		return e.DecreaseQuality(item)
	}
	return nil
}
