package item

import "github.com/osse101/GildedRose_Go/internal/domain"

// DefaultItems returns a fresh copy of the standard shop inventory
func DefaultItems() []*domain.Item {
	return []*domain.Item{
		domain.NewItem("+5 Dexterity Vest", 10, 20),
		domain.NewItem(domain.ItemAgedBrie, 2, 0),
		domain.NewItem("Elixir of the Mongoose", 5, 7),
		domain.NewItem(domain.ItemSulfuras, 0, domain.LegendaryQuality),
		domain.NewItem(domain.ItemSulfuras, -1, domain.LegendaryQuality),
		domain.NewItem(domain.ItemBackstage, 15, 20),
		domain.NewItem(domain.ItemBackstage, 10, 49),
		domain.NewItem(domain.ItemBackstage, 5, 49),
		domain.NewItem("Conjured Mana Cake", 3, 6),
	}
}
