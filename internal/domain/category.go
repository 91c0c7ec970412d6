package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category selects the quality rules an item follows
type Category string

const (
	CategoryNormal    Category = "NORMAL"
	CategoryAgedBrie  Category = "AGED_BRIE"
	CategoryBackstage Category = "BACKSTAGE"
	CategoryLegendary Category = "LEGENDARY"
)

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryNormal,
	CategoryAgedBrie,
	CategoryBackstage,
	CategoryLegendary,
}

// Classify derives the category and conjured flag from an item name.
// Special names match exactly after NFC normalization; the conjured marker
// may appear anywhere in the name.
func Classify(name string) (Category, bool) {
	normalized := NormalizeName(name)
	conjured := strings.Contains(normalized, ConjuredMarker)

	switch normalized {
	case ItemAgedBrie:
		return CategoryAgedBrie, conjured
	case ItemBackstage:
		return CategoryBackstage, conjured
	case ItemSulfuras:
		return CategoryLegendary, false
	default:
		return CategoryNormal, conjured
	}
}

// NormalizeName returns the NFC form of a name
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Class is the classification of one item name. Only ClassifyName fills it
// in, so a populated Class always agrees with its name and can be cached
// and reused to build items without classifying again.
type Class struct {
	name     string
	category Category
	conjured bool
}

// ClassifyName classifies name
func ClassifyName(name string) Class {
	category, conjured := Classify(name)
	return Class{name: name, category: category, conjured: conjured}
}

func (c Class) Category() Category { return c.category }
func (c Class) Conjured() bool     { return c.conjured }

// IsValid reports whether c came from ClassifyName. The zero Class is not valid.
func (c Class) IsValid() bool {
	return c.category.IsValid()
}

// NewItem creates an item with this class's name, already classified
func (c Class) NewItem(sellIn, quality int) *Item {
	return &Item{Name: c.name, SellIn: sellIn, Quality: quality, class: c}
}
