package domain

import "fmt"

// Item is a single stocked item. SellIn and Quality are mutated in place by
// the daily update; Name never changes.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`

	class Class
}

// NewItem creates an item and classifies it by name
func NewItem(name string, sellIn, quality int) *Item {
	return ClassifyName(name).NewItem(sellIn, quality)
}

// Classification returns the item's category and conjured flag.
// The result is derived from Name on first use and re-derived only if Name
// no longer matches the name it was derived from.
func (i *Item) Classification() (Category, bool) {
	if !i.class.IsValid() || i.class.name != i.Name {
		i.class = ClassifyName(i.Name)
	}
	return i.class.category, i.class.conjured
}

// IsLegendary reports whether the item is exempt from all changes
func (i *Item) IsLegendary() bool {
	category, _ := i.Classification()
	return category == CategoryLegendary
}

// String renders the item as "<name>, <sellIn>, <quality>"
func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
