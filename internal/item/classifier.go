package item

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Classifier classifies item names, remembering the most recently seen names
// so large inventories with repeated names classify each name once.
type Classifier struct {
	cache *lru.Cache[string, domain.Class]
}

// NewClassifier creates a classifier holding up to size names
func NewClassifier(size int) (*Classifier, error) {
	cache, err := lru.New[string, domain.Class](size)
	if err != nil {
		return nil, err
	}
	return &Classifier{cache: cache}, nil
}

func (c *Classifier) class(name string) domain.Class {
	if cached, ok := c.cache.Get(name); ok {
		return cached
	}

	class := domain.ClassifyName(name)
	c.cache.Add(name, class)
	return class
}

// Classify returns the category and conjured flag for name
func (c *Classifier) Classify(name string) (domain.Category, bool) {
	class := c.class(name)
	return class.Category(), class.Conjured()
}

// NewItem creates a classified item
func (c *Classifier) NewItem(name string, sellIn, quality int) *domain.Item {
	return c.class(name).NewItem(sellIn, quality)
}

// Len returns the number of cached names
func (c *Classifier) Len() int {
	return c.cache.Len()
}
