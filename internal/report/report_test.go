package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

func TestLine(t *testing.T) {
	assert.Equal(t, "Aged Brie, -2, 8", Line(domain.NewItem(domain.ItemAgedBrie, -2, 8)))
}

func TestWriteDay(t *testing.T) {
	var buf bytes.Buffer
	items := []*domain.Item{
		domain.NewItem("Elixir of the Mongoose", 5, 7),
		nil,
		domain.NewItem(domain.ItemSulfuras, 0, 80),
	}

	require.NoError(t, WriteDay(&buf, 3, items))

	want := "-------- day 3 --------\n" +
		"name, sellIn, quality\n" +
		"Elixir of the Mongoose, 5, 7\n" +
		"Sulfuras, Hand of Ragnaros, 0, 80\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDay_WriterError(t *testing.T) {
	err := WriteDay(failingWriter{}, 1, []*domain.Item{domain.NewItem("Vest", 1, 1)})
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, err, "day 1")
}

// TestFixtureOutput checks the text fixture for the standard inventory
// against known-good output.
func TestFixtureOutput(t *testing.T) {
	var buf bytes.Buffer
	svc := shop.NewService(shop.NewEngine())

	err := svc.Simulate(context.Background(), item.DefaultItems(), 2, DayWriter(&buf))
	require.NoError(t, err)

	want := `-------- day 0 --------
name, sellIn, quality
+5 Dexterity Vest, 10, 20
Aged Brie, 2, 0
Elixir of the Mongoose, 5, 7
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 15, 20
Backstage passes to a TAFKAL80ETC concert, 10, 49
Backstage passes to a TAFKAL80ETC concert, 5, 49
Conjured Mana Cake, 3, 6

-------- day 1 --------
name, sellIn, quality
+5 Dexterity Vest, 9, 19
Aged Brie, 1, 1
Elixir of the Mongoose, 4, 6
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 14, 21
Backstage passes to a TAFKAL80ETC concert, 9, 50
Backstage passes to a TAFKAL80ETC concert, 4, 50
Conjured Mana Cake, 2, 4

-------- day 2 --------
name, sellIn, quality
+5 Dexterity Vest, 8, 18
Aged Brie, 0, 2
Elixir of the Mongoose, 3, 5
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 13, 22
Backstage passes to a TAFKAL80ETC concert, 8, 50
Backstage passes to a TAFKAL80ETC concert, 3, 50
Conjured Mana Cake, 1, 2

`
	assert.Equal(t, want, buf.String())
}
