// Package report renders inventory state as text.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Header is the column line printed under every day banner
const Header = "name, sellIn, quality"

const dayBannerFmt = "-------- day %d --------"

// Line renders one item as "<name>, <sellIn>, <quality>"
func Line(item *domain.Item) string {
	return item.String()
}

// WriteDay writes the banner, header and one line per item for a day,
// followed by a blank line.
func WriteDay(w io.Writer, day int, items []*domain.Item) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, dayBannerFmt+"\n", day)
	fmt.Fprintln(bw, Header)
	for _, item := range items {
		if item == nil {
			continue
		}
		fmt.Fprintln(bw, Line(item))
	}
	fmt.Fprintln(bw)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write day %d: %w", day, err)
	}
	return nil
}

// DayWriter adapts WriteDay to the simulation's per-day callback
func DayWriter(w io.Writer) func(day int, items []*domain.Item) error {
	return func(day int, items []*domain.Item) error {
		return WriteDay(w, day, items)
	}
}
