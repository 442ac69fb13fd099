package report

import (
	"sort"

	"github.com/verte-zerg/charinv/internal/charset"
	"github.com/verte-zerg/charinv/internal/model"
)

// TopCharsByFrequency returns the n most frequent characters. Ties keep the
// inventory's first-seen order.
func TopCharsByFrequency(inv *charset.Inventory, n int) []model.CharCount {
	if n <= 0 || inv == nil || inv.Len() == 0 {
		return nil
	}
	items := inv.Counts()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
