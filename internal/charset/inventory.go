// Package charset extracts, counts and classifies characters.
package charset

import (
	"sort"

	"github.com/verte-zerg/charinv/internal/model"
)

// Inventory holds character frequencies together with the order in which
// characters were first counted.
type Inventory struct {
	freq  map[rune]int
	order []rune
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{freq: map[rune]int{}}
}

// Add counts n occurrences of r.
func (inv *Inventory) Add(r rune, n int) {
	if n <= 0 {
		return
	}
	if _, ok := inv.freq[r]; !ok {
		inv.order = append(inv.order, r)
	}
	inv.freq[r] += n
}

// Merge adds every count of other into inv, in other's first-seen order.
func (inv *Inventory) Merge(other *Inventory) {
	if other == nil {
		return
	}
	for _, r := range other.order {
		inv.Add(r, other.freq[r])
	}
}

// Count returns the occurrence count of r.
func (inv *Inventory) Count(r rune) int {
	return inv.freq[r]
}

// Contains reports whether r was seen.
func (inv *Inventory) Contains(r rune) bool {
	_, ok := inv.freq[r]
	return ok
}

// Len returns the number of unique characters.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Total returns the sum of all frequencies.
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv.freq {
		total += n
	}
	return total
}

// Chars returns the unique characters in first-seen order.
func (inv *Inventory) Chars() []rune {
	out := make([]rune, len(inv.order))
	copy(out, inv.order)
	return out
}

// Sorted returns the unique characters sorted by code point.
func (inv *Inventory) Sorted() []rune {
	out := inv.Chars()
	sortRunes(out)
	return out
}

// Counts returns per-character counts in first-seen order.
func (inv *Inventory) Counts() []model.CharCount {
	out := make([]model.CharCount, 0, len(inv.order))
	for _, r := range inv.order {
		out = append(out, model.CharCount{Char: r, Count: inv.freq[r]})
	}
	return out
}

// Filter returns a new inventory with only the characters keep accepts.
// Counts and relative order are carried over unchanged.
func (inv *Inventory) Filter(keep func(rune) bool) *Inventory {
	out := NewInventory()
	for _, r := range inv.order {
		if keep(r) {
			out.Add(r, inv.freq[r])
		}
	}
	return out
}

func sortRunes(runes []rune) {
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
}
