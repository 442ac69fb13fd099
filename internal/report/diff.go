package report

import (
	"sort"

	"github.com/verte-zerg/charinv/internal/model"
)

// DiffChars returns the characters present only in curr (added) and only in
// prev (removed), each sorted by code point.
func DiffChars(prev, curr []model.CharCount) (added, removed []rune) {
	prevSet := make(map[rune]struct{}, len(prev))
	for _, cc := range prev {
		prevSet[cc.Char] = struct{}{}
	}
	currSet := make(map[rune]struct{}, len(curr))
	for _, cc := range curr {
		currSet[cc.Char] = struct{}{}
		if _, ok := prevSet[cc.Char]; !ok {
			added = append(added, cc.Char)
		}
	}
	for _, cc := range prev {
		if _, ok := currSet[cc.Char]; !ok {
			removed = append(removed, cc.Char)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return added, removed
}
