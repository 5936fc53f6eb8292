package storage

import (
	"sort"
	"time"
)

// sortNewestFirst orders items by createdAt descending. Wall-clock stamps
// can collide, so ties fall back to id descending, which tracks insertion
// order for snowflake ids.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}

// head returns the first limit items. Negative limits are treated as zero.
func head[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if limit > len(items) {
		limit = len(items)
	}
	return items[:limit]
}
