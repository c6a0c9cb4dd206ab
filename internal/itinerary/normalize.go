package itinerary

import (
	"cmp"
	"slices"
	"strings"

	"github.com/seungyeonleeee/triply/internal/domain"
)

// Normalize returns a copy of items in which every item has a positive day
// and a known type. Items recorded before days existed belong to day 1.
func Normalize(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = normalizeItem(it)
	}
	return out
}

func normalizeItem(it domain.Item) domain.Item {
	if it.Day < 1 {
		it.Day = 1
	}
	it.Type = domain.ParseItemType(string(it.Type))
	return it
}

// ItemsForDay returns the items of the given day ordered by time of day.
//
// Times are compared as plain strings, so "09:00" < "10:00" but "9:00" >
// "10:00". Items without a time come first; equal times keep their input order.
func ItemsForDay(normalized []domain.Item, day int) []domain.Item {
	var out []domain.Item
	for _, it := range normalized {
		if it.Day == day {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Item) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// sortByDayAndTime orders items the way an undated trip lists them.
func sortByDayAndTime(items []domain.Item) {
	slices.SortStableFunc(items, func(a, b domain.Item) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return strings.Compare(a.Time, b.Time)
	})
}
