// Package itinerary turns a trip's flat item list into a day-by-day timeline:
// day enumeration, item normalization, per-day ordering, sequence badges,
// labels and icons, and distances between consecutive stops.
//
// Every function here is pure. Malformed input is coerced or skipped, never
// reported as an error.
package itinerary

import "github.com/seungyeonleeee/triply/internal/domain"

// Day describes one calendar day of a trip.
type Day struct {
	Number int         `json:"day"`
	Date   domain.Date `json:"date"`
	Label  string      `json:"label"`
}

// GenerateDays enumerates every date from start to end inclusive, numbering
// them from 1. A missing bound yields no days. So does an end before the
// start; callers that need to tell the two apart must compare the dates.
func GenerateDays(start, end *domain.Date) []Day {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return nil
	}

	var days []Day
	for d := *start; !d.After(*end); d = d.AddDays(1) {
		days = append(days, Day{
			Number: len(days) + 1,
			Date:   d,
			Label:  d.ShortLabel(),
		})
	}
	return days
}
