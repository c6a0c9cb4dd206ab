package itinerary

import (
	"github.com/seungyeonleeee/triply/internal/domain"
)

// Entry is an item prepared for display.
type Entry struct {
	Item    domain.Item `json:"item"`
	Badge   Badge       `json:"badge"`
	Label   string      `json:"label"`
	Icon    string      `json:"icon"`
	HasMemo bool        `json:"hasMemo"`
}

// DayPlan is one day of the timeline with its ordered entries and the
// distances between them.
type DayPlan struct {
	Day     Day     `json:"day"`
	Entries []Entry `json:"entries"`
	Gaps    []Gap   `json:"gaps,omitempty"`
}

// GapAfter returns the gap that follows the entry with the given item id.
func (p DayPlan) GapAfter(itemID string) (Gap, bool) {
	for _, g := range p.Gaps {
		if g.FromID == itemID {
			return g, true
		}
	}
	return Gap{}, false
}

// Timeline is the whole trip laid out by day.
//
// Undated trips have no days; all their items are listed in Unassigned.
// Items whose day lies past the trip end are listed there too.
type Timeline struct {
	TripID     string        `json:"tripId"`
	Title      string        `json:"title"`
	DateRange  string        `json:"dateRange"`
	Days       []DayPlan     `json:"days"`
	Undated    bool          `json:"undated"`
	Unassigned []domain.Item `json:"unassigned,omitempty"`
}

// PlanDay builds the display plan of a single day from normalized items.
func PlanDay(day Day, normalized []domain.Item) DayPlan {
	items := ItemsForDay(normalized, day.Number)
	badges := AssignBadges(items)

	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = Entry{
			Item:    it,
			Badge:   badges[i],
			Label:   Label(it),
			Icon:    Icon(it),
			HasMemo: it.Memo != "",
		}
	}

	return DayPlan{Day: day, Entries: entries, Gaps: AnnotateDistances(items)}
}

// Build lays out the trip's items over its days.
func Build(trip domain.Trip) Timeline {
	items := Normalize(trip.Items)
	days := GenerateDays(trip.StartDate, trip.EndDate)

	tl := Timeline{
		TripID:    trip.ID,
		Title:     Title(trip),
		DateRange: DateRangeLabel(trip),
		Undated:   len(days) == 0,
	}

	for _, d := range days {
		tl.Days = append(tl.Days, PlanDay(d, items))
	}

	for _, it := range items {
		if it.Day > len(days) {
			tl.Unassigned = append(tl.Unassigned, it)
		}
	}
	sortByDayAndTime(tl.Unassigned)

	return tl
}

// Title is the trip heading: the first item's name followed by "여행".
func Title(trip domain.Trip) string {
	first := "미정"
	if len(trip.Items) > 0 && trip.Items[0].Name != "" {
		first = trip.Items[0].Name
	}
	return first + " 여행"
}

// DateRangeLabel renders the trip dates as "M/D ~ M/D", "M/D" or "미정".
func DateRangeLabel(trip domain.Trip) string {
	if trip.StartDate == nil || trip.StartDate.IsZero() {
		return "미정"
	}
	if trip.EndDate == nil || trip.EndDate.IsZero() {
		return trip.StartDate.ShortLabel()
	}
	return trip.StartDate.ShortLabel() + " ~ " + trip.EndDate.ShortLabel()
}
