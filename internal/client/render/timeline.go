package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
)

// ItemOrder lists a timeline's items in the order Timeline prints them.
// Item numbers typed at the prompt index into this slice from 1.
func ItemOrder(tl itinerary.Timeline) []domain.Item {
	var items []domain.Item
	for _, d := range tl.Days {
		for _, e := range d.Entries {
			items = append(items, e.Item)
		}
	}
	return append(items, tl.Unassigned...)
}

func (r *Renderer) badgeText(b itinerary.Badge) string {
	if b.Number > 0 {
		return r.badge.Render(fmt.Sprintf(" %d ", b.Number))
	}
	return " " + b.Icon + " "
}

func (r *Renderer) entryLine(n int, e itinerary.Entry) string {
	parts := []string{r.dim.Render(fmt.Sprintf("#%-2d", n)), r.badgeText(e.Badge)}
	if e.Item.Time != "" {
		parts = append(parts, r.accent.Render(e.Item.Time))
	}
	parts = append(parts, e.Icon+" "+e.Item.Name, r.dim.Render("["+e.Label+"]"))
	line := "  " + strings.Join(parts, " ")

	if e.Item.Address != "" {
		line += "\n        " + r.dim.Render(e.Item.Address)
	}
	if e.HasMemo && e.Item.Type != domain.ItemTypeMemo {
		line += "\n        📝 " + e.Item.Memo
	}
	return line
}

// Timeline draws the trip day by day with distances between stops.
func (r *Renderer) Timeline(trip domain.Trip, tl itinerary.Timeline) string {
	out := []string{r.title.Render(TripName(trip)) + "  " + r.dim.Render(tl.DateRange)}
	if trip.Companions != "" {
		out = append(out, r.dim.Render("with "+trip.Companions))
	}

	n := 0
	for _, d := range tl.Days {
		out = append(out, "", r.day.Render(fmt.Sprintf("Day %d", d.Day.Number))+" "+r.dim.Render(d.Day.Label))
		if len(d.Entries) == 0 {
			out = append(out, r.dim.Render("  (nothing planned)"))
		}
		for _, e := range d.Entries {
			n++
			out = append(out, r.entryLine(n, e))
			if g, ok := d.GapAfter(e.Item.ID); ok {
				out = append(out, r.dim.Render("        ↓ "+g.Text))
			}
		}
	}

	if tl.Undated {
		out = append(out, "", r.warn.Render("dates not set, use edittrip to add them"))
	}
	if len(tl.Unassigned) > 0 {
		out = append(out, "", r.day.Render("Unscheduled"))
		for _, it := range tl.Unassigned {
			n++
			e := itinerary.Entry{Item: it, Label: itinerary.Label(it), Icon: itinerary.Icon(it), HasMemo: it.Memo != ""}
			e.Badge = itinerary.Badge{Icon: "·"}
			out = append(out, r.entryLine(n, e))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
