// Package render draws trips, timelines and checklists for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
)

const (
	colorTitle  = "#7aa2f7"
	colorDay    = "#bb9af7"
	colorDim    = "#565f89"
	colorOK     = "#9ece6a"
	colorWarn   = "#e0af68"
	colorBadge  = "#1a1b26"
	colorAccent = "#7dcfff"
)

// Renderer holds styles bound to one output. Colors are dropped when the
// output is not a terminal.
type Renderer struct {
	title  lipgloss.Style
	day    lipgloss.Style
	dim    lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	badge  lipgloss.Style
	accent lipgloss.Style
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle)),
		day:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorDay)),
		dim:    r.NewStyle().Foreground(lipgloss.Color(colorDim)),
		ok:     r.NewStyle().Foreground(lipgloss.Color(colorOK)),
		warn:   r.NewStyle().Foreground(lipgloss.Color(colorWarn)),
		badge:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBadge)).Background(lipgloss.Color(colorAccent)),
		accent: r.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	}
}

// Status is the prompt prefix showing reachability.
func (r *Renderer) Status(online bool) string {
	if online {
		return r.ok.Render("● online")
	}
	return r.warn.Render("○ offline")
}

// TripName prefers the trip's own title over the one derived from its items.
func TripName(t domain.Trip) string {
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}
	return itinerary.Title(t)
}

// TripList numbers trips from 1 in the given order.
func (r *Renderer) TripList(trips []domain.Trip) string {
	if len(trips) == 0 {
		return r.dim.Render("no trips yet, create one with newtrip")
	}

	lines := make([]string, 0, len(trips))
	for i, t := range trips {
		line := fmt.Sprintf("%2d. %s  %s", i+1, r.title.Render(TripName(t)), r.dim.Render(itinerary.DateRangeLabel(t)))
		if len(t.TravelStyles) > 0 {
			styles := make([]string, len(t.TravelStyles))
			for j, st := range t.TravelStyles {
				styles[j] = "#" + string(st)
			}
			line += "  " + r.accent.Render(strings.Join(styles, " "))
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
