package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seungyeonleeee/triply/internal/domain"
)

const progressWidth = 20

// ChecklistOrder lists items in the order Checklist prints them, grouped by
// category.
func ChecklistOrder(items []domain.ChecklistItem) []domain.ChecklistItem {
	var out []domain.ChecklistItem
	for _, g := range domain.GroupChecklist(items) {
		out = append(out, g.Items...)
	}
	return out
}

func (r *Renderer) progressBar(pct float64) string {
	filled := int(pct / 100 * progressWidth)
	return r.ok.Render(strings.Repeat("█", filled)) + r.dim.Render(strings.Repeat("░", progressWidth-filled))
}

// Checklist draws the packing list with a progress bar.
func (r *Renderer) Checklist(items []domain.ChecklistItem) string {
	if len(items) == 0 {
		return r.dim.Render("checklist is empty, add items with addcheck")
	}

	checked, total, pct := domain.ChecklistProgress(items)
	out := []string{fmt.Sprintf("%s %d/%d (%.0f%%)", r.progressBar(pct), checked, total, pct)}

	n := 0
	for _, g := range domain.GroupChecklist(items) {
		name := g.Category
		if name == "" {
			name = "기타"
		}
		out = append(out, "", r.day.Render(name))
		for _, it := range g.Items {
			n++
			box := "[ ]"
			label := it.Label
			if it.Checked {
				box = r.ok.Render("[x]")
				label = r.dim.Render(label)
			}
			out = append(out, fmt.Sprintf("  %2d. %s %s", n, box, label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
