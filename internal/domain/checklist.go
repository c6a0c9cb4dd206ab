package domain

// ChecklistItem is one line of a trip's packing checklist.
type ChecklistItem struct {
	ID       string `json:"id"`
	TripID   string `json:"tripId,omitempty"`
	Label    string `json:"label"`
	Checked  bool   `json:"checked"`
	Category string `json:"category,omitempty"`
}

// ChecklistSuggestions are the categories offered when adding checklist items.
var ChecklistSuggestions = []string{"📄 서류", "💊 건강/안전", "💴 금전", "👗 의류", "🔌 전자기기", "🧴 세면도구"}

// ChecklistGroup is a run of checklist items sharing a category.
// The uncategorized group has an empty Category.
type ChecklistGroup struct {
	Category string
	Items    []ChecklistItem
}

// ChecklistProgress counts checked items and the completion percentage.
func ChecklistProgress(items []ChecklistItem) (checked, total int, pct float64) {
	total = len(items)
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	if total > 0 {
		pct = float64(checked) / float64(total) * 100
	}
	return checked, total, pct
}

// GroupChecklist groups items by category in order of first appearance.
// Uncategorized items form the last group, which is omitted when empty.
func GroupChecklist(items []ChecklistItem) []ChecklistGroup {
	index := make(map[string]int)
	var groups []ChecklistGroup
	var rest []ChecklistItem

	for _, it := range items {
		if it.Category == "" {
			rest = append(rest, it)
			continue
		}
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, ChecklistGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	if len(rest) > 0 {
		groups = append(groups, ChecklistGroup{Items: rest})
	}
	return groups
}
