package itinerary

import "github.com/seungyeonleeee/triply/internal/domain"

// Badge marks an item on the timeline: either a sequence number or an icon.
// Number is 0 for items that are not counted.
type Badge struct {
	Number int    `json:"number,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

func counted(t domain.ItemType) bool {
	return t != domain.ItemTypeMemo && !t.IsTransport()
}

// AssignBadges numbers a day's ordered items 1, 2, 3, ... skipping memos,
// flights and transport legs, which get an icon badge instead.
func AssignBadges(dayItems []domain.Item) []Badge {
	badges := make([]Badge, len(dayItems))
	n := 1
	for i, it := range dayItems {
		t := domain.ParseItemType(string(it.Type))
		switch {
		case counted(t):
			badges[i] = Badge{Number: n}
			n++
		case t == domain.ItemTypeMemo:
			badges[i] = Badge{Icon: iconMemo}
		default:
			badges[i] = Badge{Icon: TransportIcon(it.TransportKind)}
		}
	}
	return badges
}
