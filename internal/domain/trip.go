package domain

import (
	"fmt"
	"time"
)

// TravelStyle is one of the trip moods a user can tag a trip with.
type TravelStyle string

const (
	StyleActivity   TravelStyle = "체험·액티비티"
	StyleHotPlace   TravelStyle = "SNS 핫플레이스"
	StyleNature     TravelStyle = "자연과 함께"
	StyleLandmarks  TravelStyle = "유명 관광지 필수"
	StyleHealing    TravelStyle = "여유롭게 힐링"
	StyleCulture    TravelStyle = "문화·예술·역사"
	StyleShopping   TravelStyle = "쇼핑은 열정적으로"
	StyleFoodieTrip TravelStyle = "관광보다 먹방"
)

// TravelStyles lists every style in menu order.
var TravelStyles = []TravelStyle{
	StyleActivity, StyleHotPlace, StyleNature, StyleLandmarks,
	StyleHealing, StyleCulture, StyleShopping, StyleFoodieTrip,
}

// ParseTravelStyle returns the style named s.
func ParseTravelStyle(s string) (TravelStyle, error) {
	for _, st := range TravelStyles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown travel style %q", s)
}

// Trip is the aggregate a user plans: its dated items and packing checklist.
type Trip struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId,omitempty"`
	Title        string          `json:"title"`
	StartDate    *Date           `json:"startDate,omitempty"`
	EndDate      *Date           `json:"endDate,omitempty"`
	Items        []Item          `json:"items,omitempty"`
	Companions   string          `json:"companions,omitempty"`
	TravelStyles []TravelStyle   `json:"travelStyles,omitempty"`
	Checklist    []ChecklistItem `json:"checklist,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Dated reports whether both trip bounds are set.
func (t Trip) Dated() bool {
	return t.StartDate != nil && !t.StartDate.IsZero() && t.EndDate != nil && !t.EndDate.IsZero()
}

// FindItem returns the item with the given id.
func (t Trip) FindItem(id string) (Item, bool) {
	for _, it := range t.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
