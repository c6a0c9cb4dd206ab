package domain

import (
	"encoding/json"
	"math"
)

// ItemType tags what a trip item represents on the timeline.
type ItemType string

const (
	ItemTypePlace     ItemType = "place"
	ItemTypeStay      ItemType = "stay"
	ItemTypeMemo      ItemType = "memo"
	ItemTypeTransport ItemType = "transport"
	ItemTypeFlight    ItemType = "flight"
)

// ParseItemType maps s to a known type; anything else is a place.
func ParseItemType(s string) ItemType {
	switch t := ItemType(s); t {
	case ItemTypePlace, ItemTypeStay, ItemTypeMemo, ItemTypeTransport, ItemTypeFlight:
		return t
	default:
		return ItemTypePlace
	}
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	return ParseItemType(string(t)) == t
}

// IsTransport reports whether items of this type are travel legs.
func (t ItemType) IsTransport() bool {
	return t == ItemTypeTransport || t == ItemTypeFlight
}

// TransportKind is the vehicle of a transport or flight item.
type TransportKind string

const (
	TransportUnknown TransportKind = ""
	TransportFlight  TransportKind = "flight"
	TransportBus     TransportKind = "bus"
	TransportTaxi    TransportKind = "taxi"
	TransportSubway  TransportKind = "subway"
	TransportWalk    TransportKind = "walk"
)

// TransportKinds lists the known kinds in menu order.
var TransportKinds = []TransportKind{TransportFlight, TransportBus, TransportTaxi, TransportSubway, TransportWalk}

// ParseTransportKind maps s to a known kind or TransportUnknown.
func ParseTransportKind(s string) TransportKind {
	switch k := TransportKind(s); k {
	case TransportFlight, TransportBus, TransportTaxi, TransportSubway, TransportWalk:
		return k
	default:
		return TransportUnknown
	}
}

// Category is a free-text place category. The constants below are the ones
// offered by the planner; other values are kept verbatim.
type Category string

const (
	CategorySightseeing Category = "관광명소"
	CategoryRestaurant  Category = "맛집"
	CategoryCafe        Category = "카페"
	CategoryShopping    Category = "쇼핑"
	CategoryLodging     Category = "숙소"
	CategoryTransport   Category = "교통"
)

// Categories lists the offered categories in menu order.
var Categories = []Category{
	CategorySightseeing, CategoryRestaurant, CategoryCafe,
	CategoryShopping, CategoryLodging, CategoryTransport,
}

// Known reports whether c is one of the offered categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// LatLng is a coordinate pair in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Item is a place, stay, memo, transport leg or flight belonging to a trip.
//
// Day is 1-based relative to the trip start; 0 means the day was never set.
// Lat and Lng are optional and only usable together.
type Item struct {
	ID            string        `json:"id"`
	TripID        string        `json:"tripId,omitempty"`
	Name          string        `json:"name"`
	Day           int           `json:"day,omitempty"`
	Type          ItemType      `json:"type,omitempty"`
	Time          string        `json:"time,omitempty"`
	Category      Category      `json:"category,omitempty"`
	TransportKind TransportKind `json:"transportKind,omitempty"`
	Address       string        `json:"address,omitempty"`
	Lat           *float64      `json:"lat,omitempty"`
	Lng           *float64      `json:"lng,omitempty"`
	Memo          string        `json:"memo,omitempty"`
}

// Coordinates returns the item's position if both latitude and longitude are set.
func (i Item) Coordinates() (LatLng, bool) {
	if i.Lat == nil || i.Lng == nil {
		return LatLng{}, false
	}
	return LatLng{Lat: *i.Lat, Lng: *i.Lng}, true
}

// SetCoordinates stores p as the item's position.
func (i *Item) SetCoordinates(p LatLng) {
	lat, lng := p.Lat, p.Lng
	i.Lat, i.Lng = &lat, &lng
}

// UnmarshalJSON tolerates legacy payloads: "day" may be any JSON value, and
// only positive whole numbers are kept. Everything else decodes as 0.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		Day any `json:"day"`
	}{plain: (*plain)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	i.Day = 0
	if n, ok := aux.Day.(float64); ok && n >= 1 && n <= math.MaxInt32 && n == math.Trunc(n) {
		i.Day = int(n)
	}
	return nil
}
