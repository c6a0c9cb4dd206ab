package itinerary

import "github.com/seungyeonleeee/triply/internal/domain"

const (
	labelTransport = "교통"
	labelLodging   = "숙소"
	labelPlace     = "장소"

	iconDefault   = "📍"
	iconTransport = "🧭"
	iconMemo      = "📝"
)

var transportLabels = map[domain.TransportKind]string{
	domain.TransportFlight: "항공",
	domain.TransportBus:    "버스",
	domain.TransportTaxi:   "택시",
	domain.TransportSubway: "지하철",
	domain.TransportWalk:   "도보",
}

var transportIcons = map[domain.TransportKind]string{
	domain.TransportFlight: "✈️",
	domain.TransportBus:    "🚌",
	domain.TransportTaxi:   "🚕",
	domain.TransportSubway: "🚇",
	domain.TransportWalk:   "🚶",
}

var categoryIcons = map[domain.Category]string{
	domain.CategorySightseeing: "🗺️",
	domain.CategoryRestaurant:  "🍽️",
	domain.CategoryCafe:        "☕",
	domain.CategoryShopping:    "🛍️",
	domain.CategoryLodging:     "🏨",
	domain.CategoryTransport:   "🚌",
}

// TransportLabel names a transport kind; unknown kinds are generic transport.
func TransportLabel(kind domain.TransportKind) string {
	if l, ok := transportLabels[kind]; ok {
		return l
	}
	return labelTransport
}

// TransportIcon returns the glyph of a transport kind.
func TransportIcon(kind domain.TransportKind) string {
	if i, ok := transportIcons[kind]; ok {
		return i
	}
	return iconTransport
}

// Label is the category line shown under an item's name.
func Label(it domain.Item) string {
	switch t := domain.ParseItemType(string(it.Type)); {
	case t.IsTransport():
		return TransportLabel(it.TransportKind)
	case t == domain.ItemTypeStay:
		return labelLodging
	case it.Category == "":
		return labelPlace
	default:
		return string(it.Category)
	}
}

// Icon is the glyph drawn next to an item.
func Icon(it domain.Item) string {
	switch t := domain.ParseItemType(string(it.Type)); {
	case t.IsTransport():
		return TransportIcon(it.TransportKind)
	case t == domain.ItemTypeMemo:
		return iconMemo
	case t == domain.ItemTypeStay:
		return categoryIcons[domain.CategoryLodging]
	}
	if i, ok := categoryIcons[it.Category]; ok {
		return i
	}
	return iconDefault
}
