package itinerary

import (
	"math"
	"strconv"

	"github.com/seungyeonleeee/triply/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b domain.LatLng) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	s := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(s))
}

// FormatDistance renders km for the timeline: whole metres under 1 km,
// one decimal under 10 km, whole kilometres otherwise.
func FormatDistance(km float64) string {
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return ""
	}
	if km < 1 {
		return strconv.FormatFloat(math.Round(km*1000), 'f', 0, 64) + "m"
	}
	prec := 0
	if km < 10 {
		prec = 1
	}
	return strconv.FormatFloat(km, 'f', prec, 64) + "km"
}

// Gap is the distance between two adjacent timeline items.
type Gap struct {
	FromID string  `json:"fromId"`
	ToID   string  `json:"toId"`
	Km     float64 `json:"km"`
	Text   string  `json:"text"`
}

// AnnotateDistances walks a day's ordered items pairwise and measures each
// hop between two geolocated non-memo items. Other pairs get no gap.
func AnnotateDistances(dayItems []domain.Item) []Gap {
	var gaps []Gap
	for i := 0; i+1 < len(dayItems); i++ {
		cur, next := dayItems[i], dayItems[i+1]
		if cur.Type == domain.ItemTypeMemo || next.Type == domain.ItemTypeMemo {
			continue
		}
		a, ok := cur.Coordinates()
		if !ok {
			continue
		}
		b, ok := next.Coordinates()
		if !ok {
			continue
		}
		km := Haversine(a, b)
		gaps = append(gaps, Gap{FromID: cur.ID, ToID: next.ID, Km: km, Text: FormatDistance(km)})
	}
	return gaps
}
