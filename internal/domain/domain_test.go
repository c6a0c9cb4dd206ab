package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", d.String())
	assert.Equal(t, "3/1", d.ShortLabel())
	assert.Equal(t, "2025-03-02", d.AddDays(1).String())

	_, err = ParseDate("2025/03/01")
	assert.Error(t, err)
}

func TestParseDate_FirstCalendarDayIsZero(t *testing.T) {
	d, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())
	assert.False(t, Trip{StartDate: &d, EndDate: &d}.Dated())

	next, err := ParseDate("0001-01-02")
	require.NoError(t, err)
	assert.False(t, next.IsZero())
}

func TestDateOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	d := DateOf(time.Date(2025, 12, 31, 23, 59, 0, 0, loc))
	assert.Equal(t, "2025-12-31", d.String())
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDate_JSON(t *testing.T) {
	var got struct {
		A *Date `json:"a"`
		B *Date `json:"b"`
		C *Date `json:"c"`
		D Date  `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a":"2025-03-01","b":null,"c":"2025-03-05T10:00:00Z","d":""}`), &got)
	require.NoError(t, err)

	require.NotNil(t, got.A)
	assert.Equal(t, "2025-03-01", got.A.String())
	assert.Nil(t, got.B)
	require.NotNil(t, got.C)
	assert.Equal(t, "2025-03-05", got.C.String())
	assert.True(t, got.D.IsZero())

	b, err := json.Marshal(NewDate(2026, time.February, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-02-03"`, string(b))
}

func TestDatePtr(t *testing.T) {
	assert.Nil(t, DatePtr(""))
	assert.Nil(t, DatePtr("nope"))
	require.NotNil(t, DatePtr("2026-02-01"))
}

func TestParseItemType(t *testing.T) {
	assert.Equal(t, ItemTypeStay, ParseItemType("stay"))
	assert.Equal(t, ItemTypeFlight, ParseItemType("flight"))
	assert.Equal(t, ItemTypePlace, ParseItemType(""))
	assert.Equal(t, ItemTypePlace, ParseItemType("hotel"))
	assert.True(t, ItemTypeMemo.Valid())
	assert.False(t, ItemType("hotel").Valid())
	assert.True(t, ItemTypeFlight.IsTransport())
	assert.False(t, ItemTypeStay.IsTransport())
}

func TestParseTransportKind(t *testing.T) {
	assert.Equal(t, TransportSubway, ParseTransportKind("subway"))
	assert.Equal(t, TransportUnknown, ParseTransportKind("ferry"))
	assert.Equal(t, TransportUnknown, ParseTransportKind(""))
}

func TestCategoryKnown(t *testing.T) {
	assert.True(t, CategoryCafe.Known())
	assert.False(t, Category("야경").Known())
}

func TestItem_UnmarshalJSON_Day(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"positive integer", `{"id":"a","name":"n","day":3}`, 3},
		{"missing", `{"id":"a","name":"n"}`, 0},
		{"zero", `{"id":"a","name":"n","day":0}`, 0},
		{"negative", `{"id":"a","name":"n","day":-2}`, 0},
		{"fraction", `{"id":"a","name":"n","day":1.5}`, 0},
		{"string", `{"id":"a","name":"n","day":"2"}`, 0},
		{"null", `{"id":"a","name":"n","day":null}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var it Item
			require.NoError(t, json.Unmarshal([]byte(tt.in), &it))
			assert.Equal(t, tt.want, it.Day)
			assert.Equal(t, "a", it.ID)
			assert.Equal(t, "n", it.Name)
		})
	}
}

func TestItem_UnmarshalJSON_Fields(t *testing.T) {
	var it Item
	in := `{"id":"x","name":"Tower","type":"transport","transportKind":"bus","lat":35.1,"lng":139.2,"time":"09:30","memo":"m"}`
	require.NoError(t, json.Unmarshal([]byte(in), &it))

	assert.Equal(t, ItemTypeTransport, it.Type)
	assert.Equal(t, TransportBus, it.TransportKind)
	assert.Equal(t, "09:30", it.Time)
	p, ok := it.Coordinates()
	require.True(t, ok)
	assert.Equal(t, LatLng{Lat: 35.1, Lng: 139.2}, p)
}

func TestItem_Coordinates_RequiresBoth(t *testing.T) {
	lat := 1.0
	_, ok := Item{Lat: &lat}.Coordinates()
	assert.False(t, ok)

	var it Item
	it.SetCoordinates(LatLng{Lat: 2, Lng: 3})
	p, ok := it.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 3.0, p.Lng)
}

func TestParseTravelStyle(t *testing.T) {
	st, err := ParseTravelStyle("자연과 함께")
	require.NoError(t, err)
	assert.Equal(t, StyleNature, st)

	_, err = ParseTravelStyle("캠핑")
	assert.Error(t, err)
}

func TestTrip_Dated(t *testing.T) {
	start := NewDate(2026, 2, 1)
	assert.False(t, Trip{StartDate: &start}.Dated())
	assert.True(t, Trip{StartDate: &start, EndDate: &start}.Dated())
	assert.False(t, Trip{StartDate: &start, EndDate: &Date{}}.Dated())
}

func TestChecklistProgress(t *testing.T) {
	checked, total, pct := ChecklistProgress([]ChecklistItem{
		{ID: "1", Checked: true}, {ID: "2"}, {ID: "3"}, {ID: "4", Checked: true},
	})
	assert.Equal(t, 2, checked)
	assert.Equal(t, 4, total)
	assert.InDelta(t, 50.0, pct, 1e-9)

	_, _, pct = ChecklistProgress(nil)
	assert.Zero(t, pct)
}

func TestGroupChecklist(t *testing.T) {
	items := []ChecklistItem{
		{ID: "1", Label: "passport", Category: "📄 서류"},
		{ID: "2", Label: "toothbrush"},
		{ID: "3", Label: "charger", Category: "🔌 전자기기"},
		{ID: "4", Label: "visa", Category: "📄 서류"},
	}

	groups := GroupChecklist(items)
	require.Len(t, groups, 3)
	assert.Equal(t, "📄 서류", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "🔌 전자기기", groups[1].Category)
	assert.Equal(t, "", groups[2].Category)
	assert.Equal(t, "toothbrush", groups[2].Items[0].Label)

	assert.Empty(t, GroupChecklist(nil))
}
