package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seungyeonleeee/triply/internal/domain"
)

func TestStore_SessionAndReset(t *testing.T) {
	s := New()
	assert.False(t, s.Snapshot().LoggedIn())

	key := []byte{1, 2, 3}
	s.SetSession("mina", key)
	key[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, s.MasterKey())
	assert.True(t, s.Snapshot().LoggedIn())

	s.SetOnline(true)
	s.SetTrips([]domain.Trip{{ID: "t1"}})
	s.SetCurrent(&domain.Trip{ID: "t1", Title: "Jeju"})

	s.Reset()
	st := s.Snapshot()
	assert.False(t, st.LoggedIn())
	assert.Empty(t, st.Username)
	assert.Nil(t, st.Trips)
	assert.Nil(t, st.Current)
	assert.True(t, st.Online)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New()
	s.SetTrips([]domain.Trip{{ID: "a"}})
	s.SetCurrent(&domain.Trip{ID: "a", Title: "before"})

	snap := s.Snapshot()
	snap.Trips[0].ID = "changed"
	snap.Current.Title = "after"

	again := s.Snapshot()
	assert.Equal(t, "a", again.Trips[0].ID)
	assert.Equal(t, "before", s.Current().Title)
}

func TestStore_SnapshotCopiesTripContents(t *testing.T) {
	s := New()
	trip := domain.Trip{
		ID:           "a",
		Items:        []domain.Item{{ID: "i1", Name: "Tower"}},
		Checklist:    []domain.ChecklistItem{{ID: "c1", Label: "passport"}},
		TravelStyles: []domain.TravelStyle{domain.StyleNature},
	}
	s.SetTrips([]domain.Trip{trip})
	s.SetCurrent(&trip)

	trip.Items[0].Name = "changed by caller"

	snap := s.Snapshot()
	snap.Current.Items[0].Name = "changed"
	snap.Current.Checklist[0].Checked = true
	snap.Current.TravelStyles[0] = domain.StyleShopping
	snap.Trips[0].Items[0].Name = "changed"

	again := s.Snapshot()
	assert.Equal(t, "Tower", again.Current.Items[0].Name)
	assert.False(t, again.Current.Checklist[0].Checked)
	assert.Equal(t, domain.StyleNature, again.Current.TravelStyles[0])
	assert.Equal(t, "Tower", again.Trips[0].Items[0].Name)
}

func TestStore_Subscribe(t *testing.T) {
	s := New()
	var seen []bool
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st.Online) })

	s.SetOnline(true)
	s.SetOnline(true)
	s.SetOnline(false)
	assert.Equal(t, []bool{true, false}, seen)

	unsubscribe()
	s.SetOnline(true)
	assert.Len(t, seen, 2)
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	s := New()
	var got string
	s.Subscribe(func(State) { got = s.Snapshot().Username })

	s.SetSession("jun", []byte{1})
	assert.Equal(t, "jun", got)
}

func TestStore_SetCurrentNil(t *testing.T) {
	s := New()
	s.SetCurrent(&domain.Trip{ID: "x"})
	require.NotNil(t, s.Current())
	s.SetCurrent(nil)
	assert.Nil(t, s.Current())
}

func TestStore_ConcurrentUse(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.SetOnline(i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
}
