// Package store holds the REPL session state: who is logged in, whether the
// server is reachable, and the trips on screen.
//
// A Store is created once at startup and handed to whoever needs it.
// Subscribers are called synchronously, outside the lock, after each change.
package store

import (
	"slices"
	"sync"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/domain"
)

// State is a snapshot of the session. Snapshots are deep copies down to the
// items and checklist of each trip; mutating one does not affect the store.
// Item coordinates are shared pointers and must not be written through.
type State struct {
	Username  string
	MasterKey []byte
	Online    bool
	Trips     []domain.Trip
	Current   *domain.Trip
}

// LoggedIn reports whether a master key is held.
func (s State) LoggedIn() bool {
	return len(s.MasterKey) > 0
}

type Store struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

func New() *Store {
	return &Store{subs: make(map[int]func(State))}
}

// cloneTrip copies t together with the slices it owns.
func cloneTrip(t domain.Trip) domain.Trip {
	t.Items = slices.Clone(t.Items)
	t.Checklist = slices.Clone(t.Checklist)
	t.TravelStyles = slices.Clone(t.TravelStyles)
	return t
}

func cloneTrips(trips []domain.Trip) []domain.Trip {
	if trips == nil {
		return nil
	}
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = cloneTrip(t)
	}
	return out
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.MasterKey = slices.Clone(s.state.MasterKey)
	st.Trips = cloneTrips(s.state.Trips)
	if s.state.Current != nil {
		cur := cloneTrip(*s.state.Current)
		st.Current = &cur
	}
	return st
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Update applies fn to the state and notifies subscribers.
func (s *Store) Update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

func (s *Store) SetSession(username string, masterKey []byte) {
	s.Update(func(st *State) {
		st.Username = username
		st.MasterKey = slices.Clone(masterKey)
	})
}

// SetOnline records reachability. It notifies only when the value changes.
func (s *Store) SetOnline(online bool) {
	s.mu.RLock()
	same := s.state.Online == online
	s.mu.RUnlock()
	if same {
		return
	}
	s.Update(func(st *State) { st.Online = online })
}

func (s *Store) SetTrips(trips []domain.Trip) {
	s.Update(func(st *State) { st.Trips = cloneTrips(trips) })
}

// SetCurrent makes t the open trip. A nil t closes it.
func (s *Store) SetCurrent(t *domain.Trip) {
	s.Update(func(st *State) {
		if t == nil {
			st.Current = nil
			return
		}
		cur := cloneTrip(*t)
		st.Current = &cur
	})
}

func (s *Store) MasterKey() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.MasterKey)
}

func (s *Store) Current() *domain.Trip {
	return s.Snapshot().Current
}

func (s *Store) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Online
}

// Reset drops the session, wiping the master key. Reachability is kept.
func (s *Store) Reset() {
	s.Update(func(st *State) {
		common.WipeByteArray(st.MasterKey)
		*st = State{Online: st.Online}
	})
}
