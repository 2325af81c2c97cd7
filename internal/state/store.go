// Package state owns the client state tree: the session, the per-user room
// registry and the directory cache. All mutations go through Store.Dispatch,
// which applies one action at a time to every slice reducer.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// Slice names a top-level part of the state tree.
type Slice string

const (
	SliceSession   Slice = "auth"
	SliceRooms     Slice = "chatRooms"
	SliceDirectory Slice = "countries"
)

// DirectoryState is the directory cache slice.
type DirectoryState struct {
	Entries []model.DirectoryEntry
	Status  model.LoadStatus
	Error   string
}

// State is a point-in-time copy of the whole tree.
type State struct {
	Session   model.Session
	Rooms     map[string]model.UserBucket
	Directory DirectoryState
}

// Change is delivered to subscribers after an action modified at least one slice.
type Change struct {
	Action Action
	Slices []Slice
}

// Touches reports whether the change modified slice s.
func (c Change) Touches(s Slice) bool {
	for _, x := range c.Slices {
		if x == s {
			return true
		}
	}
	return false
}

// Listener receives state changes. Listeners run on the dispatching goroutine
// after the store lock is released and must not block.
type Listener func(Change)

// Store is the single owner of the state tree.
type Store struct {
	mu    sync.RWMutex
	state State

	seq atomic.Uint64

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// NewStore creates a store with empty slices.
func NewStore() *Store {
	return &Store{
		state: State{
			Rooms:     make(map[string]model.UserBucket),
			Directory: DirectoryState{Status: model.StatusIdle},
		},
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies a to every slice and notifies subscribers if anything changed.
// It returns false when the action was a no-op, e.g. a stale fetch completion.
func (s *Store) Dispatch(a Action) bool {
	s.mu.Lock()
	var changed []Slice
	if reduceSession(&s.state.Session, a) {
		changed = append(changed, SliceSession)
	}
	if reduceRooms(s.state.Rooms, a) {
		changed = append(changed, SliceRooms)
	}
	if reduceDirectory(&s.state.Directory, a) {
		changed = append(changed, SliceDirectory)
	}
	s.mu.Unlock()

	if len(changed) == 0 {
		return false
	}

	s.notify(Change{Action: a, Slices: changed})
	return true
}

// NextRequestSeq returns a fresh, strictly increasing fetch token.
func (s *Store) NextRequestSeq() uint64 {
	return s.seq.Add(1)
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(c Change) {
	s.listenersMu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenersMu.Unlock()

	for _, l := range ls {
		l(c)
	}
}

// Session returns the current session.
func (s *Store) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session
}

// Bucket returns a copy of the user's bucket.
func (s *Store) Bucket(userID string) (model.UserBucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.state.Rooms[userID]
	if !ok {
		return model.UserBucket{}, false
	}
	return b.Clone(), true
}

// Directory returns a copy of the directory slice.
func (s *Store) Directory() DirectoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.state.Directory
	d.Entries = append([]model.DirectoryEntry(nil), d.Entries...)
	return d
}

// Snapshot returns a deep copy of the whole tree.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := State{
		Session:   s.state.Session,
		Rooms:     make(map[string]model.UserBucket, len(s.state.Rooms)),
		Directory: s.state.Directory,
	}
	for id, b := range s.state.Rooms {
		out.Rooms[id] = b.Clone()
	}
	out.Directory.Entries = append([]model.DirectoryEntry(nil), s.state.Directory.Entries...)
	return out
}
