// Package dao implements the note store. The collection lives in process
// memory behind an explicit store object that is constructed at startup and
// injected into the service layer, so tests get isolated stores and a
// persistent backend can replace it later without touching handlers.
package dao

import (
	"sort"
	"sync"

	"github.com/haierkeys/simple-notes-service/internal/model"
)

// Store holds the note collection. gin serves requests concurrently, so
// every access goes through the RWMutex; read-modify-write sequences run
// entirely under the write lock.
type Store struct {
	mu     sync.RWMutex
	notes  map[int64]model.Note
	nextID int64
}

// NewStore creates an empty store. IDs start at 1 and are never reused
// within the process lifetime, even after deletes.
func NewStore() *Store {
	return &Store{
		notes:  make(map[int64]model.Note),
		nextID: 1,
	}
}

// Create assigns the next id and inserts the note. The stored note is
// returned by value so callers never alias store-internal state.
func (s *Store) Create(n model.Note) model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextID
	s.nextID++
	s.notes[n.ID] = n
	return n
}

// Get returns the note with the given id.
func (s *Store) Get(id int64) (model.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	return n, ok
}

// ListByUser returns all notes owned by user, ordered by ascending id.
func (s *Store) ListByUser(user string) []model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Note, 0)
	for _, n := range s.notes {
		if n.User == user {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Update applies mutate to the stored note under the write lock.
// The id is fixed; mutate cannot change it.
func (s *Store) Update(id int64, mutate func(n *model.Note)) (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return model.Note{}, false
	}
	mutate(&n)
	n.ID = id
	s.notes[id] = n
	return n, true
}

// Delete removes the note with the given id.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return false
	}
	delete(s.notes, id)
	return true
}

// Count returns the number of stored notes.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes)
}
