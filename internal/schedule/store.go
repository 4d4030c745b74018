// Package schedule owns the authoritative in-memory event set and its
// serialized file form.
package schedule

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"weekgrid/internal/model"
)

// ErrNotFound is returned when an operation names an event id that is
// not in the store.
var ErrNotFound = errors.New("schedule: event not found")

// Store holds the live event set. Mutations are atomic from the
// caller's perspective; no partial state is ever observable.
type Store struct {
	mu     sync.Mutex
	events []model.Event
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Events returns a snapshot of the event set in stable order.
func (s *Store) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// FindByID returns the event with the given id.
func (s *Store) FindByID(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// Create materializes the draft as one event per selected day, each
// with a freshly generated id, and appends them in day order.
func (s *Store) Create(d model.Draft) []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]model.Event, 0, len(d.Days))
	for _, day := range d.Days {
		created = append(created, eventFromDraft(d, day, newID()))
	}
	s.events = append(s.events, created...)

	out := make([]model.Event, len(created))
	copy(out, created)
	return out
}

// Update applies the draft to the event identified by id. The event
// keeps its id and moves to the draft's first day; every additional day
// materializes as a new event with a fresh id, even if one of those
// days is the event's original day. The whole replacement is a single
// atomic swap.
func (s *Store) Update(id string, d model.Draft) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, ev := range s.events {
		if ev.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	result := make([]model.Event, 0, len(d.Days))
	for i, day := range d.Days {
		evID := id
		if i > 0 {
			evID = newID()
		}
		result = append(result, eventFromDraft(d, day, evID))
	}

	next := make([]model.Event, 0, len(s.events)+len(result)-1)
	next = append(next, s.events[:idx]...)
	if len(result) > 0 {
		next = append(next, result[0])
	}
	next = append(next, s.events[idx+1:]...)
	next = append(next, result[1:]...)
	s.events = next

	out := make([]model.Event, len(result))
	copy(out, result)
	return out, nil
}

// Delete removes the event with the given id. Removing something
// already gone is safe; absent ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ev := range s.events {
		if ev.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

// ReplaceAll swaps the entire event set, assigning a fresh id to every
// incoming record that lacks one. Records are otherwise trusted as-is.
func (s *Store) ReplaceAll(events []model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Event, len(events))
	copy(next, events)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = newID()
		}
	}
	s.events = next
}

// Clear empties the event set.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func eventFromDraft(d model.Draft, day, id string) model.Event {
	return model.Event{
		ID:        id,
		Title:     d.Title,
		Day:       day,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Color:     d.Color,
	}
}

func newID() string {
	return uuid.NewString()
}
