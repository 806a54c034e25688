package config

import (
	"sync"

	"github.com/google/uuid"
)

// Observer receives the full new settings snapshot on every replacement.
// There are no partial-update events.
type Observer func(*Settings)

// Store holds the current settings snapshot and notifies observers when it
// is replaced. Replacement is wholesale: the previous snapshot is never
// mutated, so holders may keep reading an old pointer safely.
type Store struct {
	mu        sync.RWMutex
	current   *Settings
	observers []Observer
}

// NewStore creates a store seeded with the given snapshot. A nil snapshot
// falls back to defaults.
func NewStore(s *Settings) *Store {
	if s == nil {
		s = Default()
	}
	return &Store{current: s}
}

// Current returns the active settings snapshot
func (st *Store) Current() *Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Replace swaps in a new snapshot and synchronously notifies every
// registered observer in registration order. The snapshot receives a fresh
// revision if it does not carry one already.
func (st *Store) Replace(s *Settings) {
	if s == nil {
		return
	}
	if s.Revision == "" {
		s.Revision = uuid.NewString()
	}

	st.mu.Lock()
	st.current = s
	observers := make([]Observer, len(st.observers))
	copy(observers, st.observers)
	st.mu.Unlock()

	for _, observer := range observers {
		observer(s)
	}
}

// RegisterObserver subscribes a callback to snapshot replacements
func (st *Store) RegisterObserver(observer Observer) {
	if observer == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.observers = append(st.observers, observer)
}
