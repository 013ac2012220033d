package interaction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/look/element"
)

// Well-known interaction state names.
const (
	StateHover  = "hover"
	StateActive = "active"
	StateFocus  = "focus"
)

type stateKey struct {
	key  string // element identity key
	name string // state name, e.g. "hover"
}

// Store holds interaction state flags for the elements of one owning
// component instance. Entries are created lazily on first write; a state
// that has never been set reads as false.
//
// The zero value is not usable; create stores with NewStore.
type Store struct {
	mu            sync.Mutex
	states        map[stateKey]bool
	active        []string // identity keys currently pressed
	cancelRelease func()   // removes the release subscription, nil if detached
}

// NewStore creates an empty interaction state store. Owners create one
// store at construction time and Detach it at teardown.
func NewStore() *Store {
	return &Store{states: make(map[stateKey]bool)}
}

// GetState returns the stored flag for (key, name). Absent entries read
// as false.
func (s *Store) GetState(name, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[stateKey{key: key, name: name}]
}

// SetState stores a flag for (key, name).
func (s *Store) SetState(name string, value bool, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[stateKey{key: key, name: name}] = value
}

// MarkActive sets the "active" flag for key and records the key for the
// next release sweep.
func (s *Store) MarkActive(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[stateKey{key: key, name: StateActive}] = true
	for _, k := range s.active {
		if k == key {
			return
		}
	}
	s.active = append(s.active, key)
}

// Release clears the "active" flag for every key recorded since the last
// sweep and empties the active-list. It is invoked through the release
// hook installed by Attach, but may also be called directly.
func (s *Store) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.active {
		s.states[stateKey{key: key, name: StateActive}] = false
	}
	s.active = s.active[:0]
}

// ActiveLen returns the number of keys awaiting a release sweep.
func (s *Store) ActiveLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Attach subscribes the store's release sweep to the host's global
// pointer-release signal. Attaching twice, or attaching a nil notifier,
// is a no-op; there is at most one subscription per store.
func (s *Store) Attach(notifier element.ReleaseNotifier) {
	if notifier == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelRelease != nil {
		return
	}
	tracer().Debugf("installing active-release hook")
	s.cancelRelease = notifier.OnRelease(s.Release)
}

// Detach removes the release subscription installed by Attach. Owners must
// call it at teardown; a dangling subscription would keep the store alive
// and fire into a torn-down component. Detaching an unattached store is a
// no-op.
func (s *Store) Detach() {
	s.mu.Lock()
	cancel := s.cancelRelease
	s.cancelRelease = nil
	s.mu.Unlock()
	if cancel != nil {
		tracer().Debugf("removing active-release hook")
		cancel()
	}
}
