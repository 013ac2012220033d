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

type listenerKey struct {
	key   string // element identity key
	event string // host event name, e.g. "mouseenter"
}

// Registry is a deduplicating listener registrar for one owning component
// instance. For a given (key, event) it hands out at most one underlying
// handler: repeated resolution passes for the same element reuse the
// previously created handler reference instead of allocating a new closure
// each time. Hosts which diff outgoing properties by reference equality
// therefore see stable values.
type Registry struct {
	mu       sync.Mutex
	handlers map[listenerKey]element.Handler
}

// NewRegistry creates an empty listener registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[listenerKey]element.Handler)}
}

// Listener returns the handler registered for (key, event), creating one
// from fn on first use. fn is only consulted on that first call; later
// calls return the original handler regardless of fn.
func (r *Registry) Listener(key, event string, fn element.Handler) element.Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	lk := listenerKey{key: key, event: event}
	if h, ok := r.handlers[lk]; ok {
		return h
	}
	tracer().Debugf("registering %s listener for element %q", event, key)
	r.handlers[lk] = fn
	return fn
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}
