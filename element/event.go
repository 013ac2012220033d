package element

// Event is the minimal description of a host input event delivered to a
// listener which the styling engine injected into a node's properties.
type Event struct {
	Name   string // host event name, e.g. "mouseenter"
	Target *Node  // node the event fired on, may be nil
}

// Handler is a listener callback injected into a node's outgoing
// properties. Handlers for the same (owner, key, event) triple are
// reference-stable across resolution passes, so equality-based diffing in
// the host does not thrash.
type Handler func(Event)

// ReleaseNotifier is the host-side hook for the global "pointer released"
// signal which sweeps active-state flags. Hosts typically bind this to a
// window- or document-level pointer-up event.
//
// OnRelease subscribes a callback and returns a cancel function which
// removes the subscription again; owners call it on teardown.
type ReleaseNotifier interface {
	OnRelease(fn func()) (cancel func())
}
