package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/interaction"
)

// Host event names and the property names their handlers are injected
// under. The set is fixed; it is the counterpart of the interaction
// condition kinds.
var eventPropNames = map[string]string{
	"mouseenter": "onMouseEnter",
	"mouseleave": "onMouseLeave",
	"mousedown":  "onMouseDown",
	"focus":      "onFocus",
	"blur":       "onBlur",
}

// interactionEffect handles :hover, :active and :focus. It registers the
// listeners that maintain the corresponding state flag and reports whether
// the flag is currently set for the node's identity key.
func (r *Resolver) interactionEffect(kind condKind, n *element.Node, out *element.Props) Effect {
	key := n.IdentityKey()
	if !n.HasExplicitKey() {
		r.noteImplicitKey(n)
	}
	switch kind {
	case condHover:
		r.listen(out, key, "mouseenter", func(element.Event) {
			r.store.SetState(interaction.StateHover, true, key)
		})
		r.listen(out, key, "mouseleave", func(element.Event) {
			r.store.SetState(interaction.StateHover, false, key)
		})
		return Effect{Match: r.store.GetState(interaction.StateHover, key)}
	case condFocus:
		r.listen(out, key, "focus", func(element.Event) {
			r.store.SetState(interaction.StateFocus, true, key)
		})
		r.listen(out, key, "blur", func(element.Event) {
			r.store.SetState(interaction.StateFocus, false, key)
		})
		return Effect{Match: r.store.GetState(interaction.StateFocus, key)}
	case condActive:
		// the release sweep must be installed before the first press can
		// happen; Attach is idempotent
		r.store.Attach(r.notifier)
		r.listen(out, key, "mousedown", func(element.Event) {
			r.store.MarkActive(key)
		})
		return Effect{Match: r.store.GetState(interaction.StateActive, key)}
	}
	return Effect{}
}

// listen injects a deduplicated handler for (key, event) into the outgoing
// props. Repeated passes re-inject the same handler reference.
func (r *Resolver) listen(out *element.Props, key, event string, fn element.Handler) {
	out.Set(eventPropNames[event], r.registry.Listener(key, event, fn))
}

// noteImplicitKey tracks interactive nodes falling back to the default
// identity key. Two distinct nodes sharing it will alias their interaction
// state; that is warned about once per pass, and resolution proceeds.
func (r *Resolver) noteImplicitKey(n *element.Node) {
	if r.implicitKey == nil {
		r.implicitKey = n
		return
	}
	if r.implicitKey != n && !r.warnedKey {
		r.warnedKey = true
		tracer().Errorf("several interactive elements share the implicit %q identity key; "+
			"their interaction states will alias; assign explicit keys", element.DefaultKey)
	}
}
