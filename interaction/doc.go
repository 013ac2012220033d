/*
Package interaction tracks per-element interaction state (hover, active,
focus) between resolution passes.

# Overview

Styling with interactive pseudo-classes is a feedback loop: resolution
injects listeners into element properties, the host fires them on input
events, the listeners flip state flags, and the next resolution pass reads
the flags back when evaluating pseudo-class conditions. This package holds
the two pieces of mutable state in that loop: the state Store and the
listener Registry.

Both are scoped to one owning component instance; they are created at
owner construction and discarded at teardown, and are passed by reference
into every resolution call. Two owners never observe each other's state,
even when element keys collide. Within one owner, access is guarded by a
mutex, so state reads and writes stay sequentially consistent if the host
delivers events from another goroutine.

The "active" state has a global aspect: pressing an element sets its flag,
but releasing the pointer anywhere must clear the flags of every element
pressed in between. The Store records pressed keys in an active-list and
sweeps it on release. The release hook has an explicit lifecycle: owners
call Attach with the host's release notifier at construction and Detach at
teardown, so no callback outlives its owner.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package interaction

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'look.interaction'.
func tracer() tracing.Trace {
	return tracing.Select("look.interaction")
}
