/*
Package look resolves declarative "look" style descriptors on UI element
trees into concrete per-node style objects.

# Status

Work in progress; the core resolution semantics are stable, the API
around host integration may still change. Please be patient.

# Overview

Hosts (rendering frameworks) attach named look descriptors to the nodes of
their element trees. Before a tree is rendered, the resolution engine
walks it and replaces every descriptor by the merged style properties of
the referenced rules. Rules may carry conditional sub-rules guarded by
pseudo-class expressions, either interaction-based (:hover, :active,
:focus), positional (:first-child, :nth-of-type(n), …) or content-based
(:contains(pattern)), and pseudo-element blocks (::before, ::after) which
synthesize additional child nodes.

Interactive pseudo-classes close a feedback loop with the host: resolution
injects event listeners into the outgoing node properties, the host fires
them on input events, the listeners flip per-element state flags, and the
next resolution pass reads those flags back. All of this state is scoped
to one owning component instance and torn down with it.

The functional core lives in the sub-packages: element (the node model),
style (properties, rules, tables), interaction (state store and listener
registry) and resolve (the engine). This package ties them together into a
per-owner Component with an explicit lifecycle.

The engine never fails: malformed rules, unknown selector references and
absent children degrade style fidelity with a diagnostic trace, but the
output is always a renderable tree.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package look

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'look.engine'.
func tracer() tracing.Trace {
	return tracing.Select("look.engine")
}
