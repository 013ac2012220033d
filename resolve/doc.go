/*
Package resolve implements the style resolution engine.

# Overview

The engine recursively walks an element tree before it is rendered and
replaces every node's declarative 'look' descriptor by a concrete style
property map. Resolution is a bottom-up tree transform: children are
resolved first and attached to a freshly cloned parent, so the input tree
is never mutated.

For every sibling group the engine computes positional metadata (index,
sibling count, and per-kind type indexes) in a single pre-pass, which the
positional pseudo-classes (:first-child, :nth-of-type(n), …) are evaluated
against. Interactive pseudo-classes (:hover, :active, :focus) read flags
from an interaction.Store and inject the listeners that will flip those
flags on future passes; the listener must exist before the state can ever
become true, so handlers are registered even while their predicate is
false. Pseudo-elements (::before, ::after) and substring matches
(:contains) synthesize additional child nodes from resolved styles.

The engine's contract is to always produce a renderable tree: malformed
selector references, unknown condition expressions and absent children
degrade style fidelity with a diagnostic trace, but never abort the walk.

Condition expressions form a small closed grammar; see the package-level
expression parser. Unrecognized expressions evaluate to no-match.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resolve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'look.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("look.resolve")
}
