/*
Package element provides the element-node model which the styling engine
operates on.

# Overview

Hosts (rendering frameworks) produce trees of element nodes during their
render step and hand them over for style resolution. Element nodes are
descriptions, not live objects: the engine never mutates a node it received,
but rather produces replacement nodes through a Factory. This mirrors the
contract of virtual-DOM style renderers, where node trees are throw-away
values owned by the render pass that produced them.

Nodes carry a kind (tag or component identity), an ordered property set and
children. Text and other primitive content is represented by text nodes,
which carry no inspectable properties.

The identity of a node for interaction-state purposes is its 'key' property,
falling back to 'ref', falling back to a default. Hosts which attach
interactive pseudo-classes to several sibling nodes without explicit keys
will observe state aliasing; the engine warns about this but proceeds.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package element

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'look.element'.
func tracer() tracing.Trace {
	return tracing.Select("look.element")
}
