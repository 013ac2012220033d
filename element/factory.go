package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Factory abstracts the host framework's node creation and cloning
// primitives. The styling engine produces all of its output nodes through a
// Factory, so hosts with their own node allocation (pooling, interning,
// bookkeeping) stay in control of it.
//
// Factory operations are assumed total and free of side effects beyond
// allocation.
type Factory interface {
	// Clone produces a replacement for a node, with a new property set and
	// new children. kind and text payload are taken from the original.
	Clone(n *Node, props *Props, children []*Node) *Node

	// Create produces a fresh element node, used for synthesized
	// pseudo-elements and substring-match spans.
	Create(kind string, props *Props, children ...*Node) *Node

	// CreateText produces a fresh primitive node.
	CreateText(text string) *Node
}

// BasicFactory is the default Factory, allocating plain element nodes.
type BasicFactory struct{}

// Clone is part of interface Factory.
func (BasicFactory) Clone(n *Node, props *Props, children []*Node) *Node {
	if n.IsPrimitive() {
		return Text(n.TextContent())
	}
	return New(n.Kind(), props, children...)
}

// Create is part of interface Factory.
func (BasicFactory) Create(kind string, props *Props, children ...*Node) *Node {
	return New(kind, props, children...)
}

// CreateText is part of interface Factory.
func (BasicFactory) CreateText(text string) *Node {
	return Text(text)
}

var _ Factory = BasicFactory{}
