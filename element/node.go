package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// DefaultKey is the identity key assigned to nodes which carry neither a
// 'key' nor a 'ref' property. Interaction state for such nodes aliases
// within one owner.
const DefaultKey = "root"

// Node is an immutable description of a UI node. Nodes are created by a
// host's render pass (or by an element Factory) and are never mutated by
// the styling engine; resolution produces replacement nodes.
//
// A node is either an element node, carrying a kind and a property set, or
// a primitive (text) node, carrying only a text payload. Primitive nodes
// have no inspectable properties and pass through style resolution
// unchanged.
type Node struct {
	kind     string
	text     string
	props    *Props
	children []*Node
}

// New creates an element node of a given kind with a property set and
// children. props may be nil for an element without properties; it will be
// normalized to an empty set, keeping the node inspectable.
func New(kind string, props *Props, children ...*Node) *Node {
	if props == nil {
		props = NewProps()
	}
	return &Node{kind: kind, props: props, children: children}
}

// Text creates a primitive node carrying text content.
func Text(text string) *Node {
	return &Node{text: text}
}

// IsPrimitive is a predicate for text nodes, i.e. nodes without an
// inspectable property set.
func (n *Node) IsPrimitive() bool {
	return n.props == nil
}

// Kind returns the node's tag or component identity. Primitive nodes have
// kind "".
func (n *Node) Kind() string {
	return n.kind
}

// TextContent returns the payload of a primitive node, or "" for element
// nodes.
func (n *Node) TextContent() string {
	return n.text
}

// Props returns the node's property set. It is nil for primitive nodes.
// Callers must not modify the returned set; clone it instead.
func (n *Node) Props() *Props {
	return n.props
}

// Prop is a shorthand for looking up a single property.
func (n *Node) Prop(key string) (interface{}, bool) {
	return n.props.Get(key)
}

// Children returns the node's children. The returned slice is owned by the
// node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// IdentityKey returns the key under which per-node interaction state is
// stored: the 'key' property if set, else 'ref', else DefaultKey.
func (n *Node) IdentityKey() string {
	if n.props != nil {
		if k := n.props.String("key"); k != "" {
			return k
		}
		if r := n.props.String("ref"); r != "" {
			return r
		}
	}
	return DefaultKey
}

// HasExplicitKey tells wether the node's identity key has been assigned by
// the host, rather than being the DefaultKey fallback.
func (n *Node) HasExplicitKey() bool {
	if n.props == nil {
		return false
	}
	return n.props.String("key") != "" || n.props.String("ref") != ""
}

func (n *Node) String() string {
	if n == nil {
		return "(nil node)"
	}
	if n.IsPrimitive() {
		return fmt.Sprintf("(text %q)", n.text)
	}
	return fmt.Sprintf("(%s #props=%d #ch=%d)", n.kind, n.props.Len(), len(n.children))
}
