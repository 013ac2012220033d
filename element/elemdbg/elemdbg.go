/*
Package elemdbg prints element trees for debugging.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package elemdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/style"
	tp "github.com/xlab/treeprint"
)

// Dump renders an element tree as an indented ASCII tree, one line per
// node, with a short summary of each node's properties. Intended for test
// logs and debugging sessions.
func Dump(n *element.Node) string {
	p := tp.New()
	dump(p, n)
	return p.String()
}

func dump(p tp.Tree, n *element.Node) {
	if n == nil {
		p.AddNode("(nil)")
		return
	}
	if n.IsPrimitive() {
		p.AddNode(fmt.Sprintf("%q", n.TextContent()))
		return
	}
	if len(n.Children()) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children() {
		dump(branch, ch)
	}
}

func label(n *element.Node) string {
	var b strings.Builder
	b.WriteString(n.Kind())
	n.Props().Each(func(key string, value interface{}) {
		switch v := value.(type) {
		case *style.PropertyMap:
			fmt.Fprintf(&b, " %s={", key)
			first := true
			v.Each(func(k string, p style.Property) {
				if !first {
					b.WriteString("; ")
				}
				first = false
				fmt.Fprintf(&b, "%s: %s", k, p)
			})
			b.WriteString("}")
		case string:
			fmt.Fprintf(&b, " %s=%q", key, v)
		case element.Handler:
			fmt.Fprintf(&b, " %s=(listener)", key)
		default:
			fmt.Fprintf(&b, " %s=%v", key, v)
		}
	})
	return b.String()
}
