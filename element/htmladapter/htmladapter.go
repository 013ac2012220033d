/*
Package htmladapter builds element trees from HTML parse trees.

This is a convenience for hosts which author their UI as HTML fragments:
an html.Node tree (as produced by golang.org/x/net/html) is converted into
an element.Node tree suitable for style resolution. The 'look', 'key' and
'ref' attributes map onto the properties of the same names; 'class' maps
onto 'className'.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/look/element"
	"golang.org/x/net/html"
)

// ErrNoContent flags an HTML document without a body element.
var ErrNoContent = errors.New("HTML document has no body")

// attributes renamed on conversion
var attrPropNames = map[string]string{
	"class": "className",
}

// Parse reads an HTML document and converts its body into an element
// tree.
func Parse(r io.Reader) (*element.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, ErrNoContent
	}
	return FromHTML(body), nil
}

// FromHTML converts an HTML node into an element node. Comment and
// doctype nodes, as well as whitespace-only text, convert to nil.
func FromHTML(n *html.Node) *element.Node {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return element.Text(n.Data)
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := FromHTML(c); converted != nil {
				return converted
			}
		}
		return nil
	case html.ElementNode:
		props := element.NewProps()
		for _, a := range n.Attr {
			name := a.Key
			if mapped, ok := attrPropNames[name]; ok {
				name = mapped
			}
			props.Set(name, a.Val)
		}
		var children []*element.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := FromHTML(c); converted != nil {
				children = append(children, converted)
			}
		}
		return element.New(n.Data, props, children...)
	}
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
