package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/style"
)

// SpanKind is the node kind of synthesized pseudo-element and
// substring-match wrapper nodes.
const SpanKind = "span"

// ImageKind is the node kind synthesized for a pseudo-element whose
// content is a URL reference.
const ImageKind = "img"

var urlRefPattern = regexp.MustCompile(`^url\(\s*['"]?([^'")]+)['"]?\s*\)$`)

// synthesize turns a resolved before/after slot into a child node. The
// slot's 'content' entry becomes the node's text payload, or an image
// node when it is a URL reference like "url(star.png)". The remaining
// entries become the node's style.
func (r *Resolver) synthesize(slot *style.PropertyMap) *element.Node {
	styles := slot.Clone()
	content, _ := styles.Property("content")
	styles.Delete("content")
	props := element.NewProps()
	if m := urlRef(content); m != "" {
		props.Set("src", m)
		if styles.Size() > 0 {
			props.Set("style", styles)
		}
		return r.factory.Create(ImageKind, props)
	}
	if styles.Size() > 0 {
		props.Set("style", styles)
	}
	if content.IsEmpty() {
		return r.factory.Create(SpanKind, props)
	}
	return r.factory.Create(SpanKind, props, r.factory.CreateText(content.String()))
}

func urlRef(p style.Property) string {
	m := urlRefPattern.FindStringSubmatch(p.String())
	if m == nil {
		return ""
	}
	return m[1]
}

// substringEffect handles :contains(pattern). It operates only when the
// node's resolved children are a single primitive; the text is split around
// every occurrence of the pattern and each occurrence is wrapped in a
// styled span node. The resulting interleaved sequence is communicated as
// a children replacement; the condition itself never contributes to the
// node's own style.
func (r *Resolver) substringEffect(pattern string, nested *style.Rule, n *element.Node,
	pos *Position, sink *effects) Effect {
	//
	if len(sink.children) != 1 || !sink.children[0].IsPrimitive() {
		return Effect{}
	}
	text := sink.children[0].TextContent()
	re, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Infof("substring pattern %q is not a valid expression, matching literally", pattern)
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return Effect{} // no matches: children stay untouched
	}
	// resolve the span styling against throwaway props; class contributions
	// belong to the spans, not to the decorated node
	spanProps := element.NewProps()
	spanStyle := r.resolveRule(n, nested, spanProps, pos, &effects{})
	spanClass := spanProps.String("className")
	seq := make([]*element.Node, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] == m[1] {
			continue // empty match, nothing to wrap
		}
		if m[0] > last {
			seq = append(seq, r.factory.CreateText(text[last:m[0]]))
		}
		props := element.NewProps()
		if spanStyle.Size() > 0 {
			props.Set("style", spanStyle)
		}
		if spanClass != "" {
			props.Set("className", spanClass)
		}
		seq = append(seq, r.factory.Create(SpanKind, props, r.factory.CreateText(text[m[0]:m[1]])))
		last = m[1]
	}
	if last == 0 {
		return Effect{} // only empty matches occurred
	}
	if last < len(text) {
		seq = append(seq, r.factory.CreateText(text[last:]))
	}
	return Effect{Children: seq, ReplaceChildren: true}
}
