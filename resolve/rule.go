package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/style"
)

// effects collects the side outputs of rule resolution for one node: the
// (possibly replaced) children sequence and the before/after
// pseudo-element slots. Conditions communicate children replacement
// through the explicit Effect result type, never through sentinel return
// values.
type effects struct {
	children []*element.Node
	before   *style.PropertyMap
	after    *style.PropertyMap
}

// Effect is the result of evaluating one condition: whether its nested
// rule applies, and an optional replacement for the node's children
// (produced by the substring-match pseudo-class).
type Effect struct {
	Match           bool
	Children        []*element.Node
	ReplaceChildren bool
}

// resolveRule resolves one style rule for a node into a property map.
// Class contributions are appended to the outgoing props immediately;
// conditional sub-rules are evaluated in declared order, with nested rules
// winning over outer ones on conflicting property names (the more specific
// selector wins). Conditions naming a pseudo-element route their nested
// resolution into the sink's before/after slot instead.
func (r *Resolver) resolveRule(n *element.Node, rule *style.Rule, out *element.Props,
	pos *Position, sink *effects) *style.PropertyMap {
	//
	acc := rule.Props.Clone()
	if rule.Class != "" {
		appendClass(out, rule.Class)
	}
	for _, c := range rule.Conditions {
		if c.Rule == nil {
			tracer().Infof("condition %q has no rule body, ignoring", c.Expr)
			continue
		}
		cond := parseCondition(c.Expr)
		switch cond.kind {
		case condBefore:
			sink.before = sink.before.MergeFrom(r.resolveRule(n, c.Rule, out, pos, sink), true)
		case condAfter:
			sink.after = sink.after.MergeFrom(r.resolveRule(n, c.Rule, out, pos, sink), true)
		case condUnknown:
			// a single bad rule degrades gracefully, the walk continues
			tracer().Infof("unrecognized condition %q, treating as non-matching", c.Expr)
		default:
			eff := r.evaluate(cond, c.Rule, n, out, pos, sink)
			if eff.ReplaceChildren {
				sink.children = eff.Children
			}
			if eff.Match {
				acc.MergeFrom(r.resolveRule(n, c.Rule, out, pos, sink), true)
			}
		}
	}
	return acc
}

// appendClass appends a class-name contribution to the outgoing props,
// space-joined with any class names already present.
func appendClass(out *element.Props, class string) {
	if existing := out.String("className"); existing != "" {
		out.Set("className", existing+" "+class)
		return
	}
	out.Set("className", class)
}
