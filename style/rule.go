package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// DefaultLookName is the selector name an element's bare 'look: true'
// property resolves to.
const DefaultLookName = "_default"

// Rule is a style rule: a base property set, an optional class-name
// contribution, and an ordered list of conditions guarding nested rules.
//
// Conditions nest recursively; a condition's body is itself a Rule. The
// declared order of conditions is the evaluation order, every time; this
// keeps merged output deterministic when several conditions set the same
// property.
type Rule struct {
	Props      *PropertyMap
	Class      string // appended to the node's outgoing class names, if set
	Conditions []Condition
}

// Condition is one conditional sub-rule of a Rule. Expr is a condition
// expression (a pseudo-class like ":hover" or ":nth-child(2)", a
// pseudo-element like "::before", or a comparison against owner
// props/state). The resolution engine evaluates it; this package only
// stores it.
type Condition struct {
	Expr string
	Rule *Rule
}

// NewRule creates an empty style rule.
func NewRule() *Rule {
	return &Rule{Props: NewPropertyMap()}
}

// Set sets a base property on the rule. It returns the rule to allow for
// chaining.
func (r *Rule) Set(key string, p Property) *Rule {
	if r.Props == nil {
		r.Props = NewPropertyMap()
	}
	r.Props.Set(key, p)
	return r
}

// When appends a conditional sub-rule. It returns the rule to allow for
// chaining.
func (r *Rule) When(expr string, nested *Rule) *Rule {
	r.Conditions = append(r.Conditions, Condition{Expr: expr, Rule: nested})
	return r
}

// WithClass sets the rule's class-name contribution. It returns the rule
// to allow for chaining.
func (r *Rule) WithClass(class string) *Rule {
	r.Class = class
	return r
}

// --- Rule table -------------------------------------------------------

// Table maps selector names to style rules. Tables are supplied by the
// caller; they may be assembled from several partial tables via Merge.
type Table map[string]*Rule

// Rule looks up a selector name. Unknown names yield (nil, false); the
// engine treats them as empty contributions.
func (t Table) Rule(name string) (*Rule, bool) {
	if t == nil {
		return nil, false
	}
	r, ok := t[name]
	return r, ok
}

// Merge combines two tables into a new one. Entries of other win on name
// conflicts (shallow per-name override; rules are not merged internally).
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for name, rule := range t {
		merged[name] = rule
	}
	for name, rule := range other {
		if _, clash := merged[name]; clash {
			tracer().Debugf("table merge: selector %q overridden", name)
		}
		merged[name] = rule
	}
	return merged
}
