package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/style"
)

// Condition expressions form a small closed grammar. Every expression is
// parsed into one of a fixed set of condition kinds; anything else is
// condUnknown and evaluates to no-match. The set is closed on purpose:
// dispatching on open-ended property names would make every typo a silent
// new pseudo-class.
type condKind uint8

const (
	condUnknown condKind = iota
	condHover
	condActive
	condFocus
	condFirstChild
	condLastChild
	condNthChild
	condFirstOfType
	condLastOfType
	condNthOfType
	condContains
	condBefore
	condAfter
	condCompare
)

type condition struct {
	kind    condKind
	nth     int    // 1-based argument of :nth-child(n) / :nth-of-type(n)
	pattern string // argument of :contains(pattern)
	lhs     string // owner prop/state name of a comparison
	op      string // comparison operator; "" means truthiness test
	rhs     string // literal right-hand side of a comparison
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// comparison operators, two-character ones first
var compareOps = []string{"==", "!=", "<=", ">=", "<", ">"}

// parseCondition classifies a condition expression string. It never fails;
// malformed input yields condUnknown.
func parseCondition(expr string) condition {
	s := strings.TrimSpace(expr)
	switch s {
	case ":hover":
		return condition{kind: condHover}
	case ":active":
		return condition{kind: condActive}
	case ":focus":
		return condition{kind: condFocus}
	case ":first-child":
		return condition{kind: condFirstChild}
	case ":last-child":
		return condition{kind: condLastChild}
	case ":first-of-type":
		return condition{kind: condFirstOfType}
	case ":last-of-type":
		return condition{kind: condLastOfType}
	case "::before", "before":
		return condition{kind: condBefore}
	case "::after", "after":
		return condition{kind: condAfter}
	}
	if arg, ok := funcArg(s, ":nth-child"); ok {
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			return condition{kind: condNthChild, nth: n}
		}
		return condition{}
	}
	if arg, ok := funcArg(s, ":nth-of-type"); ok {
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			return condition{kind: condNthOfType, nth: n}
		}
		return condition{}
	}
	if arg, ok := funcArg(s, ":contains"); ok {
		if pattern := unquote(arg); pattern != "" {
			return condition{kind: condContains, pattern: pattern}
		}
		return condition{}
	}
	for _, op := range compareOps {
		if i := strings.Index(s, op); i > 0 {
			lhs := strings.TrimSpace(s[:i])
			rhs := strings.TrimSpace(s[i+len(op):])
			if identPattern.MatchString(lhs) && rhs != "" {
				return condition{kind: condCompare, lhs: lhs, op: op, rhs: unquote(rhs)}
			}
			return condition{}
		}
	}
	if identPattern.MatchString(s) {
		// bare name: truthiness of an owner prop/state value
		return condition{kind: condCompare, lhs: s}
	}
	return condition{}
}

// funcArg extracts the argument of a function-style expression like
// ":nth-child(2)".
func funcArg(s, name string) (string, bool) {
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return strings.TrimSpace(s[len(name)+1 : len(s)-1]), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// evaluate dispatches a parsed condition. Interaction conditions register
// their listeners into the outgoing props as a side effect, even when the
// predicate currently evaluates false: state must be observable on a
// future resolution pass, so the listener has to exist before the state
// can ever become true.
func (r *Resolver) evaluate(cond condition, nested *style.Rule, n *element.Node,
	out *element.Props, pos *Position, sink *effects) Effect {
	//
	switch cond.kind {
	case condHover, condActive, condFocus:
		return r.interactionEffect(cond.kind, n, out)
	case condFirstChild:
		return Effect{Match: pos != nil && pos.Index == 0}
	case condLastChild:
		return Effect{Match: pos != nil && pos.Index == pos.Count-1}
	case condNthChild:
		return Effect{Match: pos != nil && pos.Index+1 == cond.nth}
	case condFirstOfType:
		return Effect{Match: pos != nil && pos.TypeIndex == 1}
	case condLastOfType:
		return Effect{Match: pos != nil && pos.TypeCount > 0 && pos.TypeIndex == pos.TypeCount}
	case condNthOfType:
		return Effect{Match: pos != nil && pos.TypeIndex == cond.nth}
	case condContains:
		return r.substringEffect(cond.pattern, nested, n, pos, sink)
	case condCompare:
		return Effect{Match: r.compare(cond)}
	}
	return Effect{}
}

// compare evaluates a comparison against the owner's props, falling back
// to its state. Numeric comparison is used when both sides parse as
// numbers, lexicographic comparison otherwise.
func (r *Resolver) compare(cond condition) bool {
	v, ok := r.owner.Prop(cond.lhs)
	if !ok {
		v, ok = r.owner.State(cond.lhs)
	}
	if !ok {
		return false
	}
	if cond.op == "" {
		return truthy(v)
	}
	lhs := fmt.Sprintf("%v", v)
	rhs := cond.rhs
	if fl, errl := strconv.ParseFloat(lhs, 64); errl == nil {
		if fr, errr := strconv.ParseFloat(rhs, 64); errr == nil {
			return compareNumeric(fl, cond.op, fr)
		}
	}
	switch cond.op {
	case "==":
		return lhs == rhs
	case "!=":
		return lhs != rhs
	case "<":
		return lhs < rhs
	case "<=":
		return lhs <= rhs
	case ">":
		return lhs > rhs
	case ">=":
		return lhs >= rhs
	}
	return false
}

func compareNumeric(l float64, op string, r float64) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}
