package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/interaction"
	"github.com/npillmayer/look/style"
)

// Owner is the component instance owning a (sub-)tree under resolution.
// Condition expressions reference its props and state by name; interaction
// state and listeners are scoped to it.
type Owner interface {
	Prop(name string) (interface{}, bool)
	State(name string) (interface{}, bool)
}

// Position is the positional metadata of one node within its sibling
// group, computed once per group before recursing.
//
// Index is 0-based; TypeIndex counts occurrences of the same node kind up
// to and including this node (1-based). TypeCount is the total count of
// that kind among the siblings.
type Position struct {
	Index     int
	Count     int
	TypeIndex int
	TypeCount int
}

// Resolver resolves 'look' style descriptors on element trees for one
// owning component instance. A resolver is not safe for concurrent use;
// hosts run at most one resolution pass per owner at a time.
type Resolver struct {
	owner       Owner
	table       style.Table
	store       *interaction.Store
	registry    *interaction.Registry
	factory     element.Factory
	notifier    element.ReleaseNotifier
	implicitKey *element.Node // first interactive node falling back to the default key
	warnedKey   bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFactory sets the host's node creation/cloning primitives. Defaults
// to element.BasicFactory.
func WithFactory(f element.Factory) Option {
	return func(r *Resolver) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithReleaseNotifier provides the host's global pointer-release signal.
// The interaction store is attached to it on first use of an :active
// condition (and may be attached eagerly by the owner instead).
func WithReleaseNotifier(n element.ReleaseNotifier) Option {
	return func(r *Resolver) {
		r.notifier = n
	}
}

// New creates a Resolver for one owner. store and registry are the owner's
// interaction state store and listener registry; they live as long as the
// owner does and carry state between resolution passes.
func New(owner Owner, table style.Table, store *interaction.Store,
	registry *interaction.Registry, opts ...Option) *Resolver {
	//
	r := &Resolver{
		owner:    owner,
		table:    table,
		store:    store,
		registry: registry,
		factory:  element.BasicFactory{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the element tree rooted at node and returns a replacement
// tree with all 'look' descriptors resolved into style property maps.
// The input tree is left untouched. Resolve never fails; degraded rules
// are traced and skipped.
func (r *Resolver) Resolve(node *element.Node) *element.Node {
	r.implicitKey = nil
	r.warnedKey = false
	return r.resolveNode(node, nil)
}

func (r *Resolver) resolveNode(n *element.Node, pos *Position) *element.Node {
	if n == nil || n.IsPrimitive() {
		return n // terminal case: nothing inspectable on primitive content
	}
	sink := &effects{children: r.resolveChildren(n)}
	out := n.Props().Clone()
	lookVal, hasLook := out.Get("look")
	out.Delete("look")
	styles := style.NewPropertyMap()
	if hasLook {
		for _, name := range lookNames(lookVal) {
			rule, ok := r.table.Rule(name)
			if !ok {
				// malformed selector reference: contributes nothing
				tracer().Debugf("no style rule for look %q", name)
				continue
			}
			styles.MergeFrom(r.resolveRule(n, rule, out, pos, sink), true)
		}
	}
	// explicit style prop is author intent and wins over resolved values
	if sp, ok := out.Get("style"); ok {
		styles.MergeFrom(asPropertyMap(sp), true)
	}
	children := sink.children
	if sink.before != nil {
		children = append([]*element.Node{r.synthesize(sink.before)}, children...)
	}
	if sink.after != nil {
		children = append(children, r.synthesize(sink.after))
	}
	if styles.Size() > 0 {
		out.Set("style", styles)
	} else {
		out.Delete("style")
	}
	return r.factory.Clone(n, out, children)
}

// resolveChildren resolves a node's children bottom-up and computes
// positional metadata for sibling groups.
func (r *Resolver) resolveChildren(n *element.Node) []*element.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	if len(children) == 1 {
		// single-child context has no siblings to index
		ch := children[0]
		if ch == nil {
			tracer().Errorf("dropping absent child of %v; check the host's render output", n)
			return nil
		}
		if ch.IsPrimitive() {
			return children
		}
		return []*element.Node{r.resolveNode(ch, nil)}
	}
	typeCount := make(map[string]int) // pre-pass over the whole sibling group
	for _, ch := range children {
		if ch != nil && !ch.IsPrimitive() {
			typeCount[ch.Kind()]++
		}
	}
	typeIndex := make(map[string]int)
	resolved := make([]*element.Node, 0, len(children))
	for i, ch := range children {
		if ch == nil {
			// data loss is intentional here: rendering must still succeed
			tracer().Errorf("dropping absent child %d of %v; check the host's render output", i, n)
			continue
		}
		if ch.IsPrimitive() {
			resolved = append(resolved, ch)
			continue
		}
		typeIndex[ch.Kind()]++
		pos := &Position{
			Index:     i,
			Count:     len(children),
			TypeIndex: typeIndex[ch.Kind()],
			TypeCount: typeCount[ch.Kind()],
		}
		resolved = append(resolved, r.resolveNode(ch, pos))
	}
	return resolved
}

// lookNames splits a node's look descriptor into selector names. A bare
// boolean true maps to the implicit default name.
func lookNames(v interface{}) []string {
	switch look := v.(type) {
	case bool:
		if look {
			return []string{style.DefaultLookName}
		}
		return nil
	case string:
		return strings.Fields(look)
	}
	tracer().Infof("look descriptor has unusable type %T, ignoring", v)
	return nil
}

// asPropertyMap coerces an explicit 'style' prop value into a property
// map. Plain maps are copied in sorted key order to keep merge output
// deterministic.
func asPropertyMap(v interface{}) *style.PropertyMap {
	switch m := v.(type) {
	case *style.PropertyMap:
		return m
	case map[string]string:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pmap := style.NewPropertyMap()
		for _, k := range keys {
			pmap.Set(k, style.Property(m[k]))
		}
		return pmap
	case map[string]interface{}:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pmap := style.NewPropertyMap()
		for _, k := range keys {
			pmap.Set(k, style.Property(fmt.Sprintf("%v", m[k])))
		}
		return pmap
	}
	tracer().Infof("style prop has unusable type %T, ignoring", v)
	return nil
}
