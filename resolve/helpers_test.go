package resolve

import (
	"reflect"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/interaction"
	"github.com/npillmayer/look/style"
)

// testOwner is a fake owning component instance.
type testOwner struct {
	props map[string]interface{}
	state map[string]interface{}
}

func (o *testOwner) Prop(name string) (interface{}, bool) {
	v, ok := o.props[name]
	return v, ok
}

func (o *testOwner) State(name string) (interface{}, bool) {
	v, ok := o.state[name]
	return v, ok
}

// fakeNotifier is a stand-in for the host's global pointer-release signal.
type fakeNotifier struct {
	fns []func()
}

func (fn *fakeNotifier) OnRelease(f func()) (cancel func()) {
	i := len(fn.fns)
	fn.fns = append(fn.fns, f)
	return func() { fn.fns[i] = nil }
}

func (fn *fakeNotifier) fire() {
	for _, f := range fn.fns {
		if f != nil {
			f()
		}
	}
}

type testRig struct {
	owner    *testOwner
	store    *interaction.Store
	registry *interaction.Registry
	notifier *fakeNotifier
	resolver *Resolver
}

func newTestRig(table style.Table) *testRig {
	rig := &testRig{
		owner:    &testOwner{props: map[string]interface{}{}, state: map[string]interface{}{}},
		store:    interaction.NewStore(),
		registry: interaction.NewRegistry(),
		notifier: &fakeNotifier{},
	}
	rig.resolver = New(rig.owner, table, rig.store, rig.registry,
		WithReleaseNotifier(rig.notifier))
	return rig
}

// nodeStyle extracts the resolved style map of a node, or nil.
func nodeStyle(n *element.Node) *style.PropertyMap {
	v, ok := n.Prop("style")
	if !ok {
		return nil
	}
	pmap, _ := v.(*style.PropertyMap)
	return pmap
}

func styleValue(n *element.Node, key string) style.Property {
	pmap := nodeStyle(n)
	if pmap == nil {
		return style.NullStyle
	}
	p, _ := pmap.Property(key)
	return p
}

// fire invokes a handler injected into a node's props, the way a host
// would on an input event.
func fire(n *element.Node, propName string) bool {
	v, ok := n.Prop(propName)
	if !ok {
		return false
	}
	h, ok := v.(element.Handler)
	if !ok {
		return false
	}
	h(element.Event{Name: propName, Target: n})
	return true
}

func handlerRef(n *element.Node, propName string) uintptr {
	v, ok := n.Prop(propName)
	if !ok {
		return 0
	}
	return reflect.ValueOf(v).Pointer()
}
