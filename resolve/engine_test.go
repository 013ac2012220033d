package resolve

import (
	"testing"

	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/element/elemdbg"
	"github.com/npillmayer/look/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolvePrimitivePassthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	rig := newTestRig(style.Table{})
	txt := element.Text("hello")
	if rig.resolver.Resolve(txt) != txt {
		t.Error("expected primitive node to pass through unchanged, doesn't")
	}
	if rig.resolver.Resolve(nil) != nil {
		t.Error("expected nil to resolve to nil, doesn't")
	}
}

func TestResolveExplicitStyleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{"button": style.NewRule().Set("color", "red").Set("padding", "4pt")}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().
		Set("look", "button").
		Set("style", map[string]string{"color": "blue"}))
	resolved := rig.resolver.Resolve(n)
	t.Logf("resolved =\n%s", elemdbg.Dump(resolved))
	if p := styleValue(resolved, "color"); p != "blue" {
		t.Errorf("expected explicit style prop to win, color is %s", p)
	}
	if p := styleValue(resolved, "padding"); p != "4pt" {
		t.Errorf("expected look-derived padding to survive, is %s", p)
	}
}

func TestResolveExplicitStyleWinsOverNestedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	// the rule sets color at nesting depth 2; the explicit prop still wins
	table := style.Table{"button": style.NewRule().
		When(":first-child", style.NewRule().Set("color", "red").
			When(":first-of-type", style.NewRule().Set("color", "green")))}
	rig := newTestRig(table)
	child := element.New("div", element.NewProps().
		Set("look", "button").
		Set("style", map[string]string{"color": "blue"}))
	parent := element.New("p", element.NewProps(), child, element.New("div", nil))
	resolved := rig.resolver.Resolve(parent)
	if p := styleValue(resolved.Children()[0], "color"); p != "blue" {
		t.Errorf("expected explicit style to win regardless of nesting depth, color is %s", p)
	}
}

func TestResolveSelectorListOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{
		"base":   style.NewRule().Set("color", "red").Set("width", "10pt"),
		"accent": style.NewRule().Set("color", "green"),
	}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().Set("look", "base accent"))
	resolved := rig.resolver.Resolve(n)
	if p := styleValue(resolved, "color"); p != "green" {
		t.Errorf("expected later selector to win on conflicts, color is %s", p)
	}
	if p := styleValue(resolved, "width"); p != "10pt" {
		t.Errorf("expected earlier selector's other properties to survive, width is %s", p)
	}
}

func TestResolveUnknownSelectorSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{"base": style.NewRule().Set("color", "red")}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().Set("look", "bogus base"))
	resolved := rig.resolver.Resolve(n)
	if p := styleValue(resolved, "color"); p != "red" {
		t.Errorf("expected unknown selector to contribute nothing, color is %s", p)
	}
}

func TestResolveBareBooleanLook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{style.DefaultLookName: style.NewRule().Set("color", "gray")}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().Set("look", true))
	resolved := rig.resolver.Resolve(n)
	if p := styleValue(resolved, "color"); p != "gray" {
		t.Errorf("expected bare boolean look to use the default rule, color is %s", p)
	}
}

func TestResolveStripsLookProp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{"base": style.NewRule().Set("color", "red")}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().Set("look", "base").Set("title", "x"))
	resolved := rig.resolver.Resolve(n)
	if _, ok := resolved.Prop("look"); ok {
		t.Error("expected look prop to be stripped from the output, isn't")
	}
	if v, _ := resolved.Prop("title"); v != "x" {
		t.Error("expected unrelated props to be kept, aren't")
	}
	if _, ok := n.Prop("look"); !ok {
		t.Error("expected the input node to stay untouched, doesn't")
	}
}

func TestResolvePositionalMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	// for siblings of kinds [x, y, x, z], :nth-of-type(2) must hit
	// exactly the second x (index 2, type-index 2 of 2)
	table := style.Table{"mark": style.NewRule().
		When(":nth-of-type(2)", style.NewRule().Set("color", "red"))}
	rig := newTestRig(table)
	parent := element.New("p", element.NewProps(),
		element.New("x", element.NewProps().Set("look", "mark")),
		element.New("y", element.NewProps().Set("look", "mark")),
		element.New("x", element.NewProps().Set("look", "mark")),
		element.New("z", element.NewProps().Set("look", "mark")),
	)
	resolved := rig.resolver.Resolve(parent)
	t.Logf("resolved =\n%s", elemdbg.Dump(resolved))
	for i, want := range []style.Property{"", "", "red", ""} {
		if p := styleValue(resolved.Children()[i], "color"); p != want {
			t.Errorf("child %d: expected color %q, is %q", i, want, p)
		}
	}
}

func TestResolveDropsNilChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	rig := newTestRig(style.Table{})
	parent := element.New("p", element.NewProps(),
		element.New("x", nil),
		nil,
		element.New("y", nil),
	)
	resolved := rig.resolver.Resolve(parent)
	if len(resolved.Children()) != 2 {
		t.Fatalf("expected absent child to be dropped, have %d children",
			len(resolved.Children()))
	}
	if resolved.Children()[0].Kind() != "x" || resolved.Children()[1].Kind() != "y" {
		t.Error("expected remaining children to keep their order, don't")
	}
}

func TestResolveSingleChildNoPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	// positional conditions never match in a single-child context
	table := style.Table{"mark": style.NewRule().Set("color", "gray").
		When(":first-child", style.NewRule().Set("color", "red"))}
	rig := newTestRig(table)
	parent := element.New("p", element.NewProps(),
		element.New("x", element.NewProps().Set("look", "mark")))
	resolved := rig.resolver.Resolve(parent)
	if p := styleValue(resolved.Children()[0], "color"); p != "gray" {
		t.Errorf("expected positional condition to stay inert without siblings, color is %s", p)
	}
}

func TestResolveClassAppended(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{"button": style.NewRule().WithClass("btn")}
	rig := newTestRig(table)
	n := element.New("div", element.NewProps().
		Set("className", "card").
		Set("look", "button"))
	resolved := rig.resolver.Resolve(n)
	if c := resolved.Props().String("className"); c != "card btn" {
		t.Errorf("expected class names to be space-joined, are %q", c)
	}
	// and created if absent
	n = element.New("div", element.NewProps().Set("look", "button"))
	resolved = rig.resolver.Resolve(n)
	if c := resolved.Props().String("className"); c != "btn" {
		t.Errorf("expected className to be created, is %q", c)
	}
}

func TestResolveDeterministicOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.resolve")
	defer teardown()
	//
	table := style.Table{"base": style.NewRule().Set("color", "red").
		When(":first-child", style.NewRule().Set("color", "green")).
		When(":nth-child(1)", style.NewRule().Set("color", "blue"))}
	rig := newTestRig(table)
	parent := element.New("p", element.NewProps(),
		element.New("x", element.NewProps().Set("look", "base")),
		element.New("x", nil),
	)
	want := styleValue(rig.resolver.Resolve(parent).Children()[0], "color")
	if want != "blue" {
		t.Fatalf("expected later condition to win, color is %s", want)
	}
	for i := 0; i < 10; i++ {
		got := styleValue(rig.resolver.Resolve(parent).Children()[0], "color")
		if got != want {
			t.Fatalf("pass %d: resolution is not deterministic: %s != %s", i, got, want)
		}
	}
}
