package yamltable

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const buttonTable = `
button:
  className: btn
  color: blue
  padding: 4pt
  ":hover":
    color: red
  ":nth-child(2)":
    color: green
  "::before":
    content: "★"
label:
  color: gray
`

func TestLoadTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.style")
	defer teardown()
	//
	table, err := LoadString(buttonTable)
	require.NoError(t, err)
	require.Len(t, table, 2)
	button, ok := table.Rule("button")
	require.True(t, ok, "expected selector 'button' to be present")
	if button.Class != "btn" {
		t.Errorf("expected class contribution 'btn', is %q", button.Class)
	}
	if p, _ := button.Props.Property("color"); p != "blue" {
		t.Errorf("expected base color blue, is %s", p)
	}
	if _, ok := button.Props.Property("className"); ok {
		t.Error("expected className to be kept out of the property map, isn't")
	}
}

func TestLoadConditionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.style")
	defer teardown()
	//
	table, err := LoadString(buttonTable)
	require.NoError(t, err)
	button, _ := table.Rule("button")
	require.Len(t, button.Conditions, 3)
	exprs := []string{
		button.Conditions[0].Expr,
		button.Conditions[1].Expr,
		button.Conditions[2].Expr,
	}
	want := []string{":hover", ":nth-child(2)", "::before"}
	require.Equal(t, want, exprs, "conditions must keep document order")
	if p, _ := button.Conditions[0].Rule.Props.Property("color"); p != "red" {
		t.Errorf("expected hover color red, is %s", p)
	}
}

func TestLoadNotATable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.style")
	defer teardown()
	//
	_, err := LoadString("- just\n- a\n- sequence\n")
	if err != ErrNotATable {
		t.Errorf("expected ErrNotATable for a sequence document, got %v", err)
	}
	table, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	if len(table) != 0 {
		t.Errorf("expected empty document to load as empty table, has %d entries", len(table))
	}
}

func TestLoadBadProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.style")
	defer teardown()
	//
	_, err := LoadString("button:\n  color:\n    - no\n    - sequences\n")
	if err == nil {
		t.Error("expected sequence-valued property to be rejected, wasn't")
	} else {
		t.Logf("err = %v", err)
	}
}
