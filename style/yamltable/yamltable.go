/*
Package yamltable loads style tables from YAML documents.

A document is a mapping of selector names to rules. Inside a rule,
scalar-valued keys are style properties, mapping-valued keys are condition
expressions guarding nested rules, and the key "className" names the
rule's class contribution:

	button:
	  className: btn
	  color: blue
	  ":hover":
	    color: red
	  "::before":
	    content: "★"

The declared order of conditions is preserved; it is the evaluation
order of the resolution engine.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package yamltable

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/look/style"
	"gopkg.in/yaml.v3"
)

// ErrNotATable flags a YAML document whose top level is not a mapping of
// selector names to rules.
var ErrNotATable = errors.New("YAML document is not a style table")

// Load reads a style table from a YAML document. Partial tables from
// several documents may be combined with style.Table.Merge.
func Load(r io.Reader) (style.Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return style.Table{}, nil
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return style.Table{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotATable
	}
	table := make(style.Table, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		rule, err := decodeRule(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", name, err)
		}
		table[name] = rule
	}
	return table, nil
}

// LoadString is a convenience wrapper around Load.
func LoadString(doc string) (style.Table, error) {
	return Load(strings.NewReader(doc))
}

func decodeRule(n *yaml.Node) (*style.Rule, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule must be a mapping (line %d)", n.Line)
	}
	rule := style.NewRule()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := n.Content[i+1]
		switch {
		case val.Kind == yaml.MappingNode:
			nested, err := decodeRule(val)
			if err != nil {
				return nil, fmt.Errorf("condition %q: %w", key, err)
			}
			rule.When(key, nested)
		case key == "className":
			rule.Class = val.Value
		case val.Kind == yaml.ScalarNode:
			rule.Set(key, style.Property(val.Value))
		default:
			return nil, fmt.Errorf("property %q must be a scalar (line %d)", key, val.Line)
		}
	}
	return rule, nil
}
