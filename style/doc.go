/*
Package style provides style properties, rules and rule tables for the
look-resolution engine.

# Overview

A style Table maps selector names to style Rules. Element nodes reference
table entries through their 'look' property. A Rule consists of a base
property set, an optional CSS class-name contribution, and an ordered list
of conditions, each guarding a nested Rule. Conditions nest recursively,
which allows chained pseudo-classes (hover-then-nth-child and the like).

Property values are opaque strings as far as this package is concerned;
validation of property names or values is intentionally out of scope.
Typed accessors (dimensions, colors) are provided for hosts which want to
interpret resolved values without re-parsing.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'look.style'.
func tracer() tracing.Trace {
	return tracing.Select("look.style")
}
