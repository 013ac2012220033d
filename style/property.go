package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Property is a raw value for a style property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping the raw
// string value into type Property is to provide a set of convenient type
// conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the style properties for one node. nil is a legal
// (empty) property map. Keys iterate in insertion order, so that merged
// output is reproducible across resolution passes.
type PropertyMap struct {
	keys []string
	dict map[string]Property
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	pmap.Each(func(k string, v Property) {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	})
	s += "}"
	return s
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.keys)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the property map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil || pmap.dict == nil {
		return NullStyle, false
	}
	p, ok := pmap.dict[key]
	return p, ok
}

// Set sets a property's value. Overwrites an existing value, if present,
// retaining the key's original position.
func (pmap *PropertyMap) Set(key string, p Property) {
	if pmap == nil {
		return
	}
	if pmap.dict == nil {
		pmap.dict = make(map[string]Property)
	}
	if _, ok := pmap.dict[key]; !ok {
		pmap.keys = append(pmap.keys, key)
	}
	pmap.dict[key] = p
}

// Add sets a property's value, but does not overwrite an existing value,
// i.e., does nothing if a value is already set.
func (pmap *PropertyMap) Add(key string, p Property) {
	if pmap == nil {
		return
	}
	if _, ok := pmap.Property(key); ok {
		return
	}
	pmap.Set(key, p)
}

// Delete removes a property from the map. Unknown keys are ignored.
func (pmap *PropertyMap) Delete(key string) {
	if pmap == nil || pmap.dict == nil {
		return
	}
	if _, ok := pmap.dict[key]; !ok {
		return
	}
	delete(pmap.dict, key)
	for i, k := range pmap.keys {
		if k == key {
			pmap.keys = append(pmap.keys[:i], pmap.keys[i+1:]...)
			break
		}
	}
}

// Each calls fn for every property, in insertion order.
func (pmap *PropertyMap) Each(fn func(key string, p Property)) {
	if pmap == nil {
		return
	}
	for _, k := range pmap.keys {
		fn(k, pmap.dict[k])
	}
}

// Properties returns all properties in insertion order.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.keys))
	pmap.Each(func(k string, v Property) {
		r = append(r, KeyValue{k, v})
	})
	return r
}

// Clone returns a copy of the property map. Cloning a nil map yields a new
// empty map.
func (pmap *PropertyMap) Clone() *PropertyMap {
	clone := NewPropertyMap()
	pmap.Each(func(k string, v Property) {
		clone.Set(k, v)
	})
	return clone
}

// MergeFrom transfers all style properties from another property map into
// this one. If overwrite is set, existing style property values will be
// overwritten, otherwise only new values are set. Merging from nil is a
// no-op. It returns the receiver (or a fresh map for a nil receiver) to
// allow for chaining.
func (pmap *PropertyMap) MergeFrom(other *PropertyMap, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	other.Each(func(k string, v Property) {
		if overwrite {
			pmap.Set(k, v)
		} else {
			pmap.Add(k, v)
		}
	})
	return pmap
}
