package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Props is an ordered set of node properties. Iteration order is the order
// in which keys have been set first, which makes style resolution
// reproducible across passes (maps would randomize condition- and
// listener-injection order).
type Props struct {
	keys []string
	dict map[string]interface{}
}

// NewProps creates an empty property set.
func NewProps() *Props {
	return &Props{}
}

// Set sets a property value, retaining the key's original position if it
// has been set before. It returns the property set to allow for chaining.
func (p *Props) Set(key string, value interface{}) *Props {
	if p.dict == nil {
		p.dict = make(map[string]interface{})
	}
	if _, ok := p.dict[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.dict[key] = value
	return p
}

// Get returns a property value, together with an indicator wether the key
// is present.
func (p *Props) Get(key string) (interface{}, bool) {
	if p == nil || p.dict == nil {
		return nil, false
	}
	v, ok := p.dict[key]
	return v, ok
}

// Delete removes a property. Unknown keys are ignored.
func (p *Props) Delete(key string) {
	if p == nil || p.dict == nil {
		return
	}
	if _, ok := p.dict[key]; !ok {
		return
	}
	delete(p.dict, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property keys in insertion order. The returned slice is
// a copy.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Each calls fn for every property, in insertion order.
func (p *Props) Each(fn func(key string, value interface{})) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		fn(k, p.dict[k])
	}
}

// Clone returns a shallow copy of the property set. Cloning a nil Props
// yields a new empty set.
func (p *Props) Clone() *Props {
	clone := NewProps()
	if p == nil {
		return clone
	}
	for _, k := range p.keys {
		clone.Set(k, p.dict[k])
	}
	return clone
}

// String returns a property value as a string, if it is one; the empty
// string otherwise.
func (p *Props) String(key string) string {
	v, ok := p.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
