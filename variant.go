package motion

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Prop is one key/value pair of a Variant.
type Prop struct {
	Key   string
	Value Value
}

// Variant is a named, reusable target: an insertion-ordered mapping from
// property name to a single value. The zero Variant is empty and usable.
type Variant struct {
	props *orderedmap.OrderedMap[string, Value]
}

// NewVariant builds a Variant from pairs, in order. A repeated key keeps its
// first position and its last value.
func NewVariant(props ...Prop) Variant {
	m := orderedmap.New[string, Value](len(props))
	for _, p := range props {
		m.Set(p.Key, p.Value)
	}
	return Variant{props: m}
}

// Get returns the value for key. ok is false if the key is absent.
func (v Variant) Get(key string) (val Value, ok bool) {
	if v.props == nil {
		return Undefined, false
	}
	return v.props.Get(key)
}

// Keys returns the keys in insertion order.
func (v Variant) Keys() []string {
	if v.props == nil {
		return nil
	}
	keys := make([]string, 0, v.props.Len())
	for pair := v.props.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Props returns the pairs in insertion order.
func (v Variant) Props() []Prop {
	if v.props == nil {
		return nil
	}
	out := make([]Prop, 0, v.props.Len())
	for pair := v.props.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Prop{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Len returns the number of keys.
func (v Variant) Len() int {
	if v.props == nil {
		return 0
	}
	return v.props.Len()
}

// Variants is the table of named variants supplied with an element's props.
// It is treated as read-only once handed to an Element.
type Variants map[string]Variant

// lookup resolves a variant name, reporting a ConfigError for names missing
// from the table.
func (vs Variants) lookup(field, name string) (Variant, error) {
	v, ok := vs[name]
	if !ok {
		return Variant{}, &ConfigError{Field: field, Value: name, Err: ErrUnknownVariant}
	}
	return v, nil
}
