package motion

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type targetKind uint8

const (
	targetNone targetKind = iota
	targetNamed
	targetLiteral
)

// Field is one property of a literal Target.
type Field struct {
	Key string
	End Endpoint
}

// Target is what an element animates toward. It is either a variant name
// resolved through the Variants table, or a literal mapping from property to
// a scalar or keyframe sequence. The zero Target means "no target".
type Target struct {
	kind    targetKind
	name    string
	literal *orderedmap.OrderedMap[string, Endpoint]
}

// Named returns a Target that refers to a variant by name.
func Named(name string) Target {
	return Target{kind: targetNamed, name: name}
}

// Literal returns an inline Target. Field order is kept and decides the
// order in which new keys enter the style state.
func Literal(fields ...Field) Target {
	m := orderedmap.New[string, Endpoint](len(fields))
	for _, f := range fields {
		m.Set(f.Key, f.End)
	}
	return Target{kind: targetLiteral, literal: m}
}

// To is shorthand for a literal field holding a single value.
func To(key string, v Value) Field {
	return Field{Key: key, End: Scalar(v)}
}

// Keyframes is shorthand for a literal field holding a keyframe sequence.
func Keyframes(key string, vs ...Value) Field {
	return Field{Key: key, End: Sequence(vs...)}
}

// IsZero reports whether t is the empty "no target".
func (t Target) IsZero() bool { return t.kind == targetNone }

// Name returns the variant name and true for named targets.
func (t Target) Name() (string, bool) {
	return t.name, t.kind == targetNamed
}

// IsLiteral reports whether t is an inline mapping.
func (t Target) IsLiteral() bool { return t.kind == targetLiteral }

// Fields returns the fields of a literal target in order, nil otherwise.
func (t Target) Fields() []Field {
	if t.kind != targetLiteral || t.literal == nil {
		return nil
	}
	out := make([]Field, 0, t.literal.Len())
	for pair := t.literal.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Field{Key: pair.Key, End: pair.Value})
	}
	return out
}

// keys returns the key set of t, resolving names through vs.
func (t Target) keys(vs Variants, field string) ([]string, error) {
	switch t.kind {
	case targetNamed:
		v, err := vs.lookup(field, t.name)
		if err != nil {
			return nil, err
		}
		return v.Keys(), nil
	case targetLiteral:
		out := make([]string, 0, t.literal.Len())
		for pair := t.literal.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, pair.Key)
		}
		return out, nil
	default:
		return nil, nil
	}
}

// endpoint returns the value t holds for key, resolving names through vs.
// ok is false if t does not define key.
func (t Target) endpoint(vs Variants, field, key string) (Endpoint, bool, error) {
	switch t.kind {
	case targetNamed:
		v, err := vs.lookup(field, t.name)
		if err != nil {
			return Endpoint{}, false, err
		}
		val, ok := v.Get(key)
		if !ok {
			return Endpoint{}, false, nil
		}
		return Scalar(val), true, nil
	case targetLiteral:
		e, ok := t.literal.Get(key)
		return e, ok, nil
	default:
		return Endpoint{}, false, nil
	}
}

// firstFrame collapses a literal target to a Variant holding the first
// frame of every sequence.
func (t Target) firstFrame() Variant {
	fields := t.Fields()
	props := make([]Prop, 0, len(fields))
	for _, f := range fields {
		props = append(props, Prop{Key: f.Key, Value: f.End.First()})
	}
	return NewVariant(props...)
}

// targetSnapshot is the order-insensitive shape used for deep comparison.
type targetSnapshot struct {
	Kind   targetKind
	Name   string
	Fields map[string]endpointSnapshot
}

type endpointSnapshot struct {
	Frames []Value
	Seq    bool
}

func (t Target) snapshot() targetSnapshot {
	s := targetSnapshot{Kind: t.kind, Name: t.name}
	if t.kind == targetLiteral {
		s.Fields = make(map[string]endpointSnapshot, t.literal.Len())
		for pair := t.literal.Oldest(); pair != nil; pair = pair.Next() {
			s.Fields[pair.Key] = endpointSnapshot{Frames: pair.Value.frames, Seq: pair.Value.seq}
		}
	}
	return s
}
