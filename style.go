package motion

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// StyleState is the live style of one element: an insertion-ordered mapping
// from property name to Value. Keys are direct style properties (such as
// backgroundColor) or logical transform properties (x, rotate, scale,
// scaleX, scaleY). Insertion order is kept because it decides the order in
// which transform functions compose.
//
// StyleState notifies bindings after every change. Like the rest of motion it
// is single-threaded: Set and Bind must be called from the goroutine that
// drives the element.
//
//	unbind := el.Style().Bind(func(s *motion.StyleState) {
//	    apply(motion.Render(s))
//	})
//	defer unbind()
type StyleState struct {
	values   *orderedmap.OrderedMap[string, Value]
	bindings []*styleBinding
	nextID   uint64

	batchDepth int
	pending    bool
}

type styleBinding struct {
	id     uint64
	fn     func(*StyleState)
	active bool
}

// Unbind removes a binding registered with Bind.
type Unbind func()

// NewStyleState creates a style state holding props in order.
func NewStyleState(props ...Prop) *StyleState {
	s := &StyleState{values: orderedmap.New[string, Value](len(props))}
	for _, p := range props {
		s.values.Set(p.Key, p.Value)
	}
	return s
}

// Get returns the value for key. ok is false if the key was never set.
func (s *StyleState) Get(key string) (Value, bool) {
	return s.values.Get(key)
}

// Value returns the value for key, or Undefined.
func (s *StyleState) Value(key string) Value {
	v, _ := s.values.Get(key)
	return v
}

// Set stores v under key and notifies bindings. A new key is appended; an
// existing key keeps its position. Setting an identical value is a no-op.
func (s *StyleState) Set(key string, v Value) {
	if old, ok := s.values.Get(key); ok && old == v {
		return
	}
	s.values.Set(key, v)
	s.notify()
}

// Delete removes key and notifies bindings if it was present.
func (s *StyleState) Delete(key string) {
	if _, ok := s.values.Delete(key); ok {
		s.notify()
	}
}

// Keys returns the keys in insertion order.
func (s *StyleState) Keys() []string {
	keys := make([]string, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Props returns a snapshot of every pair in insertion order.
func (s *StyleState) Props() []Prop {
	out := make([]Prop, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Prop{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Len returns the number of keys.
func (s *StyleState) Len() int { return s.values.Len() }

// Bind registers fn to run after every change. Bindings run in registration
// order and receive the state itself.
func (s *StyleState) Bind(fn func(*StyleState)) Unbind {
	s.nextID++
	b := &styleBinding{id: s.nextID, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	return func() {
		b.active = false
	}
}

// Batch runs fn and coalesces every change made inside it into a single
// notification when the outermost batch returns.
func (s *StyleState) Batch(fn func()) {
	s.batchDepth++
	defer func() {
		s.batchDepth--
		if s.batchDepth == 0 && s.pending {
			s.pending = false
			s.notify()
		}
	}()
	fn()
}

// unbindAll drops every binding.
func (s *StyleState) unbindAll() {
	for _, b := range s.bindings {
		b.active = false
	}
	s.bindings = nil
}

func (s *StyleState) notify() {
	if s.batchDepth > 0 {
		s.pending = true
		return
	}
	// Compact inactive bindings and run the rest from a copy so a binding
	// may Bind or Unbind without disturbing this round.
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	for i := len(active); i < len(s.bindings); i++ {
		s.bindings[i] = nil
	}
	s.bindings = active
	run := make([]*styleBinding, len(active))
	copy(run, active)
	for _, b := range run {
		if b.active {
			b.fn(s)
		}
	}
}
