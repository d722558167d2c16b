package motion

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Element animates the style of one rendered element toward the target its
// props and pointer state select. It owns its style state, gesture flags,
// origin cache and running animations; nothing is shared between elements.
//
// An Element is driven from a single goroutine. It never blocks: passes
// dispatch every key to the Driver and return, and frames arrive later
// through the driver's clock.
type Element struct {
	name    string
	props   Props
	driver  Driver
	style   *StyleState
	gesture Gesture
	origin  originCache
	tasks   map[string]CancelFunc
	log     *slog.Logger // nil follows the package logger

	disposed bool
}

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithName labels the element in log output.
func WithName(name string) ElementOption {
	return func(e *Element) { e.name = name }
}

// WithLogger overrides the package logger for this element. Without it the
// element logs through whatever SetLogger installed most recently.
func WithLogger(l *slog.Logger) ElementOption {
	return func(e *Element) { e.log = l }
}

// NewElement validates props and prepares the initial style. Every variant
// name referenced by the props and the transition ease are checked up front;
// problems come back as a *ConfigError.
//
// The initial style is, in order: the named initial variant, the named
// animate variant, the literal initial, the first frame of a literal
// animate, or empty.
func NewElement(p Props, d Driver, opts ...ElementOption) (*Element, error) {
	if err := validateProps(p); err != nil {
		return nil, err
	}
	e := &Element{
		props:  p,
		driver: d,
		tasks:  make(map[string]CancelFunc),
	}
	for _, opt := range opts {
		opt(e)
	}

	initial, err := initialStyle(p)
	if err != nil {
		return nil, err
	}
	e.style = NewStyleState(initial.Props()...)
	return e, nil
}

func validateProps(p Props) error {
	for _, t := range []struct {
		field  string
		target Target
	}{
		{"initial", p.Initial},
		{"animate", p.Animate},
		{"whileHover", p.WhileHover},
		{"whileTap", p.WhileTap},
	} {
		if name, ok := t.target.Name(); ok {
			if _, err := p.Variants.lookup(t.field, name); err != nil {
				return err
			}
		}
	}
	_, err := p.Transition.DriverConfig()
	return err
}

func initialStyle(p Props) (Variant, error) {
	if name, ok := p.Initial.Name(); ok {
		return p.Variants.lookup("initial", name)
	}
	if name, ok := p.Animate.Name(); ok {
		return p.Variants.lookup("animate", name)
	}
	if p.Initial.IsLiteral() {
		return p.Initial.firstFrame(), nil
	}
	if p.Animate.IsLiteral() {
		return p.Animate.firstFrame(), nil
	}
	return Variant{}, nil
}

// Name returns the label given with WithName.
func (e *Element) Name() string { return e.name }

// Props returns the current props.
func (e *Element) Props() Props { return e.props }

// Style returns the live style state. Bind to it to follow every frame.
func (e *Element) Style() *StyleState { return e.style }

// Render returns the concrete declarations for the current style state.
func (e *Element) Render() Style { return Render(e.style) }

// Gesture returns a copy of the pointer flags.
func (e *Element) Gesture() Gesture { return e.gesture }

func (e *Element) logger() *slog.Logger {
	l := e.log
	if l == nil {
		l = Logger()
	}
	if e.name != "" {
		l = l.With("element", e.name)
	}
	return l
}

// --- lifecycle hooks ---

// Mount attaches the element to its rendered host and runs a pass. A
// different host than before drops the cached origin so it is read again
// from the new host on demand.
func (e *Element) Mount(h Host) error {
	e.origin.attach(h)
	return e.Evaluate()
}

// SetAnimate replaces the animate target. A target equal by value to the
// current one is ignored, so re-declaring the same literal does not restart
// anything.
func (e *Element) SetAnimate(t Target) error {
	if cmp.Equal(t.snapshot(), e.props.Animate.snapshot()) {
		return nil
	}
	e.logger().Debug("animate updated", "from", targetString(e.props.Animate), "to", targetString(t))
	if name, ok := t.Name(); ok {
		if _, err := e.props.Variants.lookup("animate", name); err != nil {
			return err
		}
	}
	e.props.Animate = t
	return e.Evaluate()
}

// SetProps replaces every prop and runs a pass.
func (e *Element) SetProps(p Props) error {
	if err := validateProps(p); err != nil {
		return err
	}
	e.props = p
	return e.Evaluate()
}

// Dispose cancels every running animation and drops style bindings. The
// element must not be used afterwards.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.cancelAll()
	e.style.unbindAll()
}

// IsDisposed reports whether Dispose was called.
func (e *Element) IsDisposed() bool { return e.disposed }

// --- pointer handlers ---

// PointerEnter marks the element hovered if it declares whileHover.
func (e *Element) PointerEnter() error {
	if e.gesture.enter(!e.props.WhileHover.IsZero()) {
		return e.Evaluate()
	}
	return nil
}

// PointerLeave clears hover.
func (e *Element) PointerLeave() error {
	if e.gesture.leave() {
		return e.Evaluate()
	}
	return nil
}

// PointerDown marks the element hovered and pressed if it declares
// whileTap.
func (e *Element) PointerDown() error {
	if e.gesture.down(!e.props.WhileTap.IsZero()) {
		return e.Evaluate()
	}
	return nil
}

// PointerUp clears press.
func (e *Element) PointerUp() error {
	if e.gesture.up() {
		return e.Evaluate()
	}
	return nil
}

// PointerOut clears press when the pointer leaves while still down.
func (e *Element) PointerOut() error {
	return e.PointerUp()
}

// --- origin cache ---

// originCache holds the style read back from the host, computed at most
// once per host.
type originCache struct {
	host   Host
	loaded bool
	values Variant
	err    error
}

func (c *originCache) attach(h Host) {
	if c.host == h {
		return
	}
	*c = originCache{host: h}
}

// get extracts on first use. Without a host there is no origin.
func (c *originCache) get(key string) (Value, error) {
	if c.host == nil {
		return Undefined, nil
	}
	if !c.loaded {
		c.values, c.err = Extract(c.host.ComputedStyle())
		c.loaded = true
	}
	if c.err != nil {
		return Undefined, c.err
	}
	v, _ := c.values.Get(key)
	return v, nil
}

func targetString(t Target) string {
	if name, ok := t.Name(); ok {
		return name
	}
	if t.IsZero() {
		return "<none>"
	}
	var sb strings.Builder
	for i, f := range t.Fields() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		if !f.End.IsSequence() {
			sb.WriteString(f.End.First().String())
			continue
		}
		sb.WriteByte('[')
		for j, v := range f.End.frames {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(v.String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// errDisposed is returned by passes on a disposed element.
var errDisposed = errors.New("motion: element disposed")
