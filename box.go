package motion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Box is a rectangle whose rendered style is driven by an Element. It is the
// Host the element is mounted on: its computed style is the matrix of the
// transform it currently renders with and its current fill.
type Box struct {
	Name    string
	Bounds  Rect
	Fill    string // used when the style has no backgroundColor
	Element *Element

	hovered bool
	pressed bool
}

// NewBox creates a box for spec whose element runs on d. The element is not
// mounted yet.
func NewBox(spec BoxSpec, d Driver) (*Box, error) {
	el, err := NewElement(spec.Props(), d, WithName(spec.Name))
	if err != nil {
		return nil, fmt.Errorf("box %q: %w", spec.Name, err)
	}
	fill := spec.Fill
	if fill == "" {
		fill = "#ffffff"
	}
	return &Box{Name: spec.Name, Bounds: spec.Bounds, Fill: fill, Element: el}, nil
}

// ComputedStyle implements Host.
func (b *Box) ComputedStyle() ComputedStyle {
	cs := ComputedStyle{Transform: "none", BackgroundColor: b.Color()}
	if m, ok := b.transform(); ok {
		cs.Transform = m.String()
	}
	return cs
}

// Color returns the box's current backgroundColor, or its fill.
func (b *Box) Color() string {
	if v, ok := b.Element.Style().Get("backgroundColor"); ok && v.IsDefined() {
		return v.String()
	}
	return b.Fill
}

// Opacity returns the style's opacity clamped to [0, 1]; 1 when unset or not
// numeric.
func (b *Box) Opacity() float64 {
	v := b.Element.Style().Value("opacity")
	if f, ok := v.Float(); ok {
		return clamp01(f)
	}
	if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
		return clamp01(f)
	}
	return 1
}

// Matrix returns the box's world transform: its rendered transform applied
// about the center of its bounds, then moved to the bounds' position. The
// matrix maps box-local coordinates, (0,0) to (Width,Height), to world
// coordinates.
func (b *Box) Matrix() Matrix {
	w, h := b.Bounds.Width, b.Bounds.Height
	m, _ := b.transform()
	return Translate(b.Bounds.X+w/2, b.Bounds.Y+h/2).
		Multiply(m).
		Multiply(Translate(-w/2, -h/2))
}

// Contains reports whether the world point (x, y) lies on the box as it is
// currently rendered.
func (b *Box) Contains(x, y float64) bool {
	lx, ly := b.Matrix().Invert().Apply(x, y)
	return lx >= 0 && lx <= b.Bounds.Width && ly >= 0 && ly <= b.Bounds.Height
}

// transform composes the rendered transform declaration. ok is false when
// the style renders no transform.
func (b *Box) transform() (Matrix, bool) {
	decl, ok := b.Element.Render().Get("transform")
	if !ok {
		return Identity, false
	}
	m, err := parseTransform(decl, b.Bounds.Width)
	if err != nil {
		Logger().Warn("unrenderable transform", "box", b.Name, "err", err)
		return Identity, false
	}
	return m, true
}

// parseTransform composes CSS transform functions left to right, the way a
// browser applies them. Percentages in translateX are relative to width.
func parseTransform(decl string, width float64) (Matrix, error) {
	m := Identity
	for _, fn := range strings.Fields(decl) {
		sub := transformFuncRe.FindStringSubmatch(fn)
		if sub == nil {
			return Identity, fmt.Errorf("unsupported transform function %q", fn)
		}
		n, unit, ok := splitUnit(Str(sub[2]))
		if !ok {
			return Identity, fmt.Errorf("bad argument in %q", fn)
		}
		var step Matrix
		switch sub[1] {
		case "rotate":
			if unit == "rad" {
				n = n * 180 / math.Pi
			}
			step = Rotate(n)
		case "scale":
			step = Scale(n, n)
		case "scaleX":
			step = Scale(n, 1)
		case "scaleY":
			step = Scale(1, n)
		case "translateX":
			if unit == "%" {
				n = n / 100 * width
			}
			step = Translate(n, 0)
		}
		m = m.Multiply(step)
	}
	return m, nil
}
