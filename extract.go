package motion

import (
	"regexp"
	"strconv"
)

// ComputedStyle is the subset of an element's rendered style that the
// engine reads back: its resolved transform, in CSS matrix() text or "none",
// and its resolved background color.
type ComputedStyle struct {
	Transform       string
	BackgroundColor string
}

// Host is the rendered element an Element is mounted on.
type Host interface {
	ComputedStyle() ComputedStyle
}

var matrixRe = regexp.MustCompile(
	`^matrix\(([+\-\d.]+), ([+\-\d.]+), ([+\-\d.]+), ([+\-\d.]+), ([+\-\d.]+), ([+\-\d.]+)\)$`)

// Extract converts a computed style into style-state values. A "none"
// transform contributes nothing; any other transform must be the 2D
// matrix(a, b, c, d, e, f) form or a *ParseError is returned. The decomposed
// matrix is stored under translateX, translateY, scaleX, scaleY, skewX, skewY
// and rotation. backgroundColor is always present.
func Extract(cs ComputedStyle) (Variant, error) {
	var props []Prop
	if cs.Transform != "none" {
		m, err := parseMatrix(cs.Transform)
		if err != nil {
			return Variant{}, err
		}
		d := Decompose(m)
		props = append(props,
			Prop{"translateX", Num(d.TranslateX)},
			Prop{"translateY", Num(d.TranslateY)},
			Prop{"scaleX", Num(d.ScaleX)},
			Prop{"scaleY", Num(d.ScaleY)},
			Prop{"skewX", Num(d.SkewX)},
			Prop{"skewY", Num(d.SkewY)},
			Prop{"rotation", Num(d.Rotation)},
		)
	}
	props = append(props, Prop{"backgroundColor", Str(cs.BackgroundColor)})
	return NewVariant(props...), nil
}

func parseMatrix(s string) (Matrix, error) {
	sub := matrixRe.FindStringSubmatch(s)
	if sub == nil {
		return Matrix{}, &ParseError{Input: s}
	}
	var m Matrix
	for i := range m {
		f, err := strconv.ParseFloat(sub[i+1], 64)
		if err != nil {
			return Matrix{}, &ParseError{Input: s}
		}
		m[i] = f
	}
	return m, nil
}
