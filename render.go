package motion

import (
	"fmt"
	"regexp"
	"strings"
)

// Declaration is one concrete style property.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of declarations produced by Render.
type Style []Declaration

// Get returns the value of prop.
func (s Style) Get(prop string) (string, bool) {
	for _, d := range s {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// String formats s as inline CSS: "prop: value; prop: value".
func (s Style) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

// Render converts a style state into concrete declarations. Direct
// properties are copied in key order; rotate, scale, scaleX, scaleY and x
// become transform functions joined, in key order, into one trailing
// transform declaration. Undefined values are skipped.
func Render(s *StyleState) Style {
	var (
		style      Style
		transforms []string
	)
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		if !value.IsDefined() {
			continue
		}
		switch key {
		case "rotate":
			transforms = append(transforms, "rotate("+value.String()+"deg)")
		case "scale", "scaleX", "scaleY":
			transforms = append(transforms, key+"("+value.String()+")")
		case "x":
			transforms = append(transforms, "translateX("+value.String()+")")
		default:
			style = append(style, Declaration{Property: key, Value: value.String()})
		}
	}
	if len(transforms) > 0 {
		style = append(style, Declaration{Property: "transform", Value: strings.Join(transforms, " ")})
	}
	return style
}

var transformFuncRe = regexp.MustCompile(`^(rotate|scaleX|scaleY|scale|translateX)\((.*)\)$`)

// ParseStyle reconstructs a style state from declarations produced by
// Render. Transform functions map back to their logical keys; every other
// declaration is kept as a direct property. Rendering the result yields the
// same declarations.
func ParseStyle(style Style) (*StyleState, error) {
	s := NewStyleState()
	var transform string
	for _, d := range style {
		if d.Property == "transform" {
			transform = d.Value
			continue
		}
		s.values.Set(d.Property, parseValue(d.Value))
	}
	if transform == "" {
		return s, nil
	}
	for _, fn := range strings.Fields(transform) {
		m := transformFuncRe.FindStringSubmatch(fn)
		if m == nil {
			return nil, fmt.Errorf("parse style: unsupported transform function %q", fn)
		}
		name, arg := m[1], m[2]
		switch name {
		case "rotate":
			arg = strings.TrimSuffix(arg, "deg")
		case "translateX":
			name = "x"
		}
		s.values.Set(name, parseValue(arg))
	}
	return s, nil
}
