package motion

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a scalar into a number or a string. Null decodes to
// Undefined.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: want a number or a string", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Undefined
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Num(f)
	default:
		*v = Str(node.Value)
	}
	return nil
}

// MarshalYAML encodes numbers as numbers and strings as strings.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case kindNumber:
		return v.num, nil
	case kindString:
		return v.str, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML decodes a scalar or a sequence of keyframes.
func (e *Endpoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v Value
		if err := v.UnmarshalYAML(node); err != nil {
			return err
		}
		*e = Scalar(v)
	case yaml.SequenceNode:
		frames := make([]Value, len(node.Content))
		for i, item := range node.Content {
			if err := frames[i].UnmarshalYAML(item); err != nil {
				return err
			}
		}
		*e = Endpoint{frames: frames, seq: true}
	default:
		return fmt.Errorf("line %d: want a value or a list of keyframes", node.Line)
	}
	return nil
}

// UnmarshalYAML decodes a mapping of single values, keeping key order.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variant must be a mapping", node.Line)
	}
	props := make([]Prop, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var val Value
		if err := val.UnmarshalYAML(node.Content[i+1]); err != nil {
			return fmt.Errorf("variant key %q: %w", node.Content[i].Value, err)
		}
		props = append(props, Prop{Key: node.Content[i].Value, Value: val})
	}
	*v = NewVariant(props...)
	return nil
}

// UnmarshalYAML decodes a variant name or an inline mapping, keeping key
// order.
func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*t = Target{}
			return nil
		}
		*t = Named(node.Value)
	case yaml.MappingNode:
		fields := make([]Field, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var end Endpoint
			if err := end.UnmarshalYAML(node.Content[i+1]); err != nil {
				return fmt.Errorf("target key %q: %w", node.Content[i].Value, err)
			}
			fields = append(fields, Field{Key: node.Content[i].Value, End: end})
		}
		*t = Literal(fields...)
	default:
		return fmt.Errorf("line %d: target must be a variant name or a mapping", node.Line)
	}
	return nil
}

// BoxSpec declares one animated box of a scene document.
type BoxSpec struct {
	Name       string     `yaml:"name"`
	Bounds     Rect       `yaml:"bounds"`
	Fill       string     `yaml:"fill,omitempty"`
	Initial    Target     `yaml:"initial,omitempty"`
	Animate    Target     `yaml:"animate,omitempty"`
	WhileHover Target     `yaml:"whileHover,omitempty"`
	WhileTap   Target     `yaml:"whileTap,omitempty"`
	Transition Transition `yaml:"transition,omitempty"`
	Variants   Variants   `yaml:"variants,omitempty"`
}

// Props returns the element props declared by b.
func (b BoxSpec) Props() Props {
	return Props{
		Initial:    b.Initial,
		Animate:    b.Animate,
		WhileHover: b.WhileHover,
		WhileTap:   b.WhileTap,
		Transition: b.Transition,
		Variants:   b.Variants,
	}
}

// SceneSpec is a scene document: a window size, the boxes to animate and an
// optional script of pointer and prop changes.
type SceneSpec struct {
	Title      string    `yaml:"title,omitempty"`
	Width      int       `yaml:"width,omitempty"`
	Height     int       `yaml:"height,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Boxes      []BoxSpec `yaml:"boxes"`
	Script     []Step    `yaml:"script,omitempty"`
}

const (
	defaultSceneWidth  = 640
	defaultSceneHeight = 480
)

// LoadScene parses a YAML scene document.
func LoadScene(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if len(spec.Boxes) == 0 {
		return nil, fmt.Errorf("parse scene: no boxes")
	}
	seen := make(map[string]bool, len(spec.Boxes))
	for i, b := range spec.Boxes {
		if b.Name == "" {
			return nil, fmt.Errorf("parse scene: box %d has no name", i)
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("parse scene: duplicate box %q", b.Name)
		}
		seen[b.Name] = true
	}
	if spec.Width <= 0 {
		spec.Width = defaultSceneWidth
	}
	if spec.Height <= 0 {
		spec.Height = defaultSceneHeight
	}
	return &spec, nil
}
