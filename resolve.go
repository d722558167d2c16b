package motion

// Props are the declarative inputs of an Element.
type Props struct {
	Initial    Target
	Animate    Target
	WhileHover Target
	WhileTap   Target
	Transition Transition
	Variants   Variants
}

// defaults covers the transform keys whose resting value is known.
var defaults = NewVariant(
	Prop{"scale", Num(1)},
	Prop{"x", Num(0)},
	Prop{"y", Num(0)},
	Prop{"rotate", Num(0)},
)

// Resolution is the outcome of target resolution for one pass.
type Resolution struct {
	// Skip is set when there is no target and no pending gesture edge; the
	// pass must not touch the driver.
	Skip bool
	// Target is the winning target. It is zero when a gesture edge forced a
	// pass without any target.
	Target Target
	// Field names the prop the target came from: "whileTap", "whileHover"
	// or "animate".
	Field string
	// Keys are the property keys this pass evaluates.
	Keys []string
}

// Resolve picks the active target: whileTap while pressed, else whileHover
// while hovering, else animate. The gesture's one-shot updated flags are
// consumed. With no target and no gesture edge the result is a Skip. With no
// target but a gesture edge, the key set falls back to the current style
// keys so every animated key reconciles.
func Resolve(p Props, g *Gesture, style *StyleState) (Resolution, error) {
	var r Resolution
	switch {
	case g.press && !p.WhileTap.IsZero():
		r.Target, r.Field = p.WhileTap, "whileTap"
	case g.hover && !p.WhileHover.IsZero():
		r.Target, r.Field = p.WhileHover, "whileHover"
	default:
		r.Target, r.Field = p.Animate, "animate"
	}

	updated := g.consume()
	if r.Target.IsZero() {
		if !updated {
			return Resolution{Skip: true}, nil
		}
		r.Field = ""
		r.Keys = style.Keys()
		return r, nil
	}

	keys, err := r.Target.keys(p.Variants, r.Field)
	if err != nil {
		return Resolution{}, err
	}
	r.Keys = keys
	return r, nil
}
