package motion

// Gesture tracks pointer state for one element. Hover and press are
// independent: a press usually happens while hovering. The two updated flags
// are one-shot: they record that a flag changed so the next evaluation pass
// reconciles even when the resolved target is the same, and that pass
// clears them.
type Gesture struct {
	hover        bool
	press        bool
	hoverUpdated bool
	tapUpdated   bool
}

// Hover reports whether the pointer is over the element.
func (g Gesture) Hover() bool { return g.hover }

// Press reports whether the pointer is pressed on the element.
func (g Gesture) Press() bool { return g.press }

// Updated reports whether a gesture edge is still waiting to be reconciled.
func (g Gesture) Updated() bool { return g.hoverUpdated || g.tapUpdated }

// Each edge below returns true when hover or press actually flipped, which
// is when the owning element runs a new evaluation pass. An edge that flips
// nothing leaves the updated flags alone.

func (g *Gesture) enter(hasHover bool) bool {
	if !hasHover {
		return false
	}
	if g.hover {
		return false
	}
	g.hover = true
	g.hoverUpdated = true
	return true
}

func (g *Gesture) leave() bool {
	if !g.hover {
		return false
	}
	g.hover = false
	g.hoverUpdated = true
	return true
}

func (g *Gesture) down(hasTap bool) bool {
	if !hasTap {
		return false
	}
	if g.hover && g.press {
		return false
	}
	g.hover = true
	g.press = true
	g.tapUpdated = true
	return true
}

// up handles both pointer up and pointer out.
func (g *Gesture) up() bool {
	if !g.press {
		return false
	}
	g.press = false
	g.tapUpdated = true
	return true
}

// consume clears the one-shot flags and reports whether either was set.
func (g *Gesture) consume() bool {
	updated := g.hoverUpdated || g.tapUpdated
	g.hoverUpdated = false
	g.tapUpdated = false
	return updated
}
