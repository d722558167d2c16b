package motion

import (
	"errors"
	"fmt"
)

// Player runs a set of boxes on one Ticker without any window. Each call to
// Step is one frame: queued synthetic pointer input is dispatched, the
// attached script advances, then every animation moves forward by dt.
//
// Stage wraps a Player to show the same boxes in an ebiten window.
type Player struct {
	ticker *Ticker
	boxes  []*Box
	byName map[string]*Box

	pointerDown bool
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
	frame       int

	// OnSnapshot, when set, is called by the script's snapshot steps.
	OnSnapshot func(label string, frame int)
	// OnClick, when set, is called when the button is released over the box
	// it was pressed on.
	OnClick func(b *Box)
}

// NewPlayer creates an empty player with its own Ticker.
func NewPlayer() *Player {
	return &Player{
		ticker: NewTicker(),
		byName: make(map[string]*Box),
	}
}

// NewPlayerFromScene builds a player holding every box of spec, mounted and
// in document order, with the document's script attached.
func NewPlayerFromScene(spec *SceneSpec) (*Player, error) {
	p := NewPlayer()
	for _, bs := range spec.Boxes {
		if _, err := p.AddBox(bs); err != nil {
			p.Dispose()
			return nil, err
		}
	}
	if len(spec.Script) > 0 {
		p.SetScript(NewScriptRunner(spec.Script))
	}
	return p, nil
}

// Ticker returns the player's driver.
func (p *Player) Ticker() *Ticker { return p.ticker }

// Frame returns the number of frames stepped so far.
func (p *Player) Frame() int { return p.frame }

// Boxes returns the boxes in paint order.
func (p *Player) Boxes() []*Box { return p.boxes }

// Box returns the box called name, or nil.
func (p *Player) Box(name string) *Box { return p.byName[name] }

// AddBox creates a box for spec, mounts its element on it and adds it on
// top of the others.
func (p *Player) AddBox(spec BoxSpec) (*Box, error) {
	if _, dup := p.byName[spec.Name]; dup {
		return nil, fmt.Errorf("box %q already exists", spec.Name)
	}
	b, err := NewBox(spec, p.ticker)
	if err != nil {
		return nil, err
	}
	p.boxes = append(p.boxes, b)
	p.byName[b.Name] = b
	if err := b.Element.Mount(b); err != nil {
		return b, fmt.Errorf("mount box %q: %w", b.Name, err)
	}
	return b, nil
}

// SetScript attaches a script runner. Pass nil to detach.
func (p *Player) SetScript(r *ScriptRunner) { p.script = r }

// Script returns the attached script runner.
func (p *Player) Script() *ScriptRunner { return p.script }

// Step advances one frame of dt seconds. Errors raised by element passes
// are joined and returned; the frame still completes.
func (p *Player) Step(dt float32) error {
	var errs []error
	if p.script != nil {
		if err := p.script.step(p); err != nil {
			errs = append(errs, err)
		}
	}
	if err := p.processInjectedInput(); err != nil {
		errs = append(errs, err)
	}
	p.ticker.Update(dt)
	p.frame++
	return errors.Join(errs...)
}

// Pointer dispatches the pointer state for this frame to every box: enter
// and leave as the pointer crosses a box's rendered shape, down and up as
// the button changes over it, and out when the pointer leaves a box while
// still pressed on it.
func (p *Player) Pointer(x, y float64, down bool) error {
	var errs []error
	pressEdge := down && !p.pointerDown
	releaseEdge := !down && p.pointerDown
	p.pointerDown = down

	for _, b := range p.boxes {
		hit := b.Contains(x, y)
		switch {
		case hit && !b.hovered:
			b.hovered = true
			errs = append(errs, b.Element.PointerEnter())
		case !hit && b.hovered:
			b.hovered = false
			errs = append(errs, b.Element.PointerLeave())
			if b.pressed {
				b.pressed = false
				errs = append(errs, b.Element.PointerOut())
			}
		}
		switch {
		case pressEdge && hit:
			b.pressed = true
			errs = append(errs, b.Element.PointerDown())
		case releaseEdge && b.pressed:
			b.pressed = false
			errs = append(errs, b.Element.PointerUp())
			if hit && p.OnClick != nil {
				p.OnClick(b)
			}
		}
	}
	return errors.Join(errs...)
}

// Dispose stops every animation of every box.
func (p *Player) Dispose() {
	for _, b := range p.boxes {
		b.Element.Dispose()
	}
}
