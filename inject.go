package motion

// syntheticPointerEvent is a queued pointer state for one frame, in world
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectMove queues a pointer move to (x, y) with the button up. The event
// is consumed on the next Step.
func (p *Player) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a pointer press at (x, y).
func (p *Player) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (p *Player) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *Player) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// Injecting reports whether synthetic events are still queued.
func (p *Player) Injecting() bool {
	return len(p.injectQueue) > 0
}

// processInjectedInput pops one event and dispatches it. Real input should
// be skipped on frames where this consumed an event.
func (p *Player) processInjectedInput() error {
	if len(p.injectQueue) == 0 {
		return nil
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return p.Pointer(evt.x, evt.y, evt.pressed)
}
