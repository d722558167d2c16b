package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StyleEvent reports that one key of an element's style state changed.
type StyleEvent struct {
	Element string // the element's name, see motion.WithName
	Key     string
	Value   motion.Value
}

// StyleEventType is the Donburi event type for style changes.
var StyleEventType = events.NewEventType[StyleEvent]()

// DonburiSink publishes style changes of attached elements to a world.
type DonburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a sink that publishes to StyleEventType in world.
// Events are queued; consume them with ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world}
}

// Attach binds to el's style state. The current style is published once,
// then each later notification publishes only the keys whose value changed.
func (s *DonburiSink) Attach(el *motion.Element) motion.Unbind {
	last := make(map[string]motion.Value)
	publish := func(st *motion.StyleState) {
		for _, p := range st.Props() {
			if old, ok := last[p.Key]; ok && old == p.Value {
				continue
			}
			last[p.Key] = p.Value
			StyleEventType.Publish(s.world, StyleEvent{
				Element: el.Name(),
				Key:     p.Key,
				Value:   p.Value,
			})
		}
	}
	publish(el.Style())
	return el.Style().Bind(publish)
}
