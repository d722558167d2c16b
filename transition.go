package motion

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tanema/gween/ease"
)

// TransitionType selects the animation generator.
type TransitionType string

const (
	TypeAuto      TransitionType = ""          // picked from the endpoint and the parameters set
	TypeKeyframes TransitionType = "keyframes" // duration-based tween through one or more frames
	TypeTween     TransitionType = "tween"     // alias of keyframes
	TypeSpring    TransitionType = "spring"    // damped harmonic oscillator
	TypeDecay     TransitionType = "decay"     // exponential approach
)

// RepeatType selects how a repeated animation replays.
type RepeatType string

const (
	RepeatLoop    RepeatType = "loop"    // restart from the first frame
	RepeatReverse RepeatType = "reverse" // play backwards in time, easing reversed
	RepeatMirror  RepeatType = "mirror"  // swap endpoints, easing applied forward
)

// RepeatForever makes Transition.Repeat unbounded.
const RepeatForever = -1

// Transition configures how every key of an element animates. Durations are
// in seconds.
type Transition struct {
	Type        TransitionType `yaml:"type,omitempty"`
	Duration    float64        `yaml:"duration,omitempty"`
	Ease        string         `yaml:"ease,omitempty"`
	Times       []float64      `yaml:"times,omitempty"`
	Repeat      int            `yaml:"repeat,omitempty"`
	RepeatDelay float64        `yaml:"repeatDelay,omitempty"`
	RepeatType  RepeatType     `yaml:"repeatType,omitempty"`

	// Spring parameters, used by TypeSpring.
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
}

// DriverConfig is a Transition converted into the driver's units: durations
// as time.Duration and the ease resolved to a function.
type DriverConfig struct {
	Type        TransitionType
	Ease        ease.TweenFunc // nil lets the driver pick its default
	Duration    time.Duration  // zero lets the driver pick its default
	Offset      []float64
	Repeat      int
	RepeatDelay time.Duration
	RepeatType  RepeatType

	Stiffness float64
	Damping   float64
	Mass      float64
}

// DriverConfig converts t for a Driver. Unknown ease names, types or repeat
// modes are reported as a *ConfigError.
func (t Transition) DriverConfig() (DriverConfig, error) {
	cfg := DriverConfig{
		Type:        t.Type,
		Duration:    seconds(t.Duration),
		Offset:      t.Times,
		Repeat:      t.Repeat,
		RepeatDelay: seconds(t.RepeatDelay),
		RepeatType:  t.RepeatType,
		Stiffness:   t.Stiffness,
		Damping:     t.Damping,
		Mass:        t.Mass,
	}
	if t.Ease != "" {
		fn, err := EaseFunc(t.Ease)
		if err != nil {
			return DriverConfig{}, err
		}
		cfg.Ease = fn
	}
	switch t.Type {
	case TypeAuto, TypeKeyframes, TypeTween, TypeSpring, TypeDecay:
	default:
		return DriverConfig{}, &ConfigError{Field: "transition.type", Value: string(t.Type), Err: ErrInvalidTransition}
	}
	switch t.RepeatType {
	case "", RepeatLoop, RepeatReverse, RepeatMirror:
	default:
		return DriverConfig{}, &ConfigError{Field: "transition.repeatType", Value: string(t.RepeatType), Err: ErrInvalidTransition}
	}
	return cfg, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// easings maps the supported easing names to curves. All curves take the
// gween signature (t, b, c, d).
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"easeIn":     ease.InQuad,
	"easeInOut":  ease.InOutQuad,
	"easeOut":    ease.OutQuad,
	"circIn":     ease.InCirc,
	"circInOut":  ease.InOutCirc,
	"circOut":    ease.OutCirc,
	"backIn":     ease.InBack,
	"backInOut":  ease.InOutBack,
	"backOut":    ease.OutBack,
	"anticipate": anticipate,
	"bounceIn":   ease.InBounce,
}

// EaseFunc returns the curve registered under name.
func EaseFunc(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, &ConfigError{Field: "transition.ease", Value: name, Err: ErrUnknownEase}
	}
	return fn, nil
}

// EaseNames returns the supported easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// anticipate pulls back like backIn over the first half, then shoots out
// with an exponential settle.
func anticipate(t, b, c, d float32) float32 {
	p := float64(t/d) * 2
	var y float64
	if p < 1 {
		const s = 1.525
		y = 0.5 * p * p * ((s+1)*p - s)
	} else {
		y = 0.5 * (2 - math.Pow(2, -10*(p-1)))
	}
	return b + c*float32(y)
}

// describeConfig summarizes cfg for log attributes.
func describeConfig(cfg DriverConfig) string {
	return fmt.Sprintf("type=%q duration=%v repeat=%d", cfg.Type, cfg.Duration, cfg.Repeat)
}
