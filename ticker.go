package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultTweenDuration = 0.3 // seconds
	defaultStiffness     = 100
	defaultDamping       = 10
	defaultMass          = 1
	decayTimeConstant    = 0.35 // seconds
	restDelta            = 0.001
	restSpeed            = 0.01
)

// Ticker is a frame-stepped Driver. Drive registers an animation; the host
// advances every registered animation by calling Update once per frame.
// There is no global clock: whoever owns the Ticker decides when time passes.
//
// Ticker is single-threaded. onUpdate callbacks run inside Update and may
// start or cancel other animations.
type Ticker struct {
	anims []*animation
}

// NewTicker creates an empty Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Drive implements Driver.
func (tk *Ticker) Drive(from Value, to Endpoint, cfg DriverConfig, onUpdate func(Value)) CancelFunc {
	a := &animation{
		gen:        newGenerator(from, to, cfg),
		onUpdate:   onUpdate,
		repeatLeft: cfg.Repeat,
		repeatType: cfg.RepeatType,
		delayDur:   float32(cfg.RepeatDelay.Seconds()),
		last:       from,
	}
	tk.anims = append(tk.anims, a)
	return func() {
		if a.stopped {
			return
		}
		a.stopped = true
		tk.remove(a)
	}
}

// Update advances every live animation by dt seconds and removes the ones
// that finished.
func (tk *Ticker) Update(dt float32) {
	if len(tk.anims) == 0 {
		return
	}
	run := make([]*animation, len(tk.anims))
	copy(run, tk.anims)
	for _, a := range run {
		if a.stopped {
			continue
		}
		v, done := a.step(dt)
		if done {
			a.stopped = true
			tk.remove(a)
		}
		a.onUpdate(v)
	}
}

// Active returns the number of live animations.
func (tk *Ticker) Active() int {
	return len(tk.anims)
}

func (tk *Ticker) remove(a *animation) {
	for i, cur := range tk.anims {
		if cur == a {
			copy(tk.anims[i:], tk.anims[i+1:])
			tk.anims[len(tk.anims)-1] = nil
			tk.anims = tk.anims[:len(tk.anims)-1]
			return
		}
	}
}

// --- animation: repeat bookkeeping around a generator ---

type animation struct {
	gen      generator
	onUpdate func(Value)
	stopped  bool

	repeatLeft int
	repeatType RepeatType
	flipped    bool
	delay      *gween.Tween
	delayDur   float32
	last       Value
}

func (a *animation) step(dt float32) (Value, bool) {
	if a.delay != nil {
		if _, finished := a.delay.Update(dt); !finished {
			return a.last, false
		}
		a.delay = nil
		return a.last, false
	}

	v, done := a.gen.step(dt)
	a.last = v
	if !done {
		return v, false
	}
	if a.repeatLeft == 0 {
		return v, true
	}
	if a.repeatLeft > 0 {
		a.repeatLeft--
	}
	if a.repeatType == RepeatReverse || a.repeatType == RepeatMirror {
		a.flipped = !a.flipped
	}
	a.gen.restart(a.flipped)
	if a.delayDur > 0 {
		a.delay = gween.New(0, 1, a.delayDur, ease.Linear)
	}
	return v, false
}

// generator produces one cycle of an animation.
type generator interface {
	step(dt float32) (Value, bool)
	// restart begins a new cycle. flipped cycles run from the end back to
	// the start.
	restart(flipped bool)
}

func newGenerator(from Value, to Endpoint, cfg DriverConfig) generator {
	switch detectType(to, cfg) {
	case TypeSpring:
		return newSpringGen(from, to.Last(), cfg)
	case TypeDecay:
		return newDecayGen(from, to.Last())
	default:
		return newTweenGen(from, to, cfg)
	}
}

// detectType resolves TypeAuto: a sequence always tweens, an explicit type
// wins next, an ease or duration means a tween, spring parameters mean a
// spring, and anything else tweens.
func detectType(to Endpoint, cfg DriverConfig) TransitionType {
	if to.IsSequence() {
		return TypeKeyframes
	}
	switch cfg.Type {
	case TypeSpring, TypeDecay:
		return cfg.Type
	case TypeKeyframes, TypeTween:
		return TypeKeyframes
	}
	if cfg.Ease != nil || cfg.Duration > 0 {
		return TypeKeyframes
	}
	if cfg.Stiffness != 0 || cfg.Damping != 0 || cfg.Mass != 0 {
		return TypeSpring
	}
	return TypeKeyframes
}

// --- tween / keyframes ---

type tweenGen struct {
	forward  track
	mirrored track
	ease     ease.TweenFunc
	duration float32
	reverse  bool // flipped cycles replay in reverse time instead of mirroring
	flipped  bool
	clock    *gween.Tween
}

// track is a keyframe sequence with its time offsets and per-segment mixers.
type track struct {
	frames  []Value
	offsets []float64
	mixers  []mixer
}

func newTrack(frames []Value, offsets []float64) track {
	t := track{frames: frames, offsets: offsets}
	for i := 0; i+1 < len(frames); i++ {
		t.mixers = append(t.mixers, newMixer(frames[i], frames[i+1]))
	}
	return t
}

func (t track) sample(p float64, fn ease.TweenFunc) Value {
	n := len(t.frames)
	switch {
	case n == 0:
		return Undefined
	case n == 1 || p <= 0:
		return t.frames[0]
	case p >= 1:
		return t.frames[n-1]
	}
	i := 0
	for i < n-2 && p > t.offsets[i+1] {
		i++
	}
	span := t.offsets[i+1] - t.offsets[i]
	local := 1.0
	if span > 0 {
		local = (p - t.offsets[i]) / span
	}
	eased := float64(fn(float32(local), 0, 1, 1))
	return t.mixers[i](eased)
}

func newTweenGen(from Value, to Endpoint, cfg DriverConfig) *tweenGen {
	var frames []Value
	if to.IsSequence() {
		frames = to.Frames()
	} else {
		frames = []Value{from, to.First()}
	}
	offsets := cfg.Offset
	if len(offsets) != len(frames) {
		offsets = evenOffsets(len(frames))
	}

	rev := make([]Value, len(frames))
	revOffsets := make([]float64, len(offsets))
	for i := range frames {
		rev[i] = frames[len(frames)-1-i]
		revOffsets[i] = 1 - offsets[len(offsets)-1-i]
	}

	fn := cfg.Ease
	if fn == nil {
		fn = ease.InOutQuad
	}
	duration := float32(cfg.Duration.Seconds())
	if duration <= 0 {
		duration = defaultTweenDuration
	}
	g := &tweenGen{
		forward:  newTrack(frames, offsets),
		mirrored: newTrack(rev, revOffsets),
		ease:     fn,
		duration: duration,
		reverse:  cfg.RepeatType == RepeatReverse,
	}
	g.restart(false)
	return g
}

func evenOffsets(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

func (g *tweenGen) restart(flipped bool) {
	g.flipped = flipped
	g.clock = gween.New(0, 1, g.duration, ease.Linear)
}

func (g *tweenGen) step(dt float32) (Value, bool) {
	p32, finished := g.clock.Update(dt)
	p := float64(p32)
	if finished {
		p = 1
	}
	switch {
	case !g.flipped:
		return g.forward.sample(p, g.ease), finished
	case g.reverse:
		return g.forward.sample(1-p, g.ease), finished
	default:
		return g.mirrored.sample(p, g.ease), finished
	}
}

// --- spring ---

// springGen runs a harmonica spring on progress from 0 to 1 and mixes the
// endpoints with it, so units and colors spring as well as numbers.
type springGen struct {
	from, to Value
	end      Value
	mix      mixer
	angular  float64
	ratio    float64
	spring   harmonica.Spring
	dt       float32
	pos, vel float64
}

func newSpringGen(from, to Value, cfg DriverConfig) *springGen {
	k, c, m := cfg.Stiffness, cfg.Damping, cfg.Mass
	if k <= 0 {
		k = defaultStiffness
	}
	if c <= 0 {
		c = defaultDamping
	}
	if m <= 0 {
		m = defaultMass
	}
	g := &springGen{
		from:    from,
		to:      to,
		angular: math.Sqrt(k / m),
		ratio:   c / (2 * math.Sqrt(k*m)),
	}
	g.restart(false)
	return g
}

func (g *springGen) restart(flipped bool) {
	g.pos, g.vel = 0, 0
	if flipped {
		g.mix, g.end = newMixer(g.to, g.from), g.from
	} else {
		g.mix, g.end = newMixer(g.from, g.to), g.to
	}
}

func (g *springGen) step(dt float32) (Value, bool) {
	if dt != g.dt {
		g.spring = harmonica.NewSpring(float64(dt), g.angular, g.ratio)
		g.dt = dt
	}
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, 1)
	if math.Abs(1-g.pos) < restDelta && math.Abs(g.vel) < restSpeed {
		g.pos, g.vel = 1, 0
		return g.end, true
	}
	return g.mix(g.pos), false
}

// --- decay ---

// decayGen approaches its target exponentially.
type decayGen struct {
	from, to Value
	end      Value
	mix      mixer
	pos      float64
}

func newDecayGen(from, to Value) *decayGen {
	g := &decayGen{from: from, to: to}
	g.restart(false)
	return g
}

func (g *decayGen) restart(flipped bool) {
	g.pos = 0
	if flipped {
		g.mix, g.end = newMixer(g.to, g.from), g.from
	} else {
		g.mix, g.end = newMixer(g.from, g.to), g.to
	}
}

func (g *decayGen) step(dt float32) (Value, bool) {
	g.pos += (1 - g.pos) * (1 - math.Exp(-float64(dt)/decayTimeConstant))
	if 1-g.pos < restDelta {
		g.pos = 1
		return g.end, true
	}
	return g.mix(g.pos), false
}
