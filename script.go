package motion

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Step is a single action in a script.
//
// Actions:
//   - hover, leave, press, release, out: pointer edge sent straight to Box
//   - move, click: synthetic pointer input at X, Y, hit-tested like real input
//   - animate: replace Box's animate target with Animate
//   - wait: let Frames frames pass
//   - snapshot: call Player.OnSnapshot with Label
type Step struct {
	Action  string  `yaml:"action"`
	Box     string  `yaml:"box,omitempty"`
	Label   string  `yaml:"label,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Animate Target  `yaml:"animate,omitempty"`
}

// ScriptRunner sequences steps across frames. Attach it to a Player with
// SetScript; it advances once per Player.Step.
type ScriptRunner struct {
	steps     []Step
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner creates a runner for steps.
func NewScriptRunner(steps []Step) *ScriptRunner {
	return &ScriptRunner{steps: steps, done: len(steps) == 0}
}

// LoadScript parses a YAML list of steps.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return NewScriptRunner(steps), nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step runs at most one action. Called from Player.Step.
func (r *ScriptRunner) step(p *Player) error {
	if r.done {
		return nil
	}
	// Wait for pending injections to drain before advancing.
	if p.Injecting() {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	err := r.run(p, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !p.Injecting() {
		r.done = true
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", r.cursor, st.Action, err)
	}
	return nil
}

func (r *ScriptRunner) run(p *Player, st Step) error {
	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return nil
	case "snapshot":
		if p.OnSnapshot != nil {
			p.OnSnapshot(st.Label, p.frame)
		}
		return nil
	case "move":
		p.InjectMove(st.X, st.Y)
		return nil
	case "click":
		p.InjectClick(st.X, st.Y)
		return nil
	}

	b := p.Box(st.Box)
	if b == nil {
		return fmt.Errorf("unknown box %q", st.Box)
	}
	switch st.Action {
	case "hover":
		b.hovered = true
		return b.Element.PointerEnter()
	case "leave":
		b.hovered = false
		return b.Element.PointerLeave()
	case "press":
		b.pressed = true
		return b.Element.PointerDown()
	case "release":
		b.pressed = false
		return b.Element.PointerUp()
	case "out":
		b.pressed = false
		return b.Element.PointerOut()
	case "animate":
		return b.Element.SetAnimate(st.Animate)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}
