package motion

import (
	"strings"
	"testing"
)

func newTestPlayer(t *testing.T, specs ...BoxSpec) *Player {
	t.Helper()
	p := NewPlayer()
	for _, s := range specs {
		if _, err := p.AddBox(s); err != nil {
			t.Fatalf("AddBox(%s): %v", s.Name, err)
		}
	}
	t.Cleanup(p.Dispose)
	return p
}

func hoverSpec() BoxSpec {
	return BoxSpec{
		Name:       "card",
		Bounds:     Rect{X: 100, Y: 100, Width: 100, Height: 100},
		Animate:    Literal(To("scale", Num(1))),
		WhileHover: Literal(To("scale", Num(2))),
		WhileTap:   Literal(To("scale", Num(0.5))),
		Transition: Transition{Duration: 0.1, Ease: "linear"},
	}
}

// --- Box ---

func TestBoxMatrixUntransformed(t *testing.T) {
	p := newTestPlayer(t, BoxSpec{Name: "b", Bounds: Rect{X: 10, Y: 20, Width: 100, Height: 50}})
	b := p.Box("b")
	assertMatrix(t, "matrix", b.Matrix(), Translate(10, 20))
	if cs := b.ComputedStyle(); cs.Transform != "none" || cs.BackgroundColor != "#ffffff" {
		t.Errorf("ComputedStyle = %+v", cs)
	}
	if !b.Contains(10, 20) || !b.Contains(110, 70) || b.Contains(111, 20) {
		t.Error("hit test does not match bounds")
	}
}

func TestBoxScaleAboutCenter(t *testing.T) {
	p := newTestPlayer(t, BoxSpec{
		Name:    "b",
		Bounds:  Rect{X: 100, Y: 100, Width: 100, Height: 100},
		Animate: Literal(To("scale", Num(2))),
	})
	b := p.Box("b")
	if cs := b.ComputedStyle(); cs.Transform != "matrix(2, 0, 0, 2, 0, 0)" {
		t.Errorf("Transform = %q", cs.Transform)
	}
	if !b.Contains(60, 60) || !b.Contains(240, 240) {
		t.Error("scaled box should cover 50..250")
	}
	if b.Contains(45, 150) {
		t.Error("point outside the scaled box hit")
	}
}

func TestBoxPercentTranslate(t *testing.T) {
	p := newTestPlayer(t, BoxSpec{
		Name:    "b",
		Bounds:  Rect{Width: 200, Height: 50},
		Animate: Literal(To("x", Str("-50%"))),
	})
	x, y := p.Box("b").Matrix().Apply(0, 0)
	assertNear(t, "x", x, -100)
	assertNear(t, "y", y, 0)
}

func TestBoxColorAndOpacity(t *testing.T) {
	p := newTestPlayer(t, BoxSpec{
		Name:    "b",
		Fill:    "#123456",
		Animate: Literal(To("opacity", Num(1.5))),
	})
	b := p.Box("b")
	if b.Color() != "#123456" {
		t.Errorf("Color() = %q", b.Color())
	}
	assertNear(t, "opacity", b.Opacity(), 1)

	b.Element.Style().Set("backgroundColor", Str("red"))
	b.Element.Style().Set("opacity", Str("0.25"))
	if b.Color() != "red" {
		t.Errorf("Color() = %q after set", b.Color())
	}
	assertNear(t, "opacity", b.Opacity(), 0.25)
}

func TestParseTransform(t *testing.T) {
	m, err := parseTransform("translateX(10) rotate(90deg) scale(2)", 100)
	if err != nil {
		t.Fatal(err)
	}
	x, y := m.Apply(1, 0)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 2)

	if _, err := parseTransform("skew(10deg)", 100); err == nil {
		t.Error("expected error for unsupported function")
	}
}

// --- Player ---

func TestPlayerDuplicateBox(t *testing.T) {
	p := newTestPlayer(t, BoxSpec{Name: "a"})
	if _, err := p.AddBox(BoxSpec{Name: "a"}); err == nil {
		t.Error("expected error for duplicate box")
	}
}

func TestPlayerPointerHover(t *testing.T) {
	p := newTestPlayer(t, hoverSpec())
	b := p.Box("card")

	if err := p.Pointer(150, 150, false); err != nil {
		t.Fatal(err)
	}
	if !b.Element.Gesture().Hover() {
		t.Fatal("pointer over box did not hover")
	}
	p.Step(0.2)
	if got := b.Element.Style().Value("scale"); got != Num(2) {
		t.Fatalf("scale = %#v, want Num(2)", got)
	}

	// Still inside the enlarged box.
	p.Pointer(60, 60, false)
	if !b.Element.Gesture().Hover() {
		t.Error("hit test ignored the rendered scale")
	}

	p.Pointer(10, 10, false)
	p.Step(0.2)
	if got := b.Element.Style().Value("scale"); got != Num(1) {
		t.Errorf("scale after leave = %#v, want Num(1)", got)
	}
}

func TestPlayerPointerPressAndOut(t *testing.T) {
	p := newTestPlayer(t, hoverSpec())
	b := p.Box("card")

	p.Pointer(150, 150, true)
	if !b.Element.Gesture().Press() {
		t.Fatal("press over box not registered")
	}
	p.Pointer(0, 0, true)
	g := b.Element.Gesture()
	if g.Press() || g.Hover() {
		t.Errorf("after dragging out: hover %v press %v", g.Hover(), g.Press())
	}

	// Releasing elsewhere must not reach the box again.
	p.Pointer(0, 0, false)
	if b.pressed {
		t.Error("box still pressed")
	}
}

func TestPlayerPressStartedOutside(t *testing.T) {
	p := newTestPlayer(t, hoverSpec())
	p.Pointer(0, 0, true)
	p.Pointer(150, 150, true)
	if p.Box("card").Element.Gesture().Press() {
		t.Error("dragging onto a box while down pressed it")
	}
}

func TestInjectClick(t *testing.T) {
	p := newTestPlayer(t, hoverSpec())
	b := p.Box("card")

	p.InjectClick(150, 150)
	if len(p.injectQueue) != 2 || !p.Injecting() {
		t.Fatalf("expected 2 queued events, got %d", len(p.injectQueue))
	}

	// Frame 1: press
	p.Step(1.0 / 60)
	if !b.Element.Gesture().Press() {
		t.Error("press not dispatched on frame 1")
	}
	// Frame 2: release
	p.Step(1.0 / 60)
	if b.Element.Gesture().Press() || !b.Element.Gesture().Hover() {
		t.Errorf("after release: %+v", b.Element.Gesture())
	}
	if p.Injecting() {
		t.Error("queue not drained")
	}
	if p.Frame() != 2 {
		t.Errorf("Frame() = %d, want 2", p.Frame())
	}
}

// --- scripts ---

func TestLoadScript(t *testing.T) {
	r, err := LoadScript([]byte(`
- {action: hover, box: card}
- {action: wait, frames: 3}
- {action: snapshot, label: hovered}
- {action: animate, box: card, animate: {scale: 3}}
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.steps))
	}
	if r.steps[1].Frames != 3 || r.steps[2].Label != "hovered" {
		t.Errorf("steps = %+v", r.steps)
	}
	if fields := r.steps[3].Animate.Fields(); len(fields) != 1 || fields[0].End.First() != Num(3) {
		t.Errorf("animate step = %+v", r.steps[3].Animate)
	}

	if _, err := LoadScript([]byte(`[]`)); err == nil {
		t.Error("expected error for empty script")
	}
	if _, err := LoadScript([]byte(`{action: 1`)); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestScriptRun(t *testing.T) {
	p := newTestPlayer(t, hoverSpec())
	var snaps []string
	p.OnSnapshot = func(label string, frame int) {
		snaps = append(snaps, label)
		if label == "hovered" && frame != 4 {
			t.Errorf("snapshot at frame %d, want 4", frame)
		}
	}
	p.SetScript(NewScriptRunner([]Step{
		{Action: "hover", Box: "card"},
		{Action: "wait", Frames: 3},
		{Action: "snapshot", Label: "hovered"},
		{Action: "animate", Box: "card", Animate: Literal(To("scale", Num(1)), To("opacity", Num(0.5)))},
		{Action: "leave", Box: "card"},
	}))
	for i := 0; i < 20 && !p.Script().Done(); i++ {
		if err := p.Step(0.05); err != nil {
			t.Fatal(err)
		}
	}
	if !p.Script().Done() {
		t.Fatal("script did not finish")
	}
	if len(snaps) != 1 || snaps[0] != "hovered" {
		t.Errorf("snapshots = %v", snaps)
	}
	for i := 0; i < 10; i++ {
		p.Step(0.05)
	}
	b := p.Box("card")
	if b.Element.Style().Value("opacity") != Num(0.5) || b.Element.Style().Value("scale") != Num(1) {
		t.Errorf("final style = %v", b.Element.Render())
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Action: "hover", Box: "nope"}, "unknown box"},
		{Step{Action: "dance", Box: "card"}, "unknown action"},
		{Step{Action: "animate", Box: "card", Animate: Named("missing")}, "unknown variant"},
	}
	for _, tt := range tests {
		t.Run(tt.step.Action, func(t *testing.T) {
			p := newTestPlayer(t, hoverSpec())
			p.SetScript(NewScriptRunner([]Step{tt.step}))
			err := p.Step(0.1)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
			if !p.Script().Done() {
				t.Error("failed step did not advance the script")
			}
		})
	}
}

func TestPlayerFromScene(t *testing.T) {
	spec, err := LoadScene([]byte(menuScene))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayerFromScene(spec)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Dispose()

	var opened bool
	p.OnSnapshot = func(label string, frame int) {
		opened = label == "opened"
		panel := p.Box("panel").Element
		if panel.Style().Value("opacity") != Num(1) || panel.Style().Value("x") != Str("0%") {
			t.Errorf("panel at snapshot: %v", panel.Render())
		}
	}
	for i := 0; i < 100 && !p.Script().Done(); i++ {
		if err := p.Step(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if !opened {
		t.Error("snapshot step never ran")
	}
	if got := p.Box("button").Color(); got != "#000" {
		t.Errorf("button color = %q, want the initial #000", got)
	}
}

func TestPlayerOnClick(t *testing.T) {
	p := newTestPlayer(t, hoverSpec(), BoxSpec{Name: "plain", Bounds: Rect{X: 300, Y: 0, Width: 50, Height: 50}})
	var clicked []string
	p.OnClick = func(b *Box) { clicked = append(clicked, b.Name) }

	p.InjectClick(150, 150)
	p.InjectClick(310, 10)
	p.InjectPress(150, 150)
	p.InjectRelease(0, 0) // released elsewhere: no click
	for p.Injecting() {
		p.Step(1.0 / 60)
	}
	want := []string{"card", "plain"}
	if len(clicked) != 2 || clicked[0] != want[0] || clicked[1] != want[1] {
		t.Errorf("clicked = %v, want %v", clicked, want)
	}
}
