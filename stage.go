package motion

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Stage shows a Player's boxes in an ebiten window and feeds them real
// mouse input. It implements ebiten.Game.
//
// For full control, embed the Stage in your own game and call Update, Draw
// and Layout from it; otherwise use Run.
type Stage struct {
	*Player

	Width, Height int
	ClearColor    color.Color

	// ScreenshotDir is where Screenshot writes its PNG files.
	ScreenshotDir string

	debug           bool
	stats           debugStats
	overlay         statsOverlay
	pixel           *ebiten.Image
	screenshotQueue []string
}

// NewStage wraps p in a stage of the given logical size.
func NewStage(p *Player, width, height int) *Stage {
	return &Stage{
		Player:        p,
		Width:         width,
		Height:        height,
		ClearColor:    color.RGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff},
		ScreenshotDir: "screenshots",
	}
}

// NewStageFromScene builds a stage for a scene document. Snapshot steps of
// the scene's script capture a screenshot.
func NewStageFromScene(spec *SceneSpec) (*Stage, error) {
	p, err := NewPlayerFromScene(spec)
	if err != nil {
		return nil, err
	}
	s := NewStage(p, spec.Width, spec.Height)
	p.OnSnapshot = func(label string, _ int) { s.Screenshot(label) }
	if spec.Background != "" {
		if c, a, ok := parseColor(Str(spec.Background)); ok {
			s.ClearColor = toRGBA(c, a)
		}
	}
	return s, nil
}

// SetDebugMode enables per-frame timing logs at debug level and the stats
// overlay.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update reads the mouse, unless synthetic input is queued, and steps the
// player by one tick. Element errors are logged, not returned, so a bad key
// does not close the window.
func (s *Stage) Update() error {
	start := time.Now()
	dt := float32(1.0 / float64(ebiten.TPS()))

	if !s.Injecting() {
		x, y := ebiten.CursorPosition()
		down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		if err := s.Pointer(float64(x), float64(y), down); err != nil {
			Logger().Warn("pointer dispatch failed", "err", err)
		}
	}
	if err := s.Step(dt); err != nil {
		Logger().Warn("frame failed", "frame", s.Frame(), "err", err)
	}

	s.stats.updateTime = time.Since(start)
	s.stats.animations = s.Ticker().Active()
	if s.debug {
		s.overlay.update(float64(dt), s.stats.animations, len(s.boxes))
	}
	return nil
}

// Draw paints every box in order with its current transform, color and
// opacity.
func (s *Stage) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(s.ClearColor)
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}

	for _, b := range s.boxes {
		op := &ebiten.DrawImageOptions{}
		m := b.Matrix().Multiply(Scale(b.Bounds.Width, b.Bounds.Height))
		setGeoM(&op.GeoM, m)

		c, a, ok := parseColor(Str(b.Color()))
		if !ok {
			c, a = colorful.Color{R: 1, G: 1, B: 1}, 1
		}
		a *= b.Opacity()
		op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
		screen.DrawImage(s.pixel, op)
	}

	if s.debug {
		s.overlay.draw(screen)
	}
	s.flushScreenshots(screen)

	s.stats.drawTime = time.Since(start)
	s.stats.boxes = len(s.boxes)
	s.debugLog(s.stats)
}

// Layout implements ebiten.Game with a fixed logical size.
func (s *Stage) Layout(_, _ int) (int, int) {
	return s.Width, s.Height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Debug         bool
	ScreenshotDir string // empty keeps the stage's
}

// Run opens a window and plays the stage until it is closed.
func Run(s *Stage, cfg RunConfig) error {
	ebiten.SetWindowSize(s.Width, s.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	s.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		s.ScreenshotDir = cfg.ScreenshotDir
	}
	defer s.Dispose()
	return ebiten.RunGame(s)
}

func setGeoM(g *ebiten.GeoM, m Matrix) {
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
}

func toRGBA(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	a := clamp01(alpha)
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(a * 255),
	}
}
