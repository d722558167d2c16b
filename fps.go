package motion

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay draws FPS, TPS and the running animation count in the
// top-left corner. The text is refreshed about twice a second.
type statsOverlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

func (o *statsOverlay) update(dt float64, animations, boxes int) {
	o.since += dt
	if o.text != "" && o.since < 0.5 {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nanims: %d boxes: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), animations, boxes)
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// Three lines of debug text.
		o.img = ebiten.NewImage(140, 64)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
