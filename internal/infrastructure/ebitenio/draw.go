package ebitenio

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/impala/internal/application/widget"
)

// Button colors
var (
	colorButtonIdle     = color.RGBA{60, 60, 90, 255}
	colorButtonHover    = color.RGBA{90, 90, 140, 255}
	colorButtonPressed  = color.RGBA{140, 140, 200, 255}
	colorButtonDisabled = color.RGBA{50, 50, 50, 255}
	colorButtonBorder   = color.RGBA{220, 220, 220, 255}
	colorButtonFocus    = color.RGBA{255, 215, 0, 255}
)

// ButtonColor returns the fill color for a button visual.
func ButtonColor(v widget.Visual) color.RGBA {
	switch v {
	case widget.VisualHover:
		return colorButtonHover
	case widget.VisualPressed:
		return colorButtonPressed
	case widget.VisualDisabled:
		return colorButtonDisabled
	default:
		return colorButtonIdle
	}
}

// DrawButton draws b with its current visual and a centered label.
// Hidden buttons are skipped.
func DrawButton(dst *ebiten.Image, b *widget.Button, label string) {
	if b.Hidden {
		return
	}
	r := b.Rect()
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)

	vector.FillRect(dst, x, y, w, h, ButtonColor(b.Visual()), false)
	border := colorButtonBorder
	if b.Selected {
		border = colorButtonFocus
	}
	vector.StrokeRect(dst, x, y, w, h, 1, border, false)

	// DebugPrint glyphs are 6x16
	lx := r.X + (r.Width-len(label)*6)/2
	ly := r.Y + (r.Height-16)/2
	ebitenutil.DebugPrintAt(dst, label, lx, ly)
}

// DrawOverlay dims the whole of dst, for pause screens.
func DrawOverlay(dst *ebiten.Image, alpha uint8) {
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, alpha}, false)
}
