package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{R: 8, G: 9, B: 14, A: 255}

// screenCanvas draws simulation frames onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (s screenCanvas) Clear() { s.dst.Fill(background) }

func (s screenCanvas) FillCircle(x, y, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s screenCanvas) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}
