package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/network-animation/internal/network"
)

// screen adapts an ebiten image to network.Canvas.
type screen struct {
	img *ebiten.Image
	bg  color.Color
}

func (s screen) Clear() {
	s.img.Fill(s.bg)
}

func (s screen) FillCircle(x, y, r float64, p network.Paint) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), p.NRGBA(), true)
}

func (s screen) StrokeLine(x1, y1, x2, y2, width float64, p network.Paint) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), p.NRGBA(), true)
}
