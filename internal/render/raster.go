// Package render provides off-screen canvases for writing frames to disk.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"

	"github.com/iburimskiy/network-animation/internal/network"
)

// Background is the colour behind the particles.
var Background = color.NRGBA{R: 10, G: 14, B: 26, A: 255}

// Raster renders frames into an in-memory image.
type Raster struct {
	dc *gg.Context
	bg color.Color
}

var _ network.Canvas = (*Raster)(nil)

func NewRaster(width, height int, bg color.Color) *Raster {
	return &Raster{dc: gg.NewContext(width, height), bg: bg}
}

func (r *Raster) Clear() {
	r.dc.SetColor(r.bg)
	r.dc.Clear()
}

func (r *Raster) FillCircle(x, y, rad float64, p network.Paint) {
	r.dc.DrawCircle(x, y, rad)
	r.dc.SetColor(p.NRGBA())
	r.dc.Fill()
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, p network.Paint) {
	r.dc.SetLineWidth(width)
	r.dc.SetColor(p.NRGBA())
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
