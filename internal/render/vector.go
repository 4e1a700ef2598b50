package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/network-animation/internal/network"
)

// Vector renders the most recent frame as an SVG document. svgo only takes
// integer coordinates, so positions and radii are rounded.
type Vector struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	width  int
	height int
	bg     color.NRGBA
	open   bool
}

var _ network.Canvas = (*Vector)(nil)

func NewVector(width, height int, bg color.NRGBA) *Vector {
	v := &Vector{width: width, height: height, bg: bg}
	v.canvas = svg.New(&v.buf)
	return v
}

// Clear discards the previous frame and opens a new document.
func (v *Vector) Clear() {
	v.buf.Reset()
	v.canvas.Start(v.width, v.height)
	v.canvas.Rect(0, 0, v.width, v.height, "fill:"+rgb(v.bg.R, v.bg.G, v.bg.B))
	v.open = true
}

func (v *Vector) FillCircle(x, y, r float64, p network.Paint) {
	if !v.open {
		v.Clear()
	}
	rad := round(r)
	if rad < 1 {
		rad = 1
	}
	v.canvas.Circle(round(x), round(y), rad,
		fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(p.R, p.G, p.B), p.Alpha))
}

func (v *Vector) StrokeLine(x1, y1, x2, y2, width float64, p network.Paint) {
	if !v.open {
		v.Clear()
	}
	v.canvas.Line(round(x1), round(y1), round(x2), round(y2),
		fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%g", rgb(p.R, p.G, p.B), p.Alpha, width))
}

// WriteTo closes the current document and writes it to w. The frame stays
// buffered until the next Clear.
func (v *Vector) WriteTo(w io.Writer) (int64, error) {
	if v.open {
		v.canvas.End()
		v.open = false
	}
	n, err := w.Write(v.buf.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("write svg: %w", err)
	}
	return int64(n), nil
}

func round(f float64) int { return int(math.Round(f)) }

func rgb(r, g, b uint8) string { return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b) }
