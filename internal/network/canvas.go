package network

import "image/color"

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x1, y1, x2, y2, width float64, p Paint)
}

// Paint is a colour with a fractional alpha in [0, 1].
type Paint struct {
	R, G, B uint8
	Alpha   float64
}

// White returns white at the given opacity.
func White(alpha float64) Paint {
	return Paint{R: 255, G: 255, B: 255, Alpha: alpha}
}

// NRGBA converts to a non-premultiplied colour, clamping alpha.
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(clamp01(p.Alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
