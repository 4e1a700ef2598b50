package network

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/network-animation/internal/config"
)

// Particle is a single moving node.
type Particle struct {
	Pos             r2.Vec
	Speed           float64
	DirectionX      float64 // in [-1, 1)
	DirectionY      float64 // vertical velocity, already scaled by speed
	Size            float64 // radius
	ConnectDistance float64
}

// NewParticle places a particle uniformly at random inside a width x height canvas.
func NewParticle(cfg config.Config, width, height float64, rng *rand.Rand) Particle {
	return Particle{
		Pos:             r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
		Speed:           cfg.ParticleSpeed,
		DirectionX:      rng.Float64()*2 - 1,
		DirectionY:      (rng.Float64()*0.5 - 0.25) * cfg.ParticleSpeed,
		Size:            rng.Float64()*(cfg.MaxSize-cfg.MinSize) + cfg.MinSize,
		ConnectDistance: cfg.MaxConnectDistance,
	}
}

// Update advances the particle by one frame. There is no time-delta
// scaling: motion speed follows the frame rate.
//
// Horizontally the particle wraps, keeping 0 <= x < width. Vertically it
// bounces with damping; y may overshoot the edge by one step.
func (p *Particle) Update(width, height float64) {
	p.Pos.X += p.Speed * p.DirectionX
	p.Pos.Y += p.DirectionY

	switch {
	case p.Pos.X >= width:
		p.Pos.X = 0
	case p.Pos.X < 0:
		p.Pos.X += width
		if p.Pos.X < 0 || p.Pos.X >= width {
			p.Pos.X = 0
		}
	}

	if p.Pos.Y > height || p.Pos.Y < 0 {
		p.DirectionY = -p.DirectionY * config.BounceDamping
	}
}

// Draw renders the particle as a filled white circle.
func (p *Particle) Draw(c Canvas, opacity float64) {
	c.FillCircle(p.Pos.X, p.Pos.Y, p.Size, White(opacity))
}
