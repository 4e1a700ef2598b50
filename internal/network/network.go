package network

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/network-animation/internal/config"
)

// Network owns the particle set and the canvas dimensions. It is not safe
// for concurrent use; the host serialises Update, Draw and resize callbacks.
type Network struct {
	cfg       config.Config
	width     float64
	height    float64
	particles []Particle

	rng *rand.Rand
	log *zap.Logger
}

type Option func(*Network)

// WithRand sets the random source used to place particles.
func WithRand(rng *rand.Rand) Option {
	return func(n *Network) { n.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(n *Network) { n.log = log }
}

// Link is a pair of particles close enough to be joined by a line.
type Link struct {
	I, J     int
	Distance float64
	Opacity  float64
}

// New sizes the canvas to width x height and creates cfg.ParticleCount particles.
func New(cfg config.Config, width, height float64, opts ...Option) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new network: %w", err)
	}
	n := &Network{
		cfg:       cfg,
		particles: make([]Particle, 0, cfg.ParticleCount),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	n.init(width, height)
	return n, nil
}

func (n *Network) init(width, height float64) {
	n.Resize(width, height)
	n.createParticles()
}

func (n *Network) createParticles() {
	for i := 0; i < n.cfg.ParticleCount; i++ {
		n.particles = append(n.particles, NewParticle(n.cfg, n.width, n.height, n.rng))
	}
	n.log.Debug("particles created",
		zap.Int("count", len(n.particles)),
		zap.Float64("width", n.width),
		zap.Float64("height", n.height))
}

// Resize changes the canvas dimensions. Particles are left where they are;
// anything now out of bounds is brought back by Update over later frames.
func (n *Network) Resize(width, height float64) {
	if width == n.width && height == n.height {
		return
	}
	n.width, n.height = width, height
	n.log.Debug("canvas resized", zap.Float64("width", width), zap.Float64("height", height))
}

func (n *Network) Size() (width, height float64) { return n.width, n.height }

func (n *Network) Len() int { return len(n.particles) }

func (n *Network) Config() config.Config { return n.cfg }

// Particles returns a copy of the particle set in insertion order.
func (n *Network) Particles() []Particle {
	out := make([]Particle, len(n.particles))
	copy(out, n.particles)
	return out
}

// Links returns every unordered pair i<j closer than particle i's
// connection radius. Opacity falls linearly from LineOpacity at distance 0
// to 0 at the radius.
func (n *Network) Links() []Link {
	var links []Link
	for i := range n.particles {
		a := &n.particles[i]
		for j := i + 1; j < len(n.particles); j++ {
			d := r2.Norm(r2.Sub(a.Pos, n.particles[j].Pos))
			if d < a.ConnectDistance {
				links = append(links, Link{
					I:        i,
					J:        j,
					Distance: d,
					Opacity:  (1 - d/a.ConnectDistance) * n.cfg.LineOpacity,
				})
			}
		}
	}
	return links
}

// Connect strokes a line for every link.
func (n *Network) Connect(c Canvas) {
	for _, l := range n.Links() {
		a, b := n.particles[l.I].Pos, n.particles[l.J].Pos
		c.StrokeLine(a.X, a.Y, b.X, b.Y, n.cfg.LineWidth, White(l.Opacity))
	}
}

// Animate renders one frame: clear, then update and draw each particle in
// turn, then connect.
func (n *Network) Animate(c Canvas) {
	c.Clear()
	for i := range n.particles {
		p := &n.particles[i]
		p.Update(n.width, n.height)
		p.Draw(c, n.cfg.NodeOpacity)
	}
	n.Connect(c)
}

// Render draws the current state without advancing it.
func (n *Network) Render(c Canvas) {
	c.Clear()
	for i := range n.particles {
		n.particles[i].Draw(c, n.cfg.NodeOpacity)
	}
	n.Connect(c)
}
