package config

import (
	"errors"
	"fmt"
	"sort"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Network Animation - Space: Pause/Resume, Esc/Q: Quit"

	// Vertical velocity keeps this share after each bounce.
	BounceDamping = 0.8

	DefaultPreset = "dense"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the animation constants. It is set once at start-up and
// passed by value, so nothing can change it while the animation runs.
type Config struct {
	// Node (particle) settings
	MinSize     float64
	MaxSize     float64
	NodeOpacity float64

	// Connection line settings
	LineWidth          float64
	MaxConnectDistance float64
	LineOpacity        float64

	// Animation settings
	ParticleCount int
	ParticleSpeed float64
}

// Dense is the busier of the two value sets: more particles, faster, longer links.
var Dense = Config{
	MinSize:            2,
	MaxSize:            6,
	NodeOpacity:        0.8,
	LineWidth:          1.3,
	MaxConnectDistance: 300,
	LineOpacity:        0.6,
	ParticleCount:      150,
	ParticleSpeed:      0.6,
}

// Calm is the slower, sparser value set.
var Calm = Config{
	MinSize:            2,
	MaxSize:            6,
	NodeOpacity:        0.8,
	LineWidth:          0.6,
	MaxConnectDistance: 180,
	LineOpacity:        0.5,
	ParticleCount:      100,
	ParticleSpeed:      0.2,
}

var presets = map[string]Config{
	"dense": Dense,
	"calm":  Calm,
}

// Preset returns the named value set.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownPreset, name, PresetNames())
	}
	return cfg, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Config) Validate() error {
	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalidConfig, c.ParticleCount)
	case c.MinSize < 0 || c.MinSize > c.MaxSize:
		return fmt.Errorf("%w: size range [%g, %g]", ErrInvalidConfig, c.MinSize, c.MaxSize)
	case !unit(c.NodeOpacity):
		return fmt.Errorf("%w: node opacity %g outside [0, 1]", ErrInvalidConfig, c.NodeOpacity)
	case !unit(c.LineOpacity):
		return fmt.Errorf("%w: line opacity %g outside [0, 1]", ErrInvalidConfig, c.LineOpacity)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line width %g must be positive", ErrInvalidConfig, c.LineWidth)
	case c.MaxConnectDistance <= 0:
		return fmt.Errorf("%w: connect distance %g must be positive", ErrInvalidConfig, c.MaxConnectDistance)
	case c.ParticleSpeed < 0:
		return fmt.Errorf("%w: particle speed %g is negative", ErrInvalidConfig, c.ParticleSpeed)
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
