package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/network-animation/internal/config"
	"github.com/iburimskiy/network-animation/internal/network"
)

type keyboard map[ebiten.Key]bool

func (k keyboard) pressed(key ebiten.Key) bool { return k[key] }

func newTestGame(t *testing.T) (*Game, keyboard) {
	t.Helper()
	n, err := network.New(config.Calm, 800, 600, network.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)
	g := New(n, "calm", nil)
	keys := keyboard{}
	g.isKeyPressed = keys.pressed
	return g, keys
}

func TestNewStartsLoop(t *testing.T) {
	g, _ := newTestGame(t)
	assert.True(t, g.Loop().Running())
}

func TestSpaceTogglesOnPress(t *testing.T) {
	g, keys := newTestGame(t)

	keys[ebiten.KeySpace] = true
	require.NoError(t, g.Update())
	assert.False(t, g.Loop().Running())

	// Held key does not toggle again.
	require.NoError(t, g.Update())
	assert.False(t, g.Loop().Running())

	keys[ebiten.KeySpace] = false
	require.NoError(t, g.Update())
	keys[ebiten.KeySpace] = true
	require.NoError(t, g.Update())
	assert.True(t, g.Loop().Running())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ} {
		g, keys := newTestGame(t)
		keys[k] = true
		err := g.Update()
		assert.True(t, errors.Is(err, ebiten.Termination), "key %v", k)
	}
}

func TestLayoutResizesCanvas(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	cw, ch := g.net.Size()
	assert.Equal(t, 1024.0, cw)
	assert.Equal(t, 768.0, ch)
	assert.Equal(t, config.Calm.ParticleCount, g.net.Len())
}

func TestStatusReportsPause(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Contains(t, g.status(), "running")
	g.Loop().Stop()
	assert.Contains(t, g.status(), "paused")
	assert.Contains(t, g.status(), "preset calm")
}
