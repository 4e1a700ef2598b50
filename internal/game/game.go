package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/iburimskiy/network-animation/internal/network"
	"github.com/iburimskiy/network-animation/internal/render"
)

// Game hosts a network animation in an ebiten window. ebiten's tick is the
// frame scheduler and Layout doubles as the resize listener.
type Game struct {
	net    *network.Network
	loop   *network.Loop
	preset string
	log    *zap.Logger

	// input edge detection
	isKeyPressed func(ebiten.Key) bool
	prevKey      map[ebiten.Key]bool

	showStatus bool
}

// New wraps n and starts its loop.
func New(n *network.Network, preset string, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		net:          n,
		loop:         network.NewLoop(n, log),
		preset:       preset,
		log:          log,
		isKeyPressed: ebiten.IsKeyPressed,
		prevKey:      map[ebiten.Key]bool{},
	}
	g.loop.Start()
	return g
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := g.isKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func (g *Game) Update() error {
	if g.justPressed(ebiten.KeySpace) {
		g.loop.Toggle()
	}
	if g.justPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		g.log.Info("quit requested", zap.Uint64("frames", g.loop.Frames()))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(img *ebiten.Image) {
	g.loop.Frame(screen{img: img, bg: render.Background})

	if g.showStatus {
		ebitenutil.DebugPrintAt(img, g.status(), 12, 12)
	}
}

func (g *Game) status() string {
	state := "running"
	if !g.loop.Running() {
		state = "paused"
	}
	return fmt.Sprintf("%s | preset %s | %d particles | %d links | frame %d | %.0f FPS",
		state, g.preset, g.net.Len(), len(g.net.Links()), g.loop.Frames(), ebiten.ActualFPS())
}

// Layout keeps the canvas the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.net.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Loop exposes the run loop so callers can pause or resume it.
func (g *Game) Loop() *network.Loop { return g.loop }
