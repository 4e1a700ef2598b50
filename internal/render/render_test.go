package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/network-animation/internal/config"
	"github.com/iburimskiy/network-animation/internal/network"
)

func testNetwork(t *testing.T, cfg config.Config) *network.Network {
	t.Helper()
	n, err := network.New(cfg, 320, 240, network.WithRand(rand.New(rand.NewPCG(7, 11))))
	require.NoError(t, err)
	return n
}

func TestRasterDrawsParticles(t *testing.T) {
	n := testNetwork(t, config.Calm)
	r := NewRaster(320, 240, Background)
	n.Render(r)

	img := r.Image()
	for _, p := range n.Particles() {
		x, y := int(p.Pos.X), int(p.Pos.Y)
		if x <= 0 || y <= 0 || x >= 319 || y >= 239 {
			continue
		}
		cr, cg, cb, _ := img.At(x, y).RGBA()
		br, bg, bb, _ := Background.RGBA()
		assert.True(t, cr > br && cg > bg && cb > bb, "particle at (%d,%d) not drawn", x, y)
	}
}

func TestRasterClearUsesBackground(t *testing.T) {
	r := NewRaster(16, 16, Background)
	r.FillCircle(8, 8, 4, network.White(1))
	r.Clear()
	got := color.NRGBAModel.Convert(r.Image().At(8, 8)).(color.NRGBA)
	assert.Equal(t, Background, got)
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(32, 24, Background)
	r.Clear()
	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestVectorFrame(t *testing.T) {
	n := testNetwork(t, config.Dense)
	v := NewVector(320, 240, Background)
	n.Render(v)

	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.Equal(t, n.Len(), strings.Count(out, "<circle"))
	assert.Equal(t, len(n.Links()), strings.Count(out, "<line"))
	assert.Equal(t, 1, strings.Count(out, "</svg>"))
	assert.Contains(t, out, "stroke-width:1.3")
}

func TestVectorKeepsOnlyLastFrame(t *testing.T) {
	n := testNetwork(t, config.Calm)
	v := NewVector(320, 240, Background)
	l := network.NewLoop(n, nil)
	l.Start()
	l.Advance(3, v)

	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "<svg"))
	assert.Equal(t, n.Len(), strings.Count(buf.String(), "<circle"))
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "frame.png")
	require.NoError(t, Snapshot(testNetwork(t, config.Calm), 5, pngPath, nil))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())

	svgPath := filepath.Join(dir, "frame.svg")
	require.NoError(t, Snapshot(testNetwork(t, config.Calm), 5, svgPath, nil))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	err = Snapshot(testNetwork(t, config.Calm), 1, filepath.Join(dir, "frame.gif"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
