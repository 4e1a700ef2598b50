package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/iburimskiy/network-animation/internal/network"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Snapshot advances the network by frames steps and writes the last frame
// to path. The format follows the extension: .png or .svg.
func Snapshot(n *network.Network, frames int, path string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if frames < 1 {
		frames = 1
	}
	w, h := n.Size()
	width, height := int(w), int(h)

	loop := network.NewLoop(n, log)
	loop.Start()
	defer loop.Stop()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		r := NewRaster(width, height, Background)
		loop.Advance(frames, r)
		if err := r.SavePNG(path); err != nil {
			return err
		}
	case ".svg":
		v := NewVector(width, height, Background)
		loop.Advance(frames, v)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		if _, err := v.WriteTo(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close snapshot: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	log.Info("snapshot written",
		zap.String("path", path),
		zap.Int("frames", frames),
		zap.Int("width", width),
		zap.Int("height", height))
	return nil
}
