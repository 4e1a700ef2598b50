package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/network-animation/internal/config"
	"github.com/iburimskiy/network-animation/internal/game"
	"github.com/iburimskiy/network-animation/internal/network"
	"github.com/iburimskiy/network-animation/internal/render"
)

var (
	logger *zap.Logger

	presetName string
	seed       uint64
	width      int
	height     int
	verbose    bool

	frames  int
	outPath string
)

var rootCmd = &cobra.Command{
	Use:   "netanim",
	Short: "Animated particle network background",
	Long: `netanim draws moving dots joined by fading lines when they come close.

Space pauses and resumes, H toggles the status line, Esc or Q quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render frames off-screen and save the last one as PNG or SVG",
	Args:  cobra.NoArgs,
	RunE:  runSnapshot,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range config.PresetNames() {
			cfg, _ := config.Preset(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s particles=%d speed=%g connect=%g line-width=%g line-opacity=%g node-size=[%g,%g] node-opacity=%g\n",
				name, cfg.ParticleCount, cfg.ParticleSpeed, cfg.MaxConnectDistance,
				cfg.LineWidth, cfg.LineOpacity, cfg.MinSize, cfg.MaxSize, cfg.NodeOpacity)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", config.DefaultPreset, "value preset (see 'netanim presets')")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for particle placement (0 = random)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.WindowWidth, "canvas width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.WindowHeight, "canvas height in pixels")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	snapshotCmd.Flags().IntVarP(&frames, "frames", "n", 120, "frames to advance before capturing")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "network.png", "output file (.png or .svg)")

	rootCmd.AddCommand(snapshotCmd, presetsCmd)
}

func newNetwork() (*network.Network, error) {
	cfg, err := config.Preset(presetName)
	if err != nil {
		return nil, err
	}
	opts := []network.Option{network.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, network.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return network.New(cfg, float64(width), float64(height), opts...)
}

func runWindow(cmd *cobra.Command, args []string) error {
	n, err := newNetwork()
	if err != nil {
		return err
	}
	logger.Info("starting window",
		zap.String("preset", presetName),
		zap.Int("particles", n.Len()),
		zap.Int("width", width),
		zap.Int("height", height))

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(n, presetName, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	n, err := newNetwork()
	if err != nil {
		return err
	}
	return render.Snapshot(n, frames, outPath, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
