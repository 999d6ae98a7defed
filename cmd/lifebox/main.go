//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifebox/internal/app"
	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/log"
	"lifebox/internal/telemetry"
)

// Process exit codes.
const (
	exitOK           = 0
	exitUsage        = 1
	exitFile         = 2
	exitConfig       = 3
	exitPresentation = 4
	exitMemory       = 5
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return exitUsage
	}
	path := flag.Arg(0)

	log.Configure(opts.LogLevel, nil)
	logger := log.WithComponent("main")

	cfg, err := config.Load(path)
	if err != nil {
		logger.Error().Err(err).Msg("configuration load failed")
		return configExitCode(err)
	}

	grid, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		logger.Error().Err(err).Msg("grid allocation failed")
		return exitMemory
	}

	switch cfg.Mode {
	case config.ModeRandom:
		seed := life.Randomize(grid, cfg.Seed)
		logger.Info().Uint64("seed", seed).Int("rows", cfg.Rows).Int("cols", cfg.Cols).Msg("randomized grid")
	case config.ModeManual:
		if _, err := life.ApplyPattern(grid, path); err != nil {
			logger.Error().Err(err).Msg("pattern load failed")
			return configExitCode(err)
		}
	default:
		logger.Error().Str("mode", cfg.Mode).Msg("unknown configuration mode")
		return exitConfig
	}

	rec, err := telemetry.NewRecorder(opts.Stats)
	if err != nil {
		logger.Warn().Err(err).Msg("stats recording disabled")
	}

	game := app.New(grid, cfg, opts.Scale, rec)

	ebiten.SetWindowTitle("lifebox")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(cfg.Cols*opts.Scale, cfg.Rows*opts.Scale)

	runErr := ebiten.RunGame(game)

	if s := rec.Summary(); s.Generations > 0 {
		logger.Info().
			Int("generations", s.Generations).
			Float64("mean_alive", s.MeanAlive).
			Float64("stddev_alive", s.StdDevAlive).
			Float64("min_alive", s.MinAlive).
			Float64("max_alive", s.MaxAlive).
			Msg("run summary")
	}
	if err := rec.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing stats file failed")
	}

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		logger.Error().Err(runErr).Msg("presentation subsystem failed")
		return exitPresentation
	}
	return exitOK
}

// configExitCode maps configuration-phase errors to process exit codes.
func configExitCode(err error) int {
	var fe *config.FileError
	if errors.As(err, &fe) {
		return exitFile
	}
	return exitConfig
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <config_file>\n\n", os.Args[0])
	fmt.Fprint(w, `Configuration file format:
  @nrows <number>     - Number of grid rows
  @ncols <number>     - Number of grid columns
  @config <type>      - Configuration type (random|manual)
  @steps <number>     - Number of steps (optional, 0 = infinite)
  @seed <number>      - Random seed (optional, 0 = time-based)

For manual configuration, add:
  @grid
  <grid_rows>         - Pattern using 1/#/*/X for alive, 0/./<space> for dead

Controls:
  Left click          - Toggle cell state
  Space               - Delay the next step by 500ms
  R                   - Reset grid (random configs only)
  H                   - Toggle status overlay
  Q / Escape          - Exit

Flags:
`)
	flag.PrintDefaults()
}
