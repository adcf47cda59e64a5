package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/vortexcurl/internal/analysis"
	"github.com/san-kum/vortexcurl/internal/automation"
	"github.com/san-kum/vortexcurl/internal/export"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/viz"
)

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	out, frames, width, height := headlessFlags(cmd)
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	playing := cfg.Playing
	scenario := &automation.Scenario{
		Name:  "snapshot",
		Steps: []automation.Step{{Position: cfg.Position, Playing: &playing, Frames: frames}},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene := sim.NewScene(sim.WithSeed(cfg.Seed))
	runner := &automation.Runner{
		Loop: viz.NewLoop(scene, viz.NewPainter(), log),
		Log:  log,
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".svg":
		svg := export.NewSVG(width, height)
		runner.Surface = svg
		if _, err := runner.Run(ctx, scenario); err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(svg.String()), 0644); err != nil {
			return err
		}
	case ".gif":
		raster := export.NewRaster(width, height)
		rec := export.NewGIFRecorder(cfg.FPS)
		runner.Surface = raster
		runner.OnFrame = func(step, frame int) error {
			rec.Capture(raster)
			return nil
		}
		if _, err := runner.Run(ctx, scenario); err != nil {
			return err
		}
		if err := rec.Save(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output %q: use .svg or .gif", out)
	}

	log.Info().Str("path", out).Int("frames", frames).Msg("snapshot written")
	return nil
}

func runTour(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	out, frames, width, height := headlessFlags(cmd)
	scenario := automation.DefaultTour(frames)
	if len(args) == 1 {
		if scenario, err = automation.LoadScenario(args[0]); err != nil {
			return err
		}
	}
	if err := scenario.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raster := export.NewRaster(width, height)
	rec := export.NewGIFRecorder(cfg.FPS)
	runner := &automation.Runner{
		Loop:    viz.NewLoop(sim.NewScene(sim.WithSeed(cfg.Seed)), viz.NewPainter(), log),
		Surface: raster,
		Log:     log,
		OnFrame: func(step, frame int) error {
			rec.Capture(raster)
			return nil
		},
	}

	log.Info().Str("scenario", scenario.Name).Int("frames", scenario.TotalFrames()).Msg("starting tour")
	results, err := runner.Run(ctx, scenario)
	if err != nil {
		return err
	}
	for i, r := range results {
		log.Info().
			Int("step", i+1).
			Str("position", r.Position.String()).
			Int("frames", r.Frames).
			Float64("orbital", r.OrbitalAngle).
			Float64("spin", r.SpinAngle).
			Msg("step done")
	}

	if err := rec.Save(out); err != nil {
		return err
	}
	log.Info().Str("path", out).Int("frames", rec.Len()).Msg("tour written")
	return nil
}

// headlessFlags reads the output flags shared by snapshot and tour.
func headlessFlags(cmd *cobra.Command) (out string, frames, width, height int) {
	flags := cmd.Flags()
	out, _ = flags.GetString("out")
	frames, _ = flags.GetInt("frames")
	width, _ = flags.GetInt("width")
	height, _ = flags.GetInt("height")
	return
}

func writeProfileSVG(path string, prof *analysis.RadialProfile) error {
	svg := export.ProfileToSVG(prof.Radii, prof.Speed, 640, 240, "#38bdf8")
	if svg == "" {
		return fmt.Errorf("profile has too few samples")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
