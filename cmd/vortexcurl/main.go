package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/vortexcurl/internal/analysis"
	"github.com/san-kum/vortexcurl/internal/config"
	"github.com/san-kum/vortexcurl/internal/gui"
	"github.com/san-kum/vortexcurl/internal/logging"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/viz"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

var (
	configFile string
	preset     string
	position   string
	playing    bool
	frameRate  int
	theme      string
	seed       int64
	logLevel   string
	logFile    string
	svgPath    string
)

// main registers the commands and runs the terminal view when no subcommand
// is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "vortexcurl",
		Short:        "local vs. bulk rotation in a Rankine vortex",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&position, "position", "center", "observation position (center, inner_edge, outer_flow)")
	pf.BoolVar(&playing, "playing", true, "start with the animation running")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.Int64Var(&seed, "seed", 0, "tracer layout seed (0 = random)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&logFile, "log-file", config.DefaultLogFile, "log file (empty to disable)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the visualization in a window",
		RunE:  runGUI,
	}

	positionsCmd := &cobra.Command{
		Use:   "positions",
		Short: "list observation positions",
		RunE:  listPositions,
	}

	classifyCmd := &cobra.Command{
		Use:   "classify [position]",
		Short: "print the classification of a position as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  classify,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot angular velocity, speed and curl against radius",
		RunE:  plotProfile,
	}
	profileCmd.Flags().StringVar(&svgPath, "svg", "", "also write the speed profile as svg")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames headlessly to svg or gif",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringP("out", "o", "vortex.svg", "output file (.svg or .gif)")
	snapshotCmd.Flags().Int("frames", 1, "frames to render")
	snapshotCmd.Flags().Int("width", 800, "image width")
	snapshotCmd.Flags().Int("height", 600, "image height")

	tourCmd := &cobra.Command{
		Use:   "tour [scenario.yaml]",
		Short: "replay a scripted tour into a gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTour,
	}
	tourCmd.Flags().StringP("out", "o", "tour.gif", "output gif")
	tourCmd.Flags().Int("frames", 120, "frames per position for the default tour")
	tourCmd.Flags().Int("width", 640, "image width")
	tourCmd.Flags().Int("height", 480, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, positionsCmd, classifyCmd, profileCmd, snapshotCmd, tourCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers explicitly set flags over the config file and preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("position") {
		p, err := vortex.ParsePosition(position)
		if err != nil {
			return nil, err
		}
		cfg.Position = p
	}
	if flags.Changed("playing") {
		cfg.Playing = playing
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	return cfg, cfg.Validate()
}

// setup resolves the config and builds the logger. Interactive views own the
// terminal, so they log to the file only.
func setup(cmd *cobra.Command, interactive bool) (*config.Config, zerolog.Logger, func() error, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	opts := logging.Options{Level: cfg.LogLevel, File: cfg.LogFile}
	if !interactive {
		opts.Console = os.Stderr
	}
	log, closeLog, err := logging.Setup(opts)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}
	log.Debug().
		Str("position", cfg.Position.String()).
		Bool("playing", cfg.Playing).
		Str("config", configFile).
		Str("preset", preset).
		Msg("config resolved")
	return cfg, log, closeLog, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	return viz.Run(viz.Options{
		Input:  viz.Input{Position: cfg.Position, Playing: cfg.Playing},
		FPS:    cfg.FPS,
		Seed:   cfg.Seed,
		Theme:  cfg.Theme,
		Logger: log,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	return gui.Run(gui.Options{
		Input:  viz.Input{Position: cfg.Position, Playing: cfg.Playing},
		FPS:    cfg.FPS,
		Seed:   cfg.Seed,
		Logger: log,
	})
}

func listPositions(cmd *cobra.Command, args []string) error {
	field := vortex.DefaultField()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tRADIUS\tLABEL\tOMEGA\tSPEED\tCURL\tFLOW")

	for _, p := range vortex.Positions {
		c, err := vortex.Classify(p)
		if err != nil {
			return err
		}
		prof := vortex.MustLookup(p)
		fmt.Fprintf(w, "%s\t%.0f\t%s\t%.4f\t%.3f\t%s\t%s\n",
			p, prof.Radius, c.Label,
			field.AngularVelocity(prof.Radius), field.Speed(prof.Radius),
			c.CurlState, c.FlowType)
	}
	return w.Flush()
}

func classify(cmd *cobra.Command, args []string) error {
	p := vortex.Center
	if len(args) == 1 {
		var err error
		if p, err = vortex.ParsePosition(args[0]); err != nil {
			return err
		}
	} else if cmd.Flags().Changed("position") {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		p = cfg.Position
	}

	c, err := vortex.Classify(p)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func plotProfile(cmd *cobra.Command, args []string) error {
	field := vortex.DefaultField()
	prof := analysis.SampleRadial(field, sim.MaxVisualRadius, 80)

	plots := []struct {
		data    []float64
		caption string
	}{
		{prof.Omega, "angular velocity ω(r)"},
		{prof.Speed, "tangential speed v(r) = ω·r"},
		{prof.Vorticity, "curl (vorticity) 2ω inside the core, 0 outside"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	r, v := prof.PeakSpeed()
	fmt.Printf("peak speed %.3f at r=%.0f (core radius %.0f)\n\n", v, r, field.CoreRadius)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tRADIUS\tTICKS/ORBIT\tSPIN TURNS/ORBIT")
	for _, p := range vortex.Positions {
		a, err := analysis.AuditOrbit(field, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.0f\t%d\t%.3f\n", p, a.Radius, a.TicksPerOrbit, a.SpinTurns)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if svgPath != "" {
		return writeProfileSVG(svgPath, prof)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPOSITION\tPLAYING")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%t\n", name, cfg.Position, cfg.Playing)
	}
	return w.Flush()
}
