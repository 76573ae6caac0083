package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/internal/render"
	"github.com/katalvlaran/stepviz/player"
)

// env is filled by setup before any subcommand runs.
var env struct {
	cfg      config.Config
	logger   *slog.Logger
	renderer *render.Renderer
	json     bool
}

var rootCmd = &cobra.Command{
	Use:   "stepviz",
	Short: "Step-by-step animations of sorting, searching and pathfinding algorithms",
	Long: `stepviz runs classic algorithms one step at a time and draws every
intermediate state in the terminal, as NDJSON, or over HTTP.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and runs it until ctx
// is cancelled.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "YAML configuration file")
	f.Float64("speed", 1, "playback speed multiplier")
	f.Int64("seed", 0, "random seed (0 picks one from the clock)")
	f.Int("size", 20, "array length, grid side or node count for generated input")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.String("color", config.ColorAuto, "color output: auto, always or never")
	f.Bool("json", false, "write frames as NDJSON without pacing")
}

// setup loads the configuration file and applies explicitly set flags on top.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("speed") {
		cfg.Speed, _ = flags.GetFloat64("speed")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("size") {
		cfg.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	env.cfg = cfg
	env.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
	env.renderer = render.New(cfg.Color)
	env.json, _ = flags.GetBool("json")

	return nil
}

// play drives seq to the command output, drawn as text or NDJSON.
// Interrupting the program is not an error.
func play[S any](cmd *cobra.Command, seq iter.Seq[S], draw func(S) string, family catalog.Family, algo string, base time.Duration) error {
	out := cmd.OutOrStdout()
	frame := render.Frames(env.renderer, out, draw)
	if env.json {
		frame = render.NDJSON[S](out)
		base = 0
	}

	res, err := player.Play(cmd.Context(), seq, frame,
		player.WithSpeed(env.cfg.Speed),
		player.WithBase(base),
		player.WithLabels(string(family), algo),
		player.WithLogger(env.logger),
	)
	if errors.Is(err, context.Canceled) {
		env.logger.Info("interrupted", "frames", res.Frames)
		return nil
	}

	return err
}
