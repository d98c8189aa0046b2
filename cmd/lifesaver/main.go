package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/lifesaver/internal/config"
	"github.com/san-kum/lifesaver/internal/life"
	"github.com/san-kum/lifesaver/internal/logging"
	"github.com/san-kum/lifesaver/internal/render"
	"github.com/san-kum/lifesaver/internal/screen"
	"github.com/san-kum/lifesaver/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	boundary   string
	seed       int64
	interval   time.Duration
	backend    string
	fill       string
	status     bool
	logFile    string
	logLevel   string
	// trace
	height      int
	width       int
	generations int
	dump        bool
	stopFixed   bool
	// config
	writePath string
)

// main runs the screensaver when no subcommand is given. It exits with
// status 1 if the command returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lifesaver:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lifesaver",
		Short:         "Game of Life terminal screensaver",
		Args:          cobra.NoArgs,
		RunE:          runSaver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&boundary, "boundary", config.DefaultBoundary, "edge policy ("+strings.Join(life.BoundaryNames(), ", ")+")")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.PersistentFlags().DurationVar(&interval, "interval", config.DefaultInterval, "time between generations")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", config.DefaultBackend, "terminal backend (bubbletea, tcell)")
	rootCmd.PersistentFlags().StringVar(&fill, "fill", config.DefaultFill, "live cell color (#rrggbb or ANSI number)")
	rootCmd.Flags().BoolVar(&status, "status", false, "show a status line (bubbletea backend)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run generations headlessly and plot the population",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid rows")
	traceCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid columns")
	traceCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to run")
	traceCmd.Flags().BoolVar(&dump, "dump", false, "print the final grid")
	traceCmd.Flags().BoolVar(&stopFixed, "stop-at-fixed-point", true, "stop once the grid stops changing")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBOUNDARY\tINTERVAL\tBACKEND\tFILL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, p.Boundary, p.Interval, p.Backend, p.Fill)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "also save the configuration to this path")

	rootCmd.AddCommand(traceCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Lookup("backend") != nil && flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Lookup("fill") != nil && flags.Changed("fill") {
		cfg.Fill = fill
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Trace.Height = height
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Trace.Width = width
	}
	if flags.Lookup("generations") != nil && flags.Changed("generations") {
		cfg.Trace.Generations = generations
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSaver(cmd *cobra.Command, args []string) (err error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(logFile, level)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeLog, "close log")

	b, _ := cfg.GridBoundary()
	rng := life.NewRNG(cfg.Seed)
	logger.Info("starting", "backend", cfg.Backend, "boundary", b, "interval", cfg.Interval, "seed", rng.Seed())

	switch cfg.Backend {
	case config.BackendTcell:
		s, serr := tcell.NewScreen()
		if serr != nil {
			return fmt.Errorf("create screen: %w", serr)
		}
		err = screen.New(s, screen.Options{
			Boundary: b,
			Interval: cfg.Interval,
			Fill:     render.Color(cfg.Fill),
			RNG:      rng,
			Logger:   logger,
		}).Run(cmd.Context())
	default:
		err = tui.Run(cmd.Context(), tui.Options{
			Boundary: b,
			Interval: cfg.Interval,
			Fill:     render.Color(cfg.Fill),
			RNG:      rng,
			Logger:   logger,
			Status:   status,
		})
	}
	if err != nil {
		logger.Error("terminal", "err", err)
	}
	return err
}

// closeInto runs closeFn and reports its failure through errp unless an
// earlier error is already set.
func closeInto(errp *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("%s: %w", what, cerr)
	}
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if writePath != "" {
		if err := config.Save(writePath, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", writePath)
	}
	return nil
}

func newStderrLogger(cmd *cobra.Command) (*log.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}
