package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ftracker/internal/config"
	"ftracker/internal/packages"
	"ftracker/internal/report"
	"ftracker/internal/tui"
	"ftracker/internal/workout"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds command-line overrides of the config file
type options struct {
	configPath string
	input      string
	strict     bool
	style      string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "ftracker",
		Short: "Fitness tracker: distance, speed and calories from sensor packages",
		Long: "Reads sensor packages (" + strings.Join(workout.Codes(), ", ") + ") and prints one summary line per package.\n" +
			"Without --input the built-in sample packages are used.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(stderr, opts.verbose)
			cfg, err := loadConfig(cmd, opts, logger)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), stdout, cfg, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.ftracker/config.json)")
	flags.StringVarP(&opts.input, "input", "i", "", "YAML or JSON package file")
	flags.BoolVar(&opts.strict, "strict", false, "reject zero duration or height instead of printing Inf/NaN")
	flags.StringVar(&opts.style, "style", "", "TUI detail style: plain or card")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newTUICmd(&opts, stderr))
	root.AddCommand(newConfigCmd(&opts, stdout))
	return root
}

func newConfigCmd(opts *options, stdout io.Writer) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Manage the config file"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			created, err := config.CreateDefault(path)
			if err != nil {
				return fmt.Errorf("creating config: %w", err)
			}
			if created {
				fmt.Fprintf(stdout, "Created config file at %s\n", path)
			} else {
				fmt.Fprintf(stdout, "Config file already exists at %s\n", path)
			}
			return nil
		},
	})

	return cfgCmd
}

func newTUICmd(opts *options, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse workout summaries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(stderr, opts.verbose)
			cfg, err := loadConfig(cmd, *opts, logger)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file, falling back to defaults when there is
// none, then applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts options, logger *slog.Logger) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}

	switch {
	case errors.Is(err, config.ErrNoConfig) && opts.configPath == "":
		defaults := config.DefaultConfig()
		cfg = &defaults
		logger.Debug("no config file, using defaults")
	case err != nil:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path = opts.input
	}
	if flags.Changed("strict") {
		cfg.Validation.Strict = opts.strict
	}
	if flags.Changed("style") {
		cfg.Display.Style = opts.style
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFunc(cfg *config.Config) report.ReadFunc {
	if cfg.Validation.Strict {
		return workout.ReadStrict
	}
	return workout.Read
}

func runReport(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	pkgs, err := packages.Load(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}
	logger.Debug("packages loaded", slog.Int("count", len(pkgs)), slog.String("input", cfg.Input.Path))

	return report.NewWriter(w, readFunc(cfg), logger).WriteAll(ctx, pkgs)
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	pkgs, err := packages.Load(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	app := tui.NewApp(tui.BuildEntries(pkgs, readFunc(cfg)), cfg.Display.Style)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
