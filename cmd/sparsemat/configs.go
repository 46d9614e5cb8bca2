package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	ConfigPath string `cli:"name=config desc='settings file (default .sparsemat.yaml when present)'"`
	LogLevel   string `cli:"name=log desc='log level: debug, info, warn, error'"`
	LogJSON    bool   `cli:"name=logjson desc='log as json'"`
	Color      string `cli:"name=color desc='color output: auto, always, never'"`
	Prune      bool   `cli:"name=prune desc='drop zero-valued entries from results'"`

	Settings config.Config
	Log      *slog.Logger

	Main *cli.Command
}

// setup loads the settings file, applies flag overrides and initialises
// logging and color for w.
func (cfg *MainConfig) setup(w io.Writer) error {
	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		settings.Log.Level = cfg.LogLevel
	}
	if cfg.LogJSON {
		settings.Log.Format = "json"
	}
	if cfg.Color != "" {
		settings.Color = cfg.Color
	}
	if cfg.Prune {
		settings.PruneZeros = true
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	cfg.Settings = settings
	cfg.Log = logging.Init(os.Stderr, settings.Log.Level, settings.Log.Format)
	applyColorMode(settings.Color, w)
	cfg.Log.Debug("settings loaded", "config", cfg.ConfigPath, "outputDir", settings.OutputDir,
		"color", settings.Color, "pruneZeros", settings.PruneZeros)

	return nil
}

// logger returns the configured logger, falling back to the slog default
// when a subcommand runs without the root setup (tests).
func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Log == nil {
		return slog.Default()
	}
	return cfg.Log
}

// engineOpts maps settings onto sparse options.
func (cfg *MainConfig) engineOpts(confirm sparse.Confirmer) []sparse.Option {
	return []sparse.Option{
		sparse.WithConfirm(confirm),
		sparse.WithPruneZeros(cfg.Settings.PruneZeros),
	}
}

func applyColorMode(mode string, w io.Writer) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		f, ok := w.(*os.File)
		color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}

type ArithConfig struct {
	main *MainConfig
	op   string

	Yes bool   `cli:"name=yes desc='proceed on a dimension mismatch without asking'"`
	No  bool   `cli:"name=no desc='cancel on a dimension mismatch without asking'"`
	Out string `cli:"name=o desc='output file, - for stdout (default: next free results<N>.txt)'"`

	Command *cli.Command
}

type CheckConfig struct {
	main *MainConfig

	Yes bool `cli:"name=yes desc='proceed on a dimension mismatch without asking'"`

	Command *cli.Command
}

type ShowConfig struct {
	main *MainConfig

	Grid bool `cli:"name=grid desc='always render the grid, ignoring showLimit'"`

	Command *cli.Command
}

type InfoConfig struct {
	main *MainConfig

	Command *cli.Command
}

type TransformConfig struct {
	main   *MainConfig
	filter bool

	Expr string `cli:"name=e desc='expression over row, col, value, rows, cols'"`
	Out  string `cli:"name=o desc='output file (default stdout)'"`

	Command *cli.Command
}

type GenConfig struct {
	main *MainConfig

	Rows    int    `cli:"name=rows desc='number of rows'"`
	Cols    int    `cli:"name=cols desc='number of columns'"`
	Seed    int    `cli:"name=seed desc='random seed (0 selects the fixed default)'"`
	Min     int    `cli:"name=min desc='smallest generated value'"`
	Max     int    `cli:"name=max desc='largest generated value'"`
	Out     string `cli:"name=o desc='output file (default stdout)'"`
	Density float64

	Command *cli.Command
}

func (cfg *GenConfig) densityOpt(_ *cli.Context, v string) (any, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: density: %w", cli.ErrUsage, err)
	}
	cfg.Density = d
	return d, nil
}

type InteractiveConfig struct {
	main *MainConfig

	Command *cli.Command
}
