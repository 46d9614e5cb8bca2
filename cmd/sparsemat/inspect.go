package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsemat/internal/render"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/scott-cotton/cli"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires one matrix file", cli.ErrUsage)
	}
	m, err := loadMatrix(cfg.main, args[0])
	if err != nil {
		return err
	}
	stats, err := sparse.Summarize(m)
	if err != nil {
		return err
	}
	if err := render.Summary(cc.Out, args[0], stats); err != nil {
		return err
	}

	if !cfg.Grid && !render.Fits(m.Rows(), m.Cols(), cfg.main.Settings.ShowLimit) {
		_, err = fmt.Fprintf(cc.Out, "  grid omitted (%dx%d exceeds showLimit %d)\n",
			m.Rows(), m.Cols(), cfg.main.Settings.ShowLimit)
		return err
	}
	err = render.Grid(cc.Out, m)
	if errors.Is(err, sparse.ErrOutOfRange) {
		_, err = fmt.Fprintf(cc.Out, "  grid omitted (%d entries outside the declared shape)\n", stats.OutOfShape)
	}

	return err
}

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info requires at least one matrix file", cli.ErrUsage)
	}
	for _, path := range args {
		m, err := loadMatrix(cfg.main, path)
		if err != nil {
			return err
		}
		stats, err := sparse.Summarize(m)
		if err != nil {
			return err
		}
		if err := render.Summary(cc.Out, path, stats); err != nil {
			return err
		}
	}

	return nil
}
