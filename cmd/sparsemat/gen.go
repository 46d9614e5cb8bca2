package main

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/scott-cotton/cli"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: gen takes no arguments", cli.ErrUsage)
	}
	m, err := sparse.Random(cfg.Rows, cfg.Cols, cfg.Density,
		sparse.WithSeed(int64(cfg.Seed)),
		sparse.WithValueRange(int64(cfg.Min), int64(cfg.Max)))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.main.logger().Debug("generated", "rows", cfg.Rows, "cols", cfg.Cols,
		"density", cfg.Density, "seed", cfg.Seed, "nnz", m.NNZ())

	return writeMatrix(cc.Out, cfg.Out, m)
}
