package main

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/internal/entryexpr"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/scott-cotton/cli"
)

func transform(cfg *TransformConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: one matrix file required", cli.ErrUsage)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: -e expression required", cli.ErrUsage)
	}
	m, err := loadMatrix(cfg.main, args[0])
	if err != nil {
		return err
	}

	var res *sparse.Matrix
	if cfg.filter {
		p, err := entryexpr.CompilePredicate(cfg.Expr)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res, err = sparse.Filter(m, p.For(m))
		if err != nil {
			return err
		}
	} else {
		v, err := entryexpr.CompileValue(cfg.Expr)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res, err = sparse.Map(m, v.For(m))
		if err != nil {
			return err
		}
		if cfg.main.Settings.PruneZeros {
			res = res.Prune()
		}
	}
	cfg.main.logger().Debug("transformed", "expr", cfg.Expr, "in", m.NNZ(), "out", res.NNZ())

	return writeMatrix(cc.Out, cfg.Out, res)
}
