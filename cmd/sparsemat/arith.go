package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemat/internal/prompt"
	"github.com/katalvlaran/sparsemat/internal/textdiff"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/scott-cotton/cli"
)

func arith(cfg *ArithConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: %s requires two matrix files", cli.ErrUsage, cfg.op)
	}
	if cfg.Yes && cfg.No {
		return fmt.Errorf("%w: -yes and -no are exclusive", cli.ErrUsage)
	}
	a, b, err := loadOperands(cfg.main, args[0], args[1])
	if err != nil {
		return err
	}

	confirm := prompt.New(cc.In, cc.Out).Confirmer()
	switch {
	case cfg.Yes:
		confirm = sparse.Always
	case cfg.No:
		confirm = sparse.Never
	}
	res, err := compute(cfg.op, a, b, cfg.main.engineOpts(confirm)...)

	return report(cfg.main, cc.Out, cfg.Out, res, err)
}

// check computes op over a and b and diffs the canonical encoding of the
// result against the canonical encoding of the expected file.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: check requires an operation and three matrix files", cli.ErrUsage)
	}
	op := args[0]
	a, b, err := loadOperands(cfg.main, args[1], args[2])
	if err != nil {
		return err
	}
	want, err := loadMatrix(cfg.main, args[3])
	if err != nil {
		return err
	}

	confirm := sparse.Never
	if cfg.Yes {
		confirm = sparse.Always
	}
	got, err := compute(op, a, b, cfg.main.engineOpts(confirm)...)
	if err != nil {
		return err
	}

	wantText, err := sparse.Marshal(want)
	if err != nil {
		return err
	}
	gotText, err := sparse.Marshal(got)
	if err != nil {
		return err
	}
	same, err := textdiff.Lines(cc.Out, string(wantText), string(gotText))
	if err != nil {
		return err
	}
	if !same {
		fmt.Fprintf(os.Stderr, "%s %s %s differs from %s\n", op, args[1], args[2], args[3])
		return cli.ExitCodeErr(1)
	}
	_, err = fmt.Fprintf(cc.Out, "ok %s %s %s\n", op, args[1], args[2])

	return err
}
