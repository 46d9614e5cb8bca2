package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sparsemat/internal/prompt"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/scott-cotton/cli"
)

const (
	banner      = "------ Welcome to the sparse matrix operator ------\n\n"
	opMenu      = "choose an operation:\n * for multiplication\n - for subtraction\n + for addition\n\n > "
	opMenuRetry = "Please choose:\n * for multiplication\n - for subtraction\n + for addition\n\n > "
)

func interactive(cfg *InteractiveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: interactive takes no arguments", cli.ErrUsage)
	}
	p := prompt.New(cc.In, cc.Out)

	fmt.Fprint(cc.Out, banner)
	pathA, err := askPath(p, "Choose first file: ")
	if err != nil {
		return err
	}
	pathB, err := askPath(p, "Choose your second file: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	op, err := p.Choose(opMenu, opMenuRetry, "*", "-", "+")
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, "\nloading...\n\n")

	a, b, err := loadOperands(cfg.main, pathA, pathB)
	if err != nil {
		fmt.Fprintln(cc.Out, "Input file has wrong format!")
		return err
	}
	res, err := compute(op, a, b, cfg.main.engineOpts(p.Confirmer())...)
	if errors.Is(err, sparse.ErrIncompatibleDimensions) {
		fmt.Fprintln(cc.Out, "Multiplication is impossible with different dimensions!")
		fmt.Fprintln(cc.Out, "Operation cancelled!")
		err = fmt.Errorf("%w: %w", sparse.ErrCancelled, err)
	}

	return report(cfg.main, cc.Out, "", res, err)
}

// askPath asks question until the answer names an existing file.
func askPath(p *prompt.Prompter, question string) (string, error) {
	path, err := p.Ask(question)
	for {
		if err != nil {
			return "", err
		}
		if st, serr := os.Stat(strings.TrimSpace(path)); serr == nil && !st.IsDir() {
			return path, nil
		}
		path, err = p.Ask("Please input a valid file path: ")
	}
}
