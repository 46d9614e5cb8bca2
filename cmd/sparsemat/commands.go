package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "sparsemat").
		WithSynopsis("sparsemat [opts] command [opts]").
		WithDescription("sparsemat adds, subtracts and multiplies sparse integer matrices stored as text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sparseMain(cfg, cc, args)
		}).
		WithSubs(
			ArithCommand(cfg, "add", "Add two matrices and save the sum."),
			ArithCommand(cfg, "sub", "Subtract the second matrix from the first and save the difference."),
			ArithCommand(cfg, "mul", "Multiply two matrices and save the product."),
			CheckCommand(cfg),
			ShowCommand(cfg),
			InfoCommand(cfg),
			TransformCommand(cfg, false),
			TransformCommand(cfg, true),
			GenCommand(cfg),
			InteractiveCommand(cfg))
}

func ArithCommand(mainCfg *MainConfig, name, desc string) *cli.Command {
	cfg := &ArithConfig{main: mainCfg, op: name}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, name).
		WithSynopsis(name + " [-yes|-no] [-o file] <a> <b>").
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return arith(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check [-yes] <add|sub|mul> <a> <b> <expected>").
		WithDescription("Compute a result and diff it against an expected matrix file.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "show").
		WithSynopsis("show [-grid] <file>").
		WithDescription("Print a matrix summary and, when small enough, its grid.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "info").
		WithSynopsis("info <file>...").
		WithDescription("Print shape and statistics of matrix files.").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func TransformCommand(mainCfg *MainConfig, filter bool) *cli.Command {
	cfg := &TransformConfig{main: mainCfg, filter: filter}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	name, desc := "map", "Rewrite every stored value with an expression."
	if filter {
		name, desc = "filter", "Keep the stored entries for which an expression is true."
	}
	return cli.NewCommandAt(&cfg.Command, name).
		WithSynopsis(name + " -e expr [-o file] <file>").
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return transform(cfg, cc, args)
		})
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{main: mainCfg, Min: -9, Max: 9, Density: 0.1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "density",
		Description: "probability that a cell is stored (default 0.1)",
		Type:        cli.NamedFuncOpt(cfg.densityOpt, "(0..1)"),
	})
	return cli.NewCommandAt(&cfg.Command, "gen").
		WithSynopsis("gen -rows n -cols m [-density p] [-seed s] [-min lo] [-max hi] [-o file]").
		WithDescription("Generate a random sparse matrix.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func InteractiveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InteractiveConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "interactive").
		WithAliases("i").
		WithSynopsis("interactive").
		WithDescription("Ask for two matrix files and an operator, then save the result.").
		WithRun(func(cc *cli.Context, args []string) error {
			return interactive(cfg, cc, args)
		})
}
