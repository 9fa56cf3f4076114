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
	return cli.NewCommandAt(&cfg.Main, "tableaux").
		WithSynopsis("tableaux [opts] [command [opts]] file.tab").
		WithDescription("tableaux decides propositional sequents by the method of analytic tableaux.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tableauxMain(cfg, cc, args)
		}).
		WithSubs(
			ProveCommand(cfg),
			CheckCommand(cfg),
			TableCommand(cfg),
			ViewCommand(cfg))
}

func ProveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("prove").
		WithAliases("p").
		WithSynopsis("prove [opts] file.tab").
		WithDescription("decide the sequent in a .tab file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return prove(cfg, cc, args)
		})
	cfg.Prove = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [opts] file.tab").
		WithDescription("run the tableau engine and a SAT oracle and compare verdicts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("table").
		WithAliases("t").
		WithSynopsis("table [opts] file.tab").
		WithDescription("print the truth table of the sequent in a .tab file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return table(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [opts] [formulas]").
		WithDescription("parse formulas and re-print them canonically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
