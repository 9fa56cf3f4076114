package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
	"github.com/PedroHenriqueFerreira/TableauxSolver/tabfile"
)

func tableauxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
		err := sub.Run(cc, args[1:])
		if errors.Is(err, cli.ErrUsage) {
			sub.Usage(cc, err)
			os.Exit(sub.Exit(cc, err))
		}
		return err
	}
	// bare "tableaux file.tab" proves
	return prove(&ProveConfig{MainConfig: cfg}, cc, args)
}

// loadTab enforces the .tab extension and loads the sequent.
func loadTab(args []string) (*sequent.Sequent, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected one .tab file", cli.ErrUsage)
	}
	if filepath.Ext(args[0]) != ".tab" {
		return nil, fmt.Errorf("%w: %q is not a .tab file", tabfile.ErrInput, args[0])
	}
	return tabfile.Load(args[0])
}
