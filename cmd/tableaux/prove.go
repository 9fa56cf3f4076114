package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/PedroHenriqueFerreira/TableauxSolver/encode"
	"github.com/PedroHenriqueFerreira/TableauxSolver/tableau"
)

func prove(cfg *ProveConfig, cc *cli.Context, args []string) error {
	if cfg.Prove != nil {
		var err error
		args, err = cfg.Prove.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	seq, err := loadTab(args)
	if err != nil {
		return err
	}
	var popts []tableau.Option
	if cfg.V {
		// the trace goes to stderr so the verdict stays the only
		// line on stdout
		popts = append(popts, tableau.WithTrace(os.Stderr))
	}
	res := tableau.New(popts...).Run(seq)
	return encode.Verdict(cc.Out, res.Valid, res.Countermodel, cfg.encodeOpts(cc)...)
}
