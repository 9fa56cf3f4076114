package main

import (
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/PedroHenriqueFerreira/TableauxSolver/encode"
	"github.com/PedroHenriqueFerreira/TableauxSolver/parse"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
	"github.com/PedroHenriqueFerreira/TableauxSolver/tabfile"
)

// view re-prints formulas canonically. Arguments are formula strings,
// or a single .tab file whose seeded signed formulas are shown.
func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if cfg.View != nil {
		var err error
		args, err = cfg.View.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires formulas or a .tab file", cli.ErrUsage)
	}
	eOpts := cfg.encodeOpts(cc)
	if len(args) == 1 && filepath.Ext(args[0]) == ".tab" {
		seq, err := tabfile.Load(args[0])
		if err != nil {
			return err
		}
		for _, p := range seq.Premises {
			sf := sequent.SignedFormula{Sign: sequent.T, Formula: p}
			if err := encode.Signed(cc.Out, sf, eOpts...); err != nil {
				return err
			}
			fmt.Fprintln(cc.Out)
		}
		sf := sequent.SignedFormula{Sign: sequent.F, Formula: seq.Conclusion}
		if err := encode.Signed(cc.Out, sf, eOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
		return nil
	}
	for _, arg := range args {
		y, err := parse.Parse([]byte(arg))
		if err != nil {
			return err
		}
		if err := encode.Formula(cc.Out, y, eOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
