package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"

	"github.com/PedroHenriqueFerreira/TableauxSolver/encode"
	"github.com/PedroHenriqueFerreira/TableauxSolver/oracle"
	"github.com/PedroHenriqueFerreira/TableauxSolver/tableau"
)

// check runs the tableau engine and the SAT oracle on the same sequent
// and fails when the verdicts disagree.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if cfg.Check != nil {
		var err error
		args, err = cfg.Check.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	seq, err := loadTab(args)
	if err != nil {
		return err
	}
	res := tableau.New().Run(seq)
	satValid, model := oracle.Valid(seq)

	eOpts := cfg.encodeOpts(cc)
	fmt.Fprintf(cc.Out, "tableau: %s\n", verdictString(res, eOpts))
	if satValid {
		fmt.Fprintf(cc.Out, "sat: %s\n", encode.ValidVerdict)
	} else {
		fmt.Fprintf(cc.Out, "sat: %s\n", modelString(model))
	}
	if res.Valid != satValid {
		return fmt.Errorf("verdicts disagree: tableau %v, sat %v", res.Valid, satValid)
	}
	fmt.Fprintln(cc.Out, "verdicts agree")
	return nil
}

func verdictString(res tableau.Result, opts []encode.EncodeOption) string {
	if res.Valid {
		return encode.ValidVerdict
	}
	return encode.Atoms(res.Countermodel, opts...)
}

func modelString(model map[string]bool) string {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	s := ""
	for i, name := range names {
		if i > 0 {
			s += " "
		}
		if model[name] {
			s += "T" + name
		} else {
			s += "F" + name
		}
	}
	return s
}
