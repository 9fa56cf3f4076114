package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"

	"github.com/PedroHenriqueFerreira/TableauxSolver/oracle"
)

// tableMaxVars bounds the printed table to 2^6 rows.
const tableMaxVars = 6

func table(cfg *TableConfig, cc *cli.Context, args []string) error {
	if cfg.Table != nil {
		var err error
		args, err = cfg.Table.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	seq, err := loadTab(args)
	if err != nil {
		return err
	}
	vars := seq.Vars()
	sort.Strings(vars)
	if len(vars) > tableMaxVars {
		return fmt.Errorf("%w: table supports at most %d distinct atoms, got %d",
			cli.ErrUsage, tableMaxVars, len(vars))
	}
	prems := make([]*oracle.Program, len(seq.Premises))
	for i, p := range seq.Premises {
		if prems[i], err = oracle.Compile(p); err != nil {
			return err
		}
	}
	concl, err := oracle.Compile(seq.Conclusion)
	if err != nil {
		return err
	}

	for _, v := range vars {
		fmt.Fprintf(cc.Out, "%s ", v)
	}
	for i := range prems {
		fmt.Fprintf(cc.Out, "| P%d ", i+1)
	}
	fmt.Fprintf(cc.Out, "| C\n")
	for mask := 0; mask < 1<<len(vars); mask++ {
		env := oracle.Assignment(vars, mask)
		for _, v := range vars {
			fmt.Fprintf(cc.Out, "%s ", boolString(env[v]))
		}
		for _, prg := range prems {
			val, err := prg.Eval(env)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "| %s  ", boolString(val))
		}
		val, err := concl.Eval(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "| %s\n", boolString(val))
	}
	return nil
}

func boolString(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
