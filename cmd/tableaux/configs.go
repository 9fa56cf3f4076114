package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/PedroHenriqueFerreira/TableauxSolver/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render output in color on terminals'"`
	V     bool `cli:"name=v aliases=verbose desc='trace the search on stderr'"`

	Main *cli.Command
}

func (cfg *MainConfig) encodeOpts(cc *cli.Context) []encode.EncodeOption {
	if !cfg.Color {
		return nil
	}
	f, ok := cc.Out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

type ProveConfig struct {
	*MainConfig
	Prove *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type TableConfig struct {
	*MainConfig
	Table *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}
