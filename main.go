package main

import (
	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl/cmd"
	"github.com/hedl-lang/hedl/internal/cliconfig"
	"github.com/hedl-lang/hedl/internal/theme"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("hedl"),
		kong.Description("Parse and validate Hierarchical Entity Data Language documents"),
		kong.UsageOnError(),
	)

	cfg, err := cliconfig.Load()
	if err == nil {
		_ = theme.Load(cfg.Theme)
	}
	// Ignore errors - theme defaults to "default" if no config is found.

	err = ctx.Run(afero.NewOsFs(), cli)
	ctx.FatalIfErrorf(err)
}
