package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl"
	"github.com/hedl-lang/hedl/internal/cliconfig"
)

// ValidateCmd parses one or more HEDL files and reports any error.
type ValidateCmd struct {
	Files   []string `arg:"" name:"file" help:"HEDL file(s) to validate" predictor:"hedlfile"`
	Lenient bool     `help:"Leave unresolved references in place instead of erroring"`
}

func (c *ValidateCmd) Run(fs afero.Fs, cli *CLI) error {
	opts, err := parseOptionsFromConfig(c.Lenient)
	if err != nil {
		return err
	}
	color := wantColor(cli.NoColor)

	failures := 0
	for _, path := range c.Files {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}
		if _, perr := hedl.ParseWithOptions(data, opts); perr != nil {
			fmt.Fprint(os.Stderr, renderError(path, perr, data, color))
			failures++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(c.Files))
	}
	return nil
}

func parseOptionsFromConfig(lenient bool) (hedl.ParseOptions, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return hedl.ParseOptions{}, fmt.Errorf("load config: %w", err)
	}
	opts := hedl.DefaultOptions()
	opts.Limits = cfg.Limits.ApplyTo(opts.Limits)
	opts.StrictRefs = cfg.Strict() && !lenient
	return opts, nil
}

func wantColor(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
