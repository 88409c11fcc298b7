package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl"
)

// LintCmd parses one or more HEDL files in lenient mode, reporting both
// parse errors and unresolved references left in place.
type LintCmd struct {
	Files []string `arg:"" name:"file" help:"HEDL file(s) to lint" predictor:"hedlfile"`
}

func (c *LintCmd) Run(fs afero.Fs, cli *CLI) error {
	opts, err := parseOptionsFromConfig(true)
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

		result, perr := hedl.ParseDetailed(data, opts)
		if perr != nil {
			fmt.Fprint(os.Stderr, renderError(path, perr, data, color))
			failures++
			continue
		}

		if len(result.Unresolved) == 0 {
			fmt.Printf("%s: ok\n", path)
			continue
		}
		for _, u := range result.Unresolved {
			fmt.Printf("%s:%d: warning: unresolved reference %s\n", path, u.Line, u.Ref.String())
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failures, len(c.Files))
	}
	return nil
}
