package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/cliconfig"
	"github.com/hedl-lang/hedl/internal/header"
	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/preprocess"
)

// InspectCmd prints a document's header: its version, directive names, and
// the names of its declared structs, aliases and %NEST parent types. Struct
// columns and nest child types are not printed, and the body is not parsed.
type InspectCmd struct {
	Files []string `arg:"" name:"file" help:"HEDL file(s) to inspect" predictor:"hedlfile"`
}

func (c *InspectCmd) Run(fs afero.Fs, cli *CLI) error {
	cfg, err := cliconfig.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lim := cfg.Limits.ApplyTo(limits.Default())
	color := wantColor(cli.NoColor)

	failures := 0
	for _, path := range c.Files {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		lines, perr := preprocess.Run(data, lim)
		if perr != nil {
			fmt.Fprint(os.Stderr, renderError(path, perr, data, color))
			failures++
			continue
		}
		h, _, herr := header.Parse(lines, lim)
		if herr != nil {
			fmt.Fprint(os.Stderr, renderError(path, herr, data, color))
			failures++
			continue
		}

		fmt.Printf("%s\n", path)
		fmt.Printf("  version: %d.%d\n", h.Version.Major, h.Version.Minor)
		fmt.Printf("  directives: %s\n", strings.Join(h.Directives(), ", "))
		fmt.Printf("  structs: %s\n", strings.Join(astdoc.Keys(h.Structs), ", "))
		fmt.Printf("  aliases: %s\n", strings.Join(astdoc.Keys(h.Aliases), ", "))
		fmt.Printf("  nests: %s\n", strings.Join(astdoc.Keys(h.Nests), ", "))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failures, len(c.Files))
	}
	return nil
}
