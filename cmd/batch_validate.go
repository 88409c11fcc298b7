package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl"
)

// BatchValidateCmd validates every file matching Pattern under Dir.
type BatchValidateCmd struct {
	Dir     string `arg:"" name:"dir" help:"Directory to scan" predictor:"dir"`
	Pattern string `default:"*.hedl" help:"Glob pattern for files to validate"`
	Lenient bool   `help:"Leave unresolved references in place instead of erroring"`
}

func (c *BatchValidateCmd) Run(fs afero.Fs, cli *CLI) error {
	opts, err := parseOptionsFromConfig(c.Lenient)
	if err != nil {
		return err
	}
	color := wantColor(cli.NoColor)

	var matches []string
	err = afero.Walk(fs, c.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(c.Pattern, filepath.Base(path))
		if matchErr != nil {
			return matchErr
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", c.Dir, err)
	}

	if len(matches) == 0 {
		fmt.Printf("no files matching %q under %s\n", c.Pattern, c.Dir)
		return nil
	}

	failures := 0
	for _, path := range matches {
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

	fmt.Printf("%d/%d files valid\n", len(matches)-failures, len(matches))
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(matches))
	}
	return nil
}
