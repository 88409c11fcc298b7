package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/hedl-lang/hedl"
)

// StatsCmd prints the body parser's side-channel instrumentation for a
// document: total keys/rows processed, max frame-stack depth reached, and a
// per-type row count breakdown.
type StatsCmd struct {
	Files []string `arg:"" name:"file" help:"HEDL file(s) to report stats for" predictor:"hedlfile"`
}

func (c *StatsCmd) Run(fs afero.Fs, cli *CLI) error {
	opts, err := parseOptionsFromConfig(false)
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

		fmt.Printf("%s\n", path)
		fmt.Printf("  total_keys: %d\n", result.Stats.TotalKeys)
		fmt.Printf("  max_depth_reached: %d\n", result.Stats.MaxDepthReached)

		types := make([]string, 0, len(result.Stats.NodeCounts))
		for t := range result.Stats.NodeCounts {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  nodes[%s]: %d\n", t, result.Stats.NodeCounts[t])
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failures, len(c.Files))
	}
	return nil
}
