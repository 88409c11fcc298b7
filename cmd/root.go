package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI is the root command structure for kong.
type CLI struct {
	NoColor bool `help:"Disable colored diagnostic output" name:"no-color"`

	Validate      ValidateCmd      `cmd:"" help:"Parse and validate one or more HEDL files"`
	Lint          LintCmd          `cmd:"" help:"Validate in lenient mode, reporting unresolved references as warnings"`
	Inspect       InspectCmd       `cmd:"" help:"Print a parsed document's header and structure"`
	Stats         StatsCmd         `cmd:"" help:"Print body-parser statistics for a document"`
	BatchValidate BatchValidateCmd `cmd:"" name:"batch-validate" help:"Validate every HEDL file under a directory"`
	Format        FormatCmd        `cmd:"" help:"Canonicalize a HEDL file (not implemented in this module)"`
	BatchFormat   BatchFormatCmd   `cmd:"" name:"batch-format" help:"Canonicalize every HEDL file under a directory (not implemented in this module)"`
	Completion    kongcompletion.Completion `cmd:"" help:"Generate shell completions"`
}
