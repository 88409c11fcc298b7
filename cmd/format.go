package cmd

import (
	"errors"

	"github.com/spf13/afero"
)

var errNotImplemented = errors.New("not implemented in this module: the HEDL canonicalizer is an out-of-scope adapter (see spec.md §1 Non-goals)")

// FormatCmd would canonicalize a single HEDL file. The canonicalizer is out
// of this module's core-parser scope, so this command reports that clearly
// instead of silently no-opping or reimplementing one here.
type FormatCmd struct {
	File string `arg:"" name:"file"`
}

func (c *FormatCmd) Run(fs afero.Fs) error { return errNotImplemented }

// BatchFormatCmd is the batch counterpart of FormatCmd, equally
// unimplemented for the same reason.
type BatchFormatCmd struct {
	Dir string `arg:"" name:"dir"`
}

func (c *BatchFormatCmd) Run(fs afero.Fs) error { return errNotImplemented }
