// Package hedl implements the Hierarchical Entity Data Language parser: a
// token-efficient, indentation-sensitive configuration and data format
// designed to be cheap for an LLM to read and write. This package is the
// core engine (spec.md §1): preprocessing, header and body parsing, value
// inference, and two-phase reference resolution. Format adapters, a
// canonicalizer/linter, streaming wrappers, and language bindings are
// layered on top of this package and are not implemented here.
package hedl

import (
	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/body"
	"github.com/hedl-lang/hedl/internal/header"
	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/preprocess"
	"github.com/hedl-lang/hedl/internal/registry"
)

// ParseOptions configures a single parse (spec.md §6).
type ParseOptions struct {
	// Limits bounds the work this parse may perform.
	Limits limits.Limits
	// StrictRefs controls reference-resolution failure mode: true aborts
	// with a Reference error on any unresolved or ambiguous reference,
	// false leaves it unresolved in place.
	StrictRefs bool
}

// DefaultOptions returns strict-mode parsing with default limits.
func DefaultOptions(opts ...limits.Option) ParseOptions {
	return ParseOptions{Limits: limits.Apply(opts...), StrictRefs: true}
}

// Parse parses data in strict mode with default limits.
func Parse(data []byte) (*astdoc.Document, error) {
	return ParseWithOptions(data, DefaultOptions())
}

// ParseLenient parses data with default limits, leaving unresolved or
// ambiguous references in place instead of failing.
func ParseLenient(data []byte) (*astdoc.Document, error) {
	opts := DefaultOptions()
	opts.StrictRefs = false
	return ParseWithOptions(data, opts)
}

// ParseWithOptions parses data under the given options.
func ParseWithOptions(data []byte, opts ParseOptions) (*astdoc.Document, error) {
	doc, _, _, err := parse(data, opts)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate parses data and discards the result, for syntax checking.
func Validate(data []byte) error {
	_, err := Parse(data)
	return err
}

// DetailedResult carries the additive instrumentation exposed alongside a
// parsed Document: body-parser statistics (spec.md §4.4 per-line counters,
// surfaced for the `stats` CLI command) and the references left unresolved
// in lenient mode (surfaced for `lint`). Neither field affects what a
// strict-mode parse accepts or rejects.
type DetailedResult struct {
	Document   *astdoc.Document
	Stats      *body.Stats
	Unresolved []registry.Unresolved
}

// ParseDetailed parses data under opts and additionally returns the parse
// statistics and unresolved-reference list the CLI façade's `stats` and
// `lint` commands need. It is not part of the core's façade-facing API
// (spec.md §6 lists only Parse/ParseLenient/ParseWithOptions/Validate) but
// is exercised by the in-module CLI, which may import internal packages
// directly.
func ParseDetailed(data []byte, opts ParseOptions) (*DetailedResult, error) {
	doc, stats, unresolved, err := parse(data, opts)
	if err != nil {
		return nil, err
	}
	return &DetailedResult{Document: doc, Stats: stats, Unresolved: unresolved}, nil
}

func parse(data []byte, opts ParseOptions) (*astdoc.Document, *body.Stats, []registry.Unresolved, error) {
	lines, perr := preprocess.Run(data, opts.Limits)
	if perr != nil {
		return nil, nil, nil, perr
	}

	h, bodyStart, herr := header.Parse(lines, opts.Limits)
	if herr != nil {
		return nil, nil, nil, herr
	}
	if _, cerr := header.ChainDepth(h.Nests, opts.Limits.MaxNestDepth); cerr != nil {
		return nil, nil, nil, cerr
	}

	doc := astdoc.NewDocument()
	doc.Version = h.Version
	doc.Structs = h.Structs
	doc.Aliases = h.Aliases
	doc.Nests = h.Nests

	reg := registry.New()
	stats, berr := body.Parse(doc, lines.Slice()[bodyStart:], h, reg, opts.Limits)
	if berr != nil {
		return nil, nil, nil, berr
	}

	unresolved, rerr := registry.ResolveDocument(doc, reg, opts.StrictRefs)
	if rerr != nil {
		return nil, nil, nil, rerr
	}

	return doc, stats, unresolved, nil
}
