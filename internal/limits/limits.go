// Package limits defines the defense-in-depth resource limits enforced
// throughout the HEDL parser (spec.md §4.8). A Limits value is an immutable
// record passed by value to every component that needs to check a
// threshold; there is no global/shared mutable state.
package limits

// Limits bounds the work a single parse may perform, so that parsing
// adversarial input is guaranteed to terminate in work linear in the
// smaller of input size and the product of these limits.
type Limits struct {
	// MaxFileSize bounds the raw input size in bytes.
	MaxFileSize int64
	// MaxLineLength bounds a single line's byte length.
	MaxLineLength int
	// MaxIndentDepth bounds the body parser's frame-stack depth.
	MaxIndentDepth int
	// MaxNestDepth bounds a %NEST parent->child chain length.
	MaxNestDepth int
	// MaxNodes bounds the row count of any single matrix list.
	MaxNodes int
	// MaxTotalKeys bounds the cumulative count of key assignments and rows
	// across the whole document.
	MaxTotalKeys int
	// MaxObjectKeys bounds the key count of any single object frame.
	MaxObjectKeys int
	// MaxColumns bounds the column count of any single %STRUCT.
	MaxColumns int
	// MaxAliases bounds the number of %ALIAS directives in the header.
	MaxAliases int
	// MaxBlockStringSize bounds the byte length of a single """ block string.
	MaxBlockStringSize int
	// MaxAliasRecursion bounds alias-expansion recursion depth during value
	// inference.
	MaxAliasRecursion int
}

// Default returns the limits named in spec.md §4.8.
func Default() Limits {
	return Limits{
		MaxFileSize:        1 << 30,    // 1 GiB
		MaxLineLength:      1 << 20,    // 1 MiB
		MaxIndentDepth:     50,
		MaxNestDepth:       100,
		MaxNodes:           10_000_000,
		MaxTotalKeys:       10_000_000,
		MaxObjectKeys:      10_000,
		MaxColumns:         100,
		MaxAliases:         10_000,
		MaxBlockStringSize: 10 << 20, // 10 MiB
		MaxAliasRecursion:  8,
	}
}

// Option mutates a Limits value. DefaultOptions (in package hedl) accepts a
// list of these so a caller can override individual fields without
// re-specifying the whole record — the same override-the-defaults shape as
// internal/cliconfig layers a hedl.yaml file on top of Default().
type Option func(*Limits)

// WithMaxNodes overrides MaxNodes.
func WithMaxNodes(n int) Option { return func(l *Limits) { l.MaxNodes = n } }

// WithMaxTotalKeys overrides MaxTotalKeys.
func WithMaxTotalKeys(n int) Option { return func(l *Limits) { l.MaxTotalKeys = n } }

// WithMaxIndentDepth overrides MaxIndentDepth.
func WithMaxIndentDepth(n int) Option { return func(l *Limits) { l.MaxIndentDepth = n } }

// WithMaxFileSize overrides MaxFileSize.
func WithMaxFileSize(n int64) Option { return func(l *Limits) { l.MaxFileSize = n } }

// Apply returns a copy of Default() with every option applied in order.
func Apply(opts ...Option) Limits {
	l := Default()
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
