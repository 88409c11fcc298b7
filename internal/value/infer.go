// Package value implements HEDL's value inference: first-byte dispatch of a
// trimmed, comment-stripped token string into one of the Value variants
// (spec.md §4.5). Multi-line block strings are not handled here — they are
// lexically distinct (they need the document's raw line slice, not a single
// token) and are recognized and read by the body parser using
// internal/lex.ReadBlockString before value inference is ever invoked for
// that field.
package value

import (
	"math"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/lex"
)

// Context carries everything value inference needs besides the token
// itself: the alias table for '%' substitution, the current line (for
// error anchoring), and ditto support for matrix-list fields.
type Context struct {
	Aliases *orderedmap.OrderedMap[string, string]
	Line    int

	// InMatrixList is true when this field is being decoded as part of a
	// matrix row; ditto ('^') is a Syntax error outside a matrix list.
	InMatrixList bool
	// HasPreviousRow is true when a previous row exists in the current
	// matrix-list frame; ditto on row 0 is a Syntax error.
	HasPreviousRow bool
	// PreviousValue is the previous row's value for the column currently
	// being decoded; only meaningful when HasPreviousRow is true.
	PreviousValue astdoc.Value

	// MaxAliasRecursion bounds '%' expansion depth; zero means use the
	// package default of 8 (spec.md §4.7).
	MaxAliasRecursion int

	aliasDepth int
}

// Infer dispatches raw (already trimmed and comment-stripped) into a Value.
func Infer(raw string, ctx Context) (astdoc.Value, *hedlerr.Error) {
	if raw == "" {
		return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "empty value")
	}

	switch {
	case raw == "~" || raw == "null":
		return astdoc.Null(), nil
	case raw == "true":
		return astdoc.BoolValue(true), nil
	case raw == "false":
		return astdoc.BoolValue(false), nil
	case raw[0] == '^':
		return inferDitto(raw, ctx)
	case raw[0] == '@':
		ref, err := lex.ParseReference(raw)
		if err != nil {
			return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "%s", err)
		}
		return astdoc.ReferenceValue(ref), nil
	case raw[0] == '[':
		t, err := lex.ParseTensor(raw)
		if err != nil {
			return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "malformed tensor: %s", err)
		}
		return astdoc.TensorValue(t), nil
	case strings.HasPrefix(raw, "$("):
		return inferExpression(raw, ctx)
	case raw[0] == '%':
		return inferAlias(raw, ctx)
	case raw[0] == '"':
		return inferString(raw, ctx)
	case raw[0] == '-' || lex.IsASCIIDigit(raw[0]):
		return inferNumber(raw), nil
	default:
		return astdoc.StringValue(raw), nil
	}
}

func inferDitto(raw string, ctx Context) (astdoc.Value, *hedlerr.Error) {
	if raw != "^" {
		return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "ditto token must be exactly '^'")
	}
	if !ctx.InMatrixList {
		return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "ditto ('^') used outside a matrix list")
	}
	if !ctx.HasPreviousRow {
		return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "ditto ('^') on the first row of a matrix list")
	}
	return ctx.PreviousValue, nil
}

func inferExpression(raw string, ctx Context) (astdoc.Value, *hedlerr.Error) {
	depth := 0
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i != len(raw)-1 {
					return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "unexpected content after expression")
				}
				return astdoc.ExpressionValue(raw[2:i]), nil
			}
		}
	}
	return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "unterminated expression")
}

func inferAlias(raw string, ctx Context) (astdoc.Value, *hedlerr.Error) {
	maxDepth := ctx.MaxAliasRecursion
	if maxDepth == 0 {
		maxDepth = 8
	}
	if ctx.aliasDepth >= maxDepth {
		return astdoc.Value{}, hedlerr.At(hedlerr.Alias, ctx.Line, "alias expansion exceeded max recursion depth %d (cycle?)", maxDepth)
	}
	if ctx.Aliases == nil {
		return astdoc.Value{}, hedlerr.At(hedlerr.Alias, ctx.Line, "unknown alias %q", raw)
	}
	replacement, ok := ctx.Aliases.Get(raw)
	if !ok {
		return astdoc.Value{}, hedlerr.At(hedlerr.Alias, ctx.Line, "unknown alias %q", raw)
	}
	next := ctx
	next.aliasDepth++
	return Infer(strings.TrimSpace(replacement), next)
}

func inferString(raw string, ctx Context) (astdoc.Value, *hedlerr.Error) {
	if strings.HasPrefix(raw, `"""`) {
		if len(raw) < 6 || !strings.HasSuffix(raw, `"""`) {
			return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "unterminated block string")
		}
		// Block-string content is taken verbatim, no escape processing.
		return astdoc.StringValue(raw[3 : len(raw)-3]), nil
	}
	if len(raw) < 2 || raw[len(raw)-1] != '"' {
		return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "unterminated string")
	}
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(body) {
			return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "invalid escape sequence")
		}
		switch body[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			return astdoc.Value{}, hedlerr.At(hedlerr.Syntax, ctx.Line, "invalid escape sequence '\\%c'", body[i+1])
		}
		i++
	}
	return astdoc.StringValue(b.String()), nil
}

func inferNumber(raw string) astdoc.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return astdoc.IntValue(i)
	}
	// strconv.ParseFloat accepts "Inf"/"Infinity"/"NaN" spellings; spec.md
	// §4.5 requires those to fall through to string instead.
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return astdoc.StringValue(raw)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return astdoc.FloatValue(f)
	}
	return astdoc.StringValue(raw)
}
