// Package preprocess implements the first stage of the HEDL pipeline
// (spec.md §4.1): whole-input UTF-8 validation, max-file-size enforcement,
// and splitting the input into a line index. It never strips comments
// eagerly — a '#' may appear inside a quoted string, and only a component
// that tracks quote context line-by-line (internal/lex.StripComment, driven
// by internal/body) can tell the difference.
package preprocess

import (
	"unicode/utf8"

	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/limits"
)

// Line is a single 1-based source line, already split from CRLF/LF input
// with its terminator removed. A trailing '\r' (from a CRLF file) is
// trimmed per-line rather than with a whole-buffer replace, so a lone '\r'
// inside a block string's raw content is preserved (see SPEC_FULL.md,
// "Supplemented features").
type Line struct {
	Number int
	Text   string
}

// Lines is the preprocessor's output: a view over the input's lines.
type Lines struct {
	lines []Line
}

// Len returns the number of lines.
func (l Lines) Len() int { return len(l.lines) }

// At returns the line at the given 0-based index.
func (l Lines) At(i int) Line { return l.lines[i] }

// Slice returns all lines, for callers that want to range over them
// directly (e.g. the header parser before handing the rest to the body
// parser).
func (l Lines) Slice() []Line { return l.lines }

// Run validates input and splits it into lines.
func Run(input []byte, lim limits.Limits) (Lines, *hedlerr.Error) {
	if int64(len(input)) > lim.MaxFileSize {
		return Lines{}, hedlerr.New(hedlerr.Security, "input exceeds max_file_size (%d bytes)", lim.MaxFileSize)
	}

	if off, ok := firstInvalidUTF8(input); !ok {
		return Lines{}, hedlerr.New(hedlerr.IO, "invalid UTF-8 at byte offset %d", off)
	}

	var out []Line
	lineNo := 1
	start := 0
	for i := 0; i <= len(input); i++ {
		if i == len(input) || input[i] == '\n' {
			text := string(input[start:i])
			if len(text) > 0 && text[len(text)-1] == '\r' {
				text = text[:len(text)-1]
			}
			if len(text) > lim.MaxLineLength {
				return Lines{}, hedlerr.At(hedlerr.Security, lineNo, "line exceeds max_line_length (%d bytes)", lim.MaxLineLength)
			}
			out = append(out, Line{Number: lineNo, Text: text})
			lineNo++
			start = i + 1
		}
	}

	return Lines{lines: out}, nil
}

// firstInvalidUTF8 reports the byte offset of the first invalid UTF-8
// sequence, or ok=true if the whole input is valid.
func firstInvalidUTF8(input []byte) (int, bool) {
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}
