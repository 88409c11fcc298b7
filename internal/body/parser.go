// Package body implements HEDL's indentation-sensitive body parser
// (spec.md §4.4, §4.6): a frame stack that tracks the plain-object/root
// nesting a "key:" line opens, and, inside a matrix list's frame, a second
// "row series" stack that tracks how deep a run of %NEST-chained "| ..."
// rows has descended. A frame's childIndent is the indent level its direct
// children live at; a dedent pops frames until the stack top's childIndent
// matches the new line's level, which holds exactly because every frame is
// pushed exactly one level below the line that opened it.
package body

import (
	"strings"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/header"
	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/lex"
	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/preprocess"
	"github.com/hedl-lang/hedl/internal/registry"
)

// Parser holds the mutable state of a single body-parsing run.
type Parser struct {
	lines  []preprocess.Line
	texts  []string // lines[i].Text, precomputed for lex.ReadBlockString
	pos    int
	header *header.Header
	reg    *registry.Registry
	lim    limits.Limits
	stack  []*frame
	stats  *Stats
}

// Parse decodes lines (the document body, i.e. everything after the "---"
// header separator) into doc.Root, registering every matrix-row id with reg
// as it goes. It returns parsing statistics and the first error
// encountered; there is no recovery, the first error wins.
func Parse(doc *astdoc.Document, lines []preprocess.Line, h *header.Header, reg *registry.Registry, lim limits.Limits) (*Stats, *hedlerr.Error) {
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}

	p := &Parser{
		lines:  lines,
		texts:  texts,
		header: h,
		reg:    reg,
		lim:    lim,
		stats:  newStats(),
	}
	p.stack = []*frame{{kind: frameRoot, childIndent: 0, object: doc.Root}}

	for p.pos < len(p.lines) {
		if err := p.step(); err != nil {
			return nil, err
		}
	}
	return p.stats, nil
}

func (p *Parser) step() *hedlerr.Error {
	line := p.lines[p.pos]

	indent, ierr := lex.CalculateIndent(line.Text)
	if ierr != nil {
		return hedlerr.At(hedlerr.Syntax, line.Number, "%s", ierr)
	}
	if indent == nil {
		p.pos++
		return nil
	}

	stripped := lex.StripComment(line.Text)
	var content string
	if indent.Spaces < len(stripped) {
		content = strings.TrimRight(stripped[indent.Spaces:], " \t")
	}
	if content == "" {
		p.pos++
		return nil
	}
	level := indent.Level

	for len(p.stack) > 1 && level < p.top().childIndent {
		p.popFrame()
	}
	top := p.top()

	if top.kind == frameList {
		if err := p.handleListLine(top, level, content, line); err != nil {
			return err
		}
		p.pos++
		return nil
	}

	if level > top.childIndent {
		return hedlerr.At(hedlerr.Syntax, line.Number, "unexpected indentation (expected level %d)", top.childIndent)
	}

	extra, err := p.handleKeyLine(top, content, line)
	if err != nil {
		return err
	}
	p.pos += 1 + extra
	return nil
}
