package body

import (
	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/lex"
	"github.com/hedl-lang/hedl/internal/preprocess"
	"github.com/hedl-lang/hedl/internal/value"
)

// rowSeries is one level of a matrix list's %NEST chain: a run of peer rows
// sharing a type, schema, and indent level. parent is nil for the
// top-level series (its rows land directly in the list), or the most
// recently decoded row of the enclosing series for a %NEST child series.
type rowSeries struct {
	typeName string
	schema   []string
	indent   int
	prevRow  *astdoc.Node
	parent   *astdoc.Node
}

// handleListLine processes one "| ..." row (or a deeper %NEST child row)
// inside a frameList frame.
func (p *Parser) handleListLine(top *frame, L int, content string, line preprocess.Line) *hedlerr.Error {
	for len(top.rows) > 1 && L < top.rows[len(top.rows)-1].indent {
		top.rows = top.rows[:len(top.rows)-1]
	}
	last := top.rows[len(top.rows)-1]

	switch {
	case L == last.indent:
		return p.decodeRowInto(top, last, content, line)

	case L == last.indent+1:
		if last.prevRow == nil {
			return hedlerr.At(hedlerr.Syntax, line.Number, "child row with no preceding row at this matrix-list level")
		}
		childType, ok := p.header.Nests.Get(last.typeName)
		if !ok {
			return hedlerr.At(hedlerr.OrphanRow, line.Number, "row nested under type %q, which has no %%NEST rule", last.typeName)
		}
		schema, _ := p.header.Structs.Get(childType)
		series := &rowSeries{typeName: childType, schema: schema, indent: L, parent: last.prevRow}
		top.rows = append(top.rows, series)
		if len(top.rows) > p.lim.MaxNestDepth {
			return hedlerr.At(hedlerr.Security, line.Number, "matrix-list nesting exceeds max_nest_depth (%d)", p.lim.MaxNestDepth)
		}
		return p.decodeRowInto(top, series, content, line)

	default:
		return hedlerr.At(hedlerr.Syntax, line.Number, "unexpected indentation inside matrix list")
	}
}

// decodeRowInto decodes one "| id, field, field..." row and appends the
// resulting Node to series, registering its (type, id) pair against the
// resolver.
func (p *Parser) decodeRowInto(top *frame, series *rowSeries, content string, line preprocess.Line) *hedlerr.Error {
	if len(content) < 2 || content[0] != '|' || content[1] != ' ' {
		return hedlerr.At(hedlerr.Syntax, line.Number, "expected a matrix row ('| ...')")
	}

	rawFields, cerr := lex.ParseCSVRow(content[2:])
	if cerr != nil {
		return hedlerr.At(hedlerr.Syntax, line.Number, "%s", cerr)
	}
	if len(rawFields) != len(series.schema) {
		return hedlerr.At(hedlerr.Shape, line.Number, "row has %d fields, struct %q declares %d columns", len(rawFields), series.typeName, len(series.schema))
	}

	id := rawFields[0]
	if !lex.IsValidIDToken(id) {
		return hedlerr.At(hedlerr.Syntax, line.Number, "invalid id %q", id)
	}

	values := make([]astdoc.Value, len(rawFields)-1)
	for i, raw := range rawFields[1:] {
		if raw == `"""` {
			return hedlerr.At(hedlerr.Syntax, line.Number, "block strings are not supported inside matrix row fields")
		}
		ctx := value.Context{
			Aliases:           p.header.Aliases,
			Line:              line.Number,
			InMatrixList:      true,
			HasPreviousRow:    series.prevRow != nil,
			MaxAliasRecursion: p.lim.MaxAliasRecursion,
		}
		if series.prevRow != nil {
			ctx.PreviousValue = series.prevRow.Fields[i]
		}
		v, verr := value.Infer(raw, ctx)
		if verr != nil {
			return verr
		}
		values[i] = v
	}

	if err := p.reg.Register(series.typeName, id, line.Number); err != nil {
		return err
	}

	node := astdoc.NewNode(series.typeName, id, line.Number, values)
	series.prevRow = node

	p.stats.TotalKeys++
	if p.stats.TotalKeys > p.lim.MaxTotalKeys {
		return hedlerr.At(hedlerr.Security, line.Number, "document exceeds max_total_keys (%d)", p.lim.MaxTotalKeys)
	}
	p.stats.NodeCounts[series.typeName]++

	if series.parent == nil {
		top.list.Rows = append(top.list.Rows, node)
		if len(top.list.Rows) > p.lim.MaxNodes {
			return hedlerr.At(hedlerr.Security, line.Number, "matrix list %q exceeds max_nodes (%d)", series.typeName, p.lim.MaxNodes)
		}
		return nil
	}

	existing, _ := series.parent.Children.Get(series.typeName)
	existing = append(existing, node)
	series.parent.Children.Set(series.typeName, existing)
	if len(existing) > p.lim.MaxNodes {
		return hedlerr.At(hedlerr.Security, line.Number, "matrix list %q exceeds max_nodes (%d)", series.typeName, p.lim.MaxNodes)
	}
	return nil
}
