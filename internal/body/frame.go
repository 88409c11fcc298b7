package body

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/lex"
	"github.com/hedl-lang/hedl/internal/preprocess"
	"github.com/hedl-lang/hedl/internal/value"
)

type frameKind int

const (
	frameRoot frameKind = iota
	frameObject
	frameList
)

// frame is one level of the body parser's indentation stack. childIndent is
// the indent level (not raw spaces) at which this frame's direct children
// live: Root.childIndent is 0, and a frame pushed by a "key:" line at level S
// gets childIndent S+1. A dedent to some level L pops frames until the stack
// top's childIndent equals L.
type frame struct {
	kind        frameKind
	childIndent int

	object *orderedmap.OrderedMap[string, *astdoc.Item] // frameRoot, frameObject
	list   *astdoc.MatrixList                            // frameList
	rows   []*rowSeries                                  // frameList: NEST chain stack
}

func (p *Parser) top() *frame { return p.stack[len(p.stack)-1] }

func (p *Parser) pushFrame(f *frame, line int) *hedlerr.Error {
	if len(p.stack)+1 > p.lim.MaxIndentDepth {
		return hedlerr.At(hedlerr.Security, line, "nesting exceeds max_indent_depth (%d)", p.lim.MaxIndentDepth)
	}
	p.stack = append(p.stack, f)
	if len(p.stack) > p.stats.MaxDepthReached {
		p.stats.MaxDepthReached = len(p.stack)
	}
	return nil
}

func (p *Parser) popFrame() {
	p.stack = p.stack[:len(p.stack)-1]
}

// handleKeyLine processes a "key:", "key: value", or "key: @Type" line
// belonging to an object or root frame. It returns the number of extra
// lines consumed beyond the current one (non-zero only for a block string).
func (p *Parser) handleKeyLine(top *frame, content string, line preprocess.Line) (int, *hedlerr.Error) {
	idx := strings.IndexByte(content, ':')
	if idx < 0 {
		return 0, hedlerr.At(hedlerr.Syntax, line.Number, "expected 'key:' or 'key: value'")
	}
	key := strings.TrimSpace(content[:idx])
	if !lex.IsValidKeyToken(key) {
		return 0, hedlerr.At(hedlerr.Syntax, line.Number, "invalid key %q", key)
	}
	if _, exists := top.object.Get(key); exists {
		return 0, hedlerr.At(hedlerr.Semantic, line.Number, "duplicate key %q", key)
	}
	if top.object.Len() >= p.lim.MaxObjectKeys {
		return 0, hedlerr.At(hedlerr.Security, line.Number, "object exceeds max_object_keys (%d)", p.lim.MaxObjectKeys)
	}

	p.stats.TotalKeys++
	if p.stats.TotalKeys > p.lim.MaxTotalKeys {
		return 0, hedlerr.At(hedlerr.Security, line.Number, "document exceeds max_total_keys (%d)", p.lim.MaxTotalKeys)
	}

	valuePart := strings.TrimSpace(content[idx+1:])
	level := top.childIndent

	switch {
	case valuePart == "":
		child := orderedmap.New[string, *astdoc.Item]()
		top.object.Set(key, astdoc.ObjectItem(child))
		return 0, p.pushFrame(&frame{kind: frameObject, childIndent: level + 1, object: child}, line.Number)

	case valuePart == `"""`:
		text, consumed, rerr := lex.ReadBlockString(p.texts, p.pos+1, p.lim.MaxBlockStringSize)
		if rerr != nil {
			return 0, hedlerr.At(hedlerr.Syntax, line.Number, "%s", rerr)
		}
		top.object.Set(key, astdoc.ScalarItem(astdoc.StringValue(text), line.Number))
		return consumed, nil

	default:
		if len(valuePart) > 1 && valuePart[0] == '@' {
			typeName := valuePart[1:]
			if schema, ok := p.header.Structs.Get(typeName); ok {
				list := &astdoc.MatrixList{TypeName: typeName, Schema: schema}
				top.object.Set(key, astdoc.ListItem(list))
				firstSeries := &rowSeries{typeName: typeName, schema: schema, indent: level + 1}
				return 0, p.pushFrame(&frame{kind: frameList, childIndent: level + 1, list: list, rows: []*rowSeries{firstSeries}}, line.Number)
			}
		}
		ctx := value.Context{Aliases: p.header.Aliases, Line: line.Number, MaxAliasRecursion: p.lim.MaxAliasRecursion}
		v, verr := value.Infer(valuePart, ctx)
		if verr != nil {
			return 0, verr
		}
		top.object.Set(key, astdoc.ScalarItem(v, line.Number))
		return 0, nil
	}
}
