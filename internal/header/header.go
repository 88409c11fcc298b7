// Package header implements the HEDL header parser (spec.md §4.3):
// %VERSION, %STRUCT, %ALIAS, %NEST directives, terminated by a bare "---"
// line.
package header

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/lex"
	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/preprocess"
)

// Header is the immutable result of parsing the directive block.
type Header struct {
	Version astdoc.Version
	Structs *orderedmap.OrderedMap[string, []string]
	Aliases *orderedmap.OrderedMap[string, string]
	Nests   *orderedmap.OrderedMap[string, string]

	directives []string
}

// Directives returns the name of every directive seen (without its leading
// '%', e.g. "VERSION"), in order — a debug accessor used by the `inspect`
// CLI command.
func (h *Header) Directives() []string { return h.directives }

// Parse consumes lines from the start of the document until a bare "---"
// line, returning the parsed Header and the 0-based index of the first body
// line (the line after "---"). %VERSION must be the first directive seen.
func Parse(lines preprocess.Lines, lim limits.Limits) (*Header, int, *hedlerr.Error) {
	h := &Header{
		Structs: orderedmap.New[string, []string](),
		Aliases: orderedmap.New[string, string](),
		Nests:   orderedmap.New[string, string](),
	}
	sawVersion := false
	sawAnyDirective := false

	for i := 0; i < lines.Len(); i++ {
		ln := lines.At(i)
		stripped := strings.TrimSpace(lex.StripComment(ln.Text))
		if stripped == "" {
			continue
		}
		if stripped == "---" {
			if !sawVersion {
				return nil, 0, hedlerr.At(hedlerr.Version, ln.Number, "missing %%VERSION directive")
			}
			return h, i + 1, nil
		}

		if stripped[0] != '%' {
			return nil, 0, hedlerr.At(hedlerr.Syntax, ln.Number, "expected a directive (%%NAME: ...) or '---'")
		}

		name, rest, ferr := splitDirective(stripped, ln.Number)
		if ferr != nil {
			return nil, 0, ferr
		}

		if !sawAnyDirective && name != "VERSION" {
			return nil, 0, hedlerr.At(hedlerr.Version, ln.Number, "%%VERSION must be the first directive")
		}
		sawAnyDirective = true

		var err *hedlerr.Error
		switch name {
		case "VERSION":
			if sawVersion {
				err = hedlerr.At(hedlerr.Version, ln.Number, "duplicate %%VERSION directive")
				break
			}
			h.Version, err = parseVersion(rest, ln.Number)
			sawVersion = err == nil
		case "STRUCT":
			err = parseStruct(h, rest, ln.Number, lim)
		case "ALIAS":
			err = parseAlias(h, rest, ln.Number, lim)
		case "NEST":
			err = parseNest(h, rest, ln.Number)
		default:
			err = hedlerr.At(hedlerr.Syntax, ln.Number, "unknown directive %%%s", name)
		}
		if err != nil {
			return nil, 0, err
		}
		h.directives = append(h.directives, name)
	}

	if !sawVersion {
		return nil, 0, hedlerr.New(hedlerr.Version, "missing %%VERSION directive")
	}
	return nil, 0, hedlerr.At(hedlerr.Syntax, lines.Len(), "missing '---' header/body separator")
}

func splitDirective(line string, lineNo int) (name, rest string, err *hedlerr.Error) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", hedlerr.At(hedlerr.Syntax, lineNo, "malformed directive: expected '%%NAME: ...'")
	}
	name = strings.TrimPrefix(line[:idx], "%")
	rest = strings.TrimSpace(line[idx+1:])
	return name, rest, nil
}

func parseVersion(rest string, lineNo int) (astdoc.Version, *hedlerr.Error) {
	parts := strings.SplitN(rest, ".", 2)
	if len(parts) != 2 {
		return astdoc.Version{}, hedlerr.At(hedlerr.Version, lineNo, "malformed %%VERSION, expected MAJOR.MINOR")
	}
	major, err1 := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	minor, err2 := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err1 != nil || err2 != nil {
		return astdoc.Version{}, hedlerr.At(hedlerr.Version, lineNo, "malformed %%VERSION, expected MAJOR.MINOR")
	}
	return astdoc.Version{Major: uint32(major), Minor: uint32(minor)}, nil
}

func parseStruct(h *Header, rest string, lineNo int, lim limits.Limits) *hedlerr.Error {
	idx := strings.IndexByte(rest, ':')
	if idx < 0 {
		return hedlerr.At(hedlerr.Schema, lineNo, "malformed %%STRUCT, expected 'Type: [col, ...]'")
	}
	typeName := strings.TrimSpace(rest[:idx])
	if !lex.IsValidTypeName(typeName) {
		return hedlerr.At(hedlerr.Schema, lineNo, "invalid type name %q", typeName)
	}
	if _, exists := h.Structs.Get(typeName); exists {
		return hedlerr.At(hedlerr.Schema, lineNo, "redeclaration of struct %q", typeName)
	}

	colsPart := strings.TrimSpace(rest[idx+1:])
	if !strings.HasPrefix(colsPart, "[") || !strings.HasSuffix(colsPart, "]") {
		return hedlerr.At(hedlerr.Schema, lineNo, "%%STRUCT columns must be bracketed: [col1, col2]")
	}
	colsPart = colsPart[1 : len(colsPart)-1]

	var cols []string
	seen := map[string]bool{}
	for _, raw := range strings.Split(colsPart, ",") {
		col := strings.TrimSpace(raw)
		if !lex.IsValidKeyToken(col) {
			return hedlerr.At(hedlerr.Schema, lineNo, "invalid column name %q in struct %q", col, typeName)
		}
		if seen[col] {
			return hedlerr.At(hedlerr.Schema, lineNo, "duplicate column %q in struct %q", col, typeName)
		}
		seen[col] = true
		cols = append(cols, col)
	}
	if len(cols) > lim.MaxColumns {
		return hedlerr.At(hedlerr.Security, lineNo, "struct %q exceeds max_columns (%d)", typeName, lim.MaxColumns)
	}

	h.Structs.Set(typeName, cols)
	return nil
}

func parseAlias(h *Header, rest string, lineNo int, lim limits.Limits) *hedlerr.Error {
	idx := strings.IndexByte(rest, ':')
	if idx < 0 {
		return hedlerr.At(hedlerr.Alias, lineNo, "malformed %%ALIAS, expected '%%name: value'")
	}
	name := strings.TrimSpace(rest[:idx])
	if !strings.HasPrefix(name, "%") {
		return hedlerr.At(hedlerr.Alias, lineNo, "alias name must start with '%%': %q", name)
	}
	val := unquoteAliasValue(strings.TrimSpace(rest[idx+1:]))

	if _, exists := h.Aliases.Get(name); exists {
		return hedlerr.At(hedlerr.Alias, lineNo, "duplicate alias %q", name)
	}
	if h.Aliases.Len() >= lim.MaxAliases {
		return hedlerr.At(hedlerr.Security, lineNo, "exceeds max_aliases (%d)", lim.MaxAliases)
	}

	h.Aliases.Set(name, val)
	return nil
}

func unquoteAliasValue(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseNest(h *Header, rest string, lineNo int) *hedlerr.Error {
	idx := strings.IndexByte(rest, '>')
	if idx < 0 {
		return hedlerr.At(hedlerr.Schema, lineNo, "malformed %%NEST, expected 'Parent > Child'")
	}
	parent := strings.TrimSpace(rest[:idx])
	child := strings.TrimSpace(rest[idx+1:])

	if _, ok := h.Structs.Get(parent); !ok {
		return hedlerr.At(hedlerr.Schema, lineNo, "%%NEST parent %q is not a declared struct", parent)
	}
	if _, ok := h.Structs.Get(child); !ok {
		return hedlerr.At(hedlerr.Schema, lineNo, "%%NEST child %q is not a declared struct", child)
	}
	if _, exists := h.Nests.Get(parent); exists {
		return hedlerr.At(hedlerr.Schema, lineNo, "%%NEST: %q already has a declared child type", parent)
	}

	h.Nests.Set(parent, child)
	return nil
}

// ChainDepth checks every %NEST chain rooted at a type with no parent and
// returns the length of the longest one found, or an error if it exceeds
// maxDepth.
func ChainDepth(nests *orderedmap.OrderedMap[string, string], maxDepth int) (int, *hedlerr.Error) {
	hasParent := map[string]bool{}
	for pair := nests.Oldest(); pair != nil; pair = pair.Next() {
		hasParent[pair.Value] = true
	}

	longest := 0
	for pair := nests.Oldest(); pair != nil; pair = pair.Next() {
		if hasParent[pair.Key] {
			continue
		}
		depth := 0
		cur := pair.Key
		visited := map[string]bool{}
		for {
			child, ok := nests.Get(cur)
			if !ok || visited[cur] {
				break
			}
			visited[cur] = true
			depth++
			if depth > maxDepth {
				return depth, hedlerr.New(hedlerr.Security, "%%NEST chain exceeds max_nest_depth (%d)", maxDepth)
			}
			cur = child
		}
		if depth > longest {
			longest = depth
		}
	}
	return longest, nil
}
