// Package registry implements HEDL's two-phase reference resolver
// (spec.md §4.7): a TypeRegistry populated incrementally while the body
// parser decodes matrix rows, and a resolution pass that runs once body
// parsing completes, walking every Value::Reference in the document.
package registry

import (
	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/hedl-lang/hedl/internal/hedlerr"
)

// Registry is the TypeRegistry of spec.md §4.7: by_type maps a type name to
// an id -> line map, and by_id maps an id to every type name that declares
// it, in first-seen order, so an unqualified reference can detect ambiguity.
type Registry struct {
	byType map[string]map[string]int
	byID   map[string][]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byType: make(map[string]map[string]int),
		byID:   make(map[string][]string),
	}
}

// Register records that (typeName, id) was declared at line. It returns a
// Collision error if that (typeName, id) pair was already registered.
func (r *Registry) Register(typeName, id string, line int) *hedlerr.Error {
	ids, ok := r.byType[typeName]
	if !ok {
		ids = make(map[string]int)
		r.byType[typeName] = ids
	}
	if prevLine, exists := ids[id]; exists {
		return hedlerr.At(hedlerr.Collision, line, "duplicate id %q for type %q (first declared at line %d)", id, typeName, prevLine)
	}
	ids[id] = line

	types := r.byID[id]
	for _, t := range types {
		if t == typeName {
			return nil
		}
	}
	r.byID[id] = append(types, typeName)
	return nil
}

// resolveOne resolves a single reference against the registry.
func (r *Registry) resolveOne(ref astdoc.Reference, line int, strict bool) (astdoc.Reference, *hedlerr.Error) {
	if ref.TypeKnown {
		ids, ok := r.byType[ref.TypeName]
		if !ok {
			return unresolved(ref, line, strict, "unresolved reference %s", ref.String())
		}
		if _, ok := ids[ref.ID]; !ok {
			return unresolved(ref, line, strict, "unresolved reference %s", ref.String())
		}
		ref.Resolved = true
		return ref, nil
	}

	types := r.byID[ref.ID]
	switch len(types) {
	case 0:
		return unresolved(ref, line, strict, "unresolved reference %s", ref.String())
	case 1:
		ref.TypeName = types[0]
		ref.TypeKnown = true
		ref.Resolved = true
		return ref, nil
	default:
		return unresolved(ref, line, strict, "ambiguous reference %s: matches types %v", ref.String(), types)
	}
}

func unresolved(ref astdoc.Reference, line int, strict bool, format string, args ...any) (astdoc.Reference, *hedlerr.Error) {
	if strict {
		return ref, hedlerr.At(hedlerr.Reference, line, format, args...)
	}
	ref.Resolved = false
	return ref, nil
}

// Unresolved is a single unresolved-reference location, reported by the
// lint CLI command in lenient mode.
type Unresolved struct {
	Line int
	Ref  astdoc.Reference
}

// ResolveDocument walks every Value::Reference reachable from doc (scalar
// root items, object items recursively, and matrix-list row fields and
// their nested NEST children) and resolves each one in place. It returns
// the list of references left unresolved (always empty in strict mode,
// since an unresolved reference in strict mode instead aborts with an
// error).
func ResolveDocument(doc *astdoc.Document, reg *Registry, strict bool) ([]Unresolved, *hedlerr.Error) {
	var unresolvedRefs []Unresolved

	var resolveValue func(v *astdoc.Value, line int) *hedlerr.Error
	resolveValue = func(v *astdoc.Value, line int) *hedlerr.Error {
		if v.Kind != astdoc.KindReference {
			return nil
		}
		resolved, err := reg.resolveOne(v.Ref, line, strict)
		if err != nil {
			return err
		}
		v.Ref = resolved
		if !resolved.Resolved {
			unresolvedRefs = append(unresolvedRefs, Unresolved{Line: line, Ref: resolved})
		}
		return nil
	}

	var walkItem func(item *astdoc.Item) *hedlerr.Error
	walkItem = func(item *astdoc.Item) *hedlerr.Error {
		switch item.Kind {
		case astdoc.ItemScalar:
			return resolveValue(&item.Scalar, item.Line)
		case astdoc.ItemObject:
			for pair := item.Object.Oldest(); pair != nil; pair = pair.Next() {
				if err := walkItem(pair.Value); err != nil {
					return err
				}
			}
			return nil
		case astdoc.ItemList:
			return walkList(item.List)
		}
		return nil
	}

	var walkNodes func(nodes []*astdoc.Node) *hedlerr.Error
	walkNodes = func(nodes []*astdoc.Node) *hedlerr.Error {
		for _, node := range nodes {
			for i := range node.Fields {
				if err := resolveValue(&node.Fields[i], node.Line); err != nil {
					return err
				}
			}
			if node.Children != nil {
				for pair := node.Children.Oldest(); pair != nil; pair = pair.Next() {
					if err := walkNodes(pair.Value); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	var walkList func(l *astdoc.MatrixList) *hedlerr.Error
	walkList = func(l *astdoc.MatrixList) *hedlerr.Error {
		return walkNodes(l.Rows)
	}

	for pair := doc.Root.Oldest(); pair != nil; pair = pair.Next() {
		if err := walkItem(pair.Value); err != nil {
			return nil, err
		}
	}

	return unresolvedRefs, nil
}
