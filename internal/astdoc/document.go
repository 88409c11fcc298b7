// Package astdoc defines the HEDL data model (spec.md §3): Document, Item,
// Value, MatrixList, Node, Reference and Tensor. It has no parsing logic of
// its own — the parser packages build values of these types, and adapters
// (out of scope for this module) consume them. Keeping the model in its own
// package lets both sides depend on it without depending on the parser.
package astdoc

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Version is a (major, minor) pair parsed from a %VERSION directive.
type Version struct {
	Major uint32
	Minor uint32
}

// Document is the root of a parsed HEDL file. All maps preserve insertion
// order, as required by spec.md §9 ("Ordered maps").
type Document struct {
	Version Version

	// Aliases maps %ALIAS name (including its leading '%') to its
	// replacement string, in declaration order.
	Aliases *orderedmap.OrderedMap[string, string]

	// Structs maps a %STRUCT type name to its ordered column-name schema.
	Structs *orderedmap.OrderedMap[string, []string]

	// Nests maps a parent type name to its single declared child type name.
	Nests *orderedmap.OrderedMap[string, string]

	// Root holds the top-level key -> Item tree.
	Root *orderedmap.OrderedMap[string, *Item]
}

// NewDocument returns an empty Document with all maps initialized.
func NewDocument() *Document {
	return &Document{
		Aliases: orderedmap.New[string, string](),
		Structs: orderedmap.New[string, []string](),
		Nests:   orderedmap.New[string, string](),
		Root:    orderedmap.New[string, *Item](),
	}
}

// ItemKind tags the variant held by an Item.
type ItemKind int

const (
	// ItemScalar holds a single Value.
	ItemScalar ItemKind = iota
	// ItemObject holds a nested key -> Item tree.
	ItemObject
	// ItemList holds a typed matrix list.
	ItemList
)

// Item is the tagged variant stored at every key in a Document or nested
// object: a scalar value, an arbitrary-depth plain object, or a typed
// matrix list.
type Item struct {
	Kind   ItemKind
	Scalar Value
	Object *orderedmap.OrderedMap[string, *Item]
	List   *MatrixList

	// Line is the 1-based source line the item's "key:" assignment was
	// read from, used to anchor reference-resolution errors on scalar
	// items (matrix-row fields carry their own line via Node.Line).
	Line int
}

// ScalarItem wraps v as a scalar Item assigned at line.
func ScalarItem(v Value, line int) *Item { return &Item{Kind: ItemScalar, Scalar: v, Line: line} }

// ObjectItem wraps m as an object Item.
func ObjectItem(m *orderedmap.OrderedMap[string, *Item]) *Item {
	return &Item{Kind: ItemObject, Object: m}
}

// ListItem wraps l as a list Item.
func ListItem(l *MatrixList) *Item { return &Item{Kind: ItemList, List: l} }

// MatrixList is a typed, schema-bound tabular collection of Nodes, written
// as a run of "| ..." rows under a "key: @Type" declaration.
type MatrixList struct {
	TypeName  string
	Schema    []string
	Rows      []*Node
	CountHint *int
}

// Node is a single matrix row / entity.
type Node struct {
	TypeName string
	ID       string
	// Line is the 1-based source line the row was parsed from, used to
	// anchor reference-resolution errors on the row's fields.
	Line int
	// Fields holds every column value except the id column (see the open
	// question recorded in DESIGN.md): len(Fields) == len(Schema)-1.
	Fields []Value
	// Children maps a %NEST child type name to the ordered list of child
	// Nodes parsed beneath this row.
	Children   *orderedmap.OrderedMap[string, []*Node]
	ChildCount *int
}

// NewNode returns a Node with its Children map initialized.
func NewNode(typeName, id string, line int, fields []Value) *Node {
	return &Node{
		TypeName: typeName,
		ID:       id,
		Line:     line,
		Fields:   fields,
		Children: orderedmap.New[string, []*Node](),
	}
}

// Keys returns the keys of m in insertion order. It exists because
// go-ordered-map/v2 exposes iteration via an Oldest()/Next() linked list
// rather than a convenience slice accessor.
func Keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
