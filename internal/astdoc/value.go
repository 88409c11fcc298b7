package astdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindNull is the `~` / `null` literal.
	KindNull ValueKind = iota
	// KindBool is `true` / `false`.
	KindBool
	// KindInt is a signed 64-bit integer literal.
	KindInt
	// KindFloat is an IEEE-754 binary64 literal.
	KindFloat
	// KindString is a quoted, block, or bare string.
	KindString
	// KindTensor is a `[...]` numeric array, possibly nested.
	KindTensor
	// KindReference is an `@Type:id` or `@id` citation.
	KindReference
	// KindExpression is an opaque `$( ... )` body, stored verbatim.
	KindExpression
)

// Value is the tagged scalar variant of spec.md §3.
type Value struct {
	Kind ValueKind

	Bool  bool
	Int   int64
	Float float64
	// Str holds the decoded string for KindString, and the verbatim body
	// (without the surrounding "$(" ")") for KindExpression.
	Str string

	Tensor Tensor
	Ref    Reference
}

// Null is the canonical null Value.
func Null() Value { return Value{Kind: KindNull} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// ExpressionValue wraps the verbatim body of a $( ... ) expression.
func ExpressionValue(body string) Value { return Value{Kind: KindExpression, Str: body} }

// TensorValue wraps t.
func TensorValue(t Tensor) Value { return Value{Kind: KindTensor, Tensor: t} }

// ReferenceValue wraps r.
func ReferenceValue(r Reference) Value { return Value{Kind: KindReference, Ref: r} }

// Reference is an `@Type:id` (qualified) or `@id` (unqualified) citation.
// TypeKnown is false for an unqualified reference that has not yet been
// resolved to a concrete type by the registry.
type Reference struct {
	TypeName  string
	TypeKnown bool
	ID        string
	// Resolved is set by the reference-resolution pass once a qualified or
	// successfully-disambiguated unqualified reference has been checked
	// against the type registry. Lenient mode leaves it false on failure
	// instead of erroring.
	Resolved bool
}

// String renders the reference the way it appeared in source, for error
// messages.
func (r Reference) String() string {
	if r.TypeKnown {
		return fmt.Sprintf("@%s:%s", r.TypeName, r.ID)
	}
	return "@" + r.ID
}

// Tensor is a flat run of float64 values plus the shape that reconstructs
// its (possibly nested, always rectangular) bracket structure.
type Tensor struct {
	Flat  []float64
	Shape []int
}

// String renders the tensor back into bracket notation.
func (t Tensor) String() string {
	if len(t.Shape) == 0 {
		return "[]"
	}
	var b strings.Builder
	pos := 0
	var write func(dim int)
	write = func(dim int) {
		b.WriteByte('[')
		if dim == len(t.Shape)-1 {
			for i := 0; i < t.Shape[dim]; i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(strconv.FormatFloat(t.Flat[pos], 'g', -1, 64))
				pos++
			}
		} else {
			for i := 0; i < t.Shape[dim]; i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				write(dim + 1)
			}
		}
		b.WriteByte(']')
	}
	write(0)
	return b.String()
}
