package lex

import (
	"strings"

	"github.com/hedl-lang/hedl/internal/astdoc"
)

// ParseReference parses an `@Type:id` or `@id` token into a Reference. The
// leading '@' is required.
func ParseReference(token string) (astdoc.Reference, error) {
	if len(token) == 0 || token[0] != '@' {
		return astdoc.Reference{}, errBadReference
	}
	rest := token[1:]
	if rest == "" {
		return astdoc.Reference{}, errBadReference
	}

	if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		typeName := rest[:idx]
		id := rest[idx+1:]
		if !IsValidTypeName(typeName) {
			return astdoc.Reference{}, errBadReferenceType
		}
		if !IsValidIDToken(id) {
			return astdoc.Reference{}, errBadReferenceID
		}
		return astdoc.Reference{TypeName: typeName, TypeKnown: true, ID: id}, nil
	}

	if !IsValidIDToken(rest) {
		return astdoc.Reference{}, errBadReferenceID
	}
	return astdoc.Reference{ID: rest}, nil
}
