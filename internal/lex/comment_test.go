package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no comment", "foo: 1", "foo: 1"},
		{"trailing comment", "foo: 1 # trailing", "foo: 1 "},
		{"hash in quotes is literal", `foo: "a # b"`, `foo: "a # b"`},
		{"hash inside tensor", "foo: [1, #2, 3]", "foo: [1, #2, 3]"},
		{"hash inside expression", "foo: $(a # b)", "foo: $(a # b)"},
		{"whole line comment", "# just a comment", ""},
		{"unterminated triple quote returned unchanged", `foo: """`, `foo: """`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripComment(tt.in))
		})
	}
}
