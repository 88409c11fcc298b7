package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBlockStringBasic(t *testing.T) {
	lines := []string{
		`desc: """`,
		"line one",
		"line two",
		`"""`,
		"next: 1",
	}
	content, consumed, err := ReadBlockString(lines, 1, 1024)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", content)
	require.Equal(t, 3, consumed)
}

func TestReadBlockStringEmpty(t *testing.T) {
	lines := []string{`desc: """`, `"""`}
	content, consumed, err := ReadBlockString(lines, 1, 1024)
	require.NoError(t, err)
	require.Equal(t, "", content)
	require.Equal(t, 1, consumed)
}

func TestReadBlockStringUnterminated(t *testing.T) {
	lines := []string{`desc: """`, "line one", "line two"}
	_, _, err := ReadBlockString(lines, 1, 1024)
	require.Error(t, err)
}

func TestReadBlockStringTooLarge(t *testing.T) {
	lines := []string{`desc: """`, "0123456789", `"""`}
	_, _, err := ReadBlockString(lines, 1, 5)
	require.Error(t, err)
}
