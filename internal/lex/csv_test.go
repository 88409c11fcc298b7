package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCSVRowSimple(t *testing.T) {
	fields, err := ParseCSVRow("alice, 30, true")
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "30", "true"}, fields)
}

func TestParseCSVRowQuoted(t *testing.T) {
	fields, err := ParseCSVRow(`alice, "a, b", "say ""hi"""`)
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "a, b", `say "hi"`}, fields)
}

func TestParseCSVRowEscapes(t *testing.T) {
	fields, err := ParseCSVRow(`"line1\nline2", "tab\there"`)
	require.NoError(t, err)
	require.Equal(t, []string{"line1\nline2", "tab\there"}, fields)
}

func TestParseCSVRowUnterminatedQuote(t *testing.T) {
	_, err := ParseCSVRow(`alice, "unterminated`)
	require.Error(t, err)
}

func TestParseCSVRowBadEscape(t *testing.T) {
	_, err := ParseCSVRow(`"bad \q escape"`)
	require.Error(t, err)
}

func TestParseCSVRowGarbageAfterQuote(t *testing.T) {
	_, err := ParseCSVRow(`"quoted"garbage, 2`)
	require.Error(t, err)
}

func TestParseCSVRowEmptyFields(t *testing.T) {
	fields, err := ParseCSVRow("")
	require.NoError(t, err)
	require.Equal(t, []string{""}, fields)
}
