package header

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/preprocess"
)

func mustLines(t *testing.T, input string) preprocess.Lines {
	t.Helper()
	lines, err := preprocess.Run([]byte(input), limits.Default())
	require.Nil(t, err)
	return lines
}

func TestParseVersionAndStruct(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: User: [id, name, role]\n---\n"
	h, bodyStart, err := Parse(mustLines(t, input), limits.Default())
	require.Nil(t, err)
	require.Equal(t, uint32(1), h.Version.Major)
	require.Equal(t, uint32(0), h.Version.Minor)
	cols, ok := h.Structs.Get("User")
	require.True(t, ok)
	require.Equal(t, []string{"id", "name", "role"}, cols)
	require.Equal(t, 3, bodyStart)
}

func TestVersionMustBeFirstDirective(t *testing.T) {
	input := "%STRUCT: User: [id]\n%VERSION: 1.0\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestDuplicateStructIsRejected(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: User: [id]\n%STRUCT: User: [id, name]\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestDuplicateColumnInStructIsRejected(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: User: [id, id]\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestAliasDuplicateIsRejected(t *testing.T) {
	input := "%VERSION: 1.0\n%ALIAS: %greeting: \"hi\"\n%ALIAS: %greeting: \"bye\"\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestNestRequiresDeclaredStructs(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: User: [id]\n%NEST: User > Post\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestNestOnlyOneChildPerParent(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: User: [id]\n%STRUCT: Post: [id]\n%STRUCT: Comment: [id]\n" +
		"%NEST: User > Post\n%NEST: User > Comment\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestMaxColumnsEnforced(t *testing.T) {
	lim := limits.Default()
	lim.MaxColumns = 2
	input := "%VERSION: 1.0\n%STRUCT: User: [id, name, role]\n---\n"
	_, _, err := Parse(mustLines(t, input), lim)
	require.NotNil(t, err)
}

func TestUnknownDirectiveIsRejected(t *testing.T) {
	input := "%VERSION: 1.0\n%WHATEVER: foo\n---\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestMissingSeparatorIsRejected(t *testing.T) {
	input := "%VERSION: 1.0\nkey: value\n"
	_, _, err := Parse(mustLines(t, input), limits.Default())
	require.NotNil(t, err)
}

func TestChainDepthExceeded(t *testing.T) {
	input := "%VERSION: 1.0\n%STRUCT: A: [id]\n%STRUCT: B: [id]\n%NEST: A > B\n---\n"
	h, _, err := Parse(mustLines(t, input), limits.Default())
	require.Nil(t, err)
	_, cerr := ChainDepth(h.Nests, 0)
	require.NotNil(t, cerr)
}
