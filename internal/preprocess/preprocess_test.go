package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hedl-lang/hedl/internal/limits"
)

func TestRunSplitsLFLines(t *testing.T) {
	lines, err := Run([]byte("a\nb\nc"), limits.Default())
	require.Nil(t, err)
	require.Equal(t, 3, lines.Len())
	require.Equal(t, "a", lines.At(0).Text)
	require.Equal(t, 1, lines.At(0).Number)
	require.Equal(t, "c", lines.At(2).Text)
}

func TestRunNormalizesCRLF(t *testing.T) {
	lines, err := Run([]byte("a\r\nb\r\n"), limits.Default())
	require.Nil(t, err)
	require.Equal(t, "a", lines.At(0).Text)
	require.Equal(t, "b", lines.At(1).Text)
}

func TestRunRejectsInvalidUTF8(t *testing.T) {
	_, err := Run([]byte{0x61, 0xff, 0x62}, limits.Default())
	require.NotNil(t, err)
}

func TestRunEnforcesMaxFileSize(t *testing.T) {
	lim := limits.Default()
	lim.MaxFileSize = 4
	_, err := Run([]byte("abcdef"), lim)
	require.NotNil(t, err)
}

func TestRunEnforcesMaxLineLength(t *testing.T) {
	lim := limits.Default()
	lim.MaxLineLength = 5
	_, err := Run([]byte(strings.Repeat("x", 10)), lim)
	require.NotNil(t, err)
}
