package value

import (
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hedl-lang/hedl/internal/astdoc"
	"github.com/stretchr/testify/require"
)

func TestInferScalars(t *testing.T) {
	v, err := Infer("~", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindNull, v.Kind)

	v, err = Infer("true", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindBool, v.Kind)
	require.True(t, v.Bool)

	v, err = Infer("42", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindInt, v.Kind)
	require.Equal(t, int64(42), v.Int)

	v, err = Infer("-3.5", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindFloat, v.Kind)
	require.InDelta(t, -3.5, v.Float, 0.0001)

	v, err = Infer(`"hi\nthere"`, Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
	require.Equal(t, "hi\nthere", v.Str)

	v, err = Infer("bareword", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
	require.Equal(t, "bareword", v.Str)
}

func TestInferEmpty(t *testing.T) {
	_, err := Infer("", Context{})
	require.NotNil(t, err)
}

func TestInferInfinityFallsBackToString(t *testing.T) {
	v, err := Infer("Infinity", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
	require.Equal(t, "Infinity", v.Str)

	v, err = Infer("NaN", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
}

func TestInferReference(t *testing.T) {
	v, err := Infer("@User:alice", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindReference, v.Kind)
	require.Equal(t, "alice", v.Ref.ID)
	require.True(t, v.Ref.TypeKnown)
}

func TestInferTensor(t *testing.T) {
	v, err := Infer("[1, 2, 3]", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindTensor, v.Kind)
	require.Equal(t, []float64{1, 2, 3}, v.Tensor.Flat)
}

func TestInferExpression(t *testing.T) {
	v, err := Infer("$(a + b)", Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindExpression, v.Kind)
	require.Equal(t, "a + b", v.Str)

	_, err = Infer("$(a + b", Context{})
	require.NotNil(t, err)
}

func TestInferDittoRequiresMatrixContext(t *testing.T) {
	_, err := Infer("^", Context{})
	require.NotNil(t, err)

	_, err = Infer("^", Context{InMatrixList: true})
	require.NotNil(t, err)

	prev := astdoc.IntValue(7)
	v, err := Infer("^", Context{InMatrixList: true, HasPreviousRow: true, PreviousValue: prev})
	require.Nil(t, err)
	require.Equal(t, prev, v)
}

func TestInferAlias(t *testing.T) {
	aliases := orderedmap.New[string, string]()
	aliases.Set("%greeting", `"hello"`)

	v, err := Infer("%greeting", Context{Aliases: aliases})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
	require.Equal(t, "hello", v.Str)

	_, err = Infer("%missing", Context{Aliases: aliases})
	require.NotNil(t, err)

	_, err = Infer("%greeting", Context{})
	require.NotNil(t, err)
}

func TestInferAliasCycleHitsMaxRecursion(t *testing.T) {
	aliases := orderedmap.New[string, string]()
	aliases.Set("%a", "%b")
	aliases.Set("%b", "%a")

	_, err := Infer("%a", Context{Aliases: aliases, MaxAliasRecursion: 4})
	require.NotNil(t, err)
}

func TestInferSingleLineBlockString(t *testing.T) {
	v, err := Infer(`"""hello \n not-an-escape"""`, Context{})
	require.Nil(t, err)
	require.Equal(t, astdoc.KindString, v.Kind)
	require.Equal(t, `hello \n not-an-escape`, v.Str)

	_, err = Infer(`"""unterminated`, Context{})
	require.NotNil(t, err)
}

func TestInferStringEscapes(t *testing.T) {
	_, err := Infer(`"unterminated`, Context{})
	require.NotNil(t, err)

	_, err = Infer(`"bad \q"`, Context{})
	require.NotNil(t, err)
}
