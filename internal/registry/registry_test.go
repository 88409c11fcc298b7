package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hedl-lang/hedl/internal/astdoc"
)

func TestRegisterDetectsCollision(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))
	err := r.Register("User", "alice", 2)
	require.NotNil(t, err)
}

func TestRegisterAllowsSameIDAcrossTypes(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))
	require.Nil(t, r.Register("Org", "alice", 2))
}

func TestResolveQualifiedReference(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))

	doc := astdoc.NewDocument()
	ref := astdoc.ReferenceValue(astdoc.Reference{TypeName: "User", TypeKnown: true, ID: "alice"})
	doc.Root.Set("owner", astdoc.ScalarItem(ref, 2))

	unresolved, err := ResolveDocument(doc, r, true)
	require.Nil(t, err)
	require.Empty(t, unresolved)

	item, _ := doc.Root.Get("owner")
	require.True(t, item.Scalar.Ref.Resolved)
}

func TestResolveUnqualifiedReferenceSingleMatch(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))

	doc := astdoc.NewDocument()
	ref := astdoc.ReferenceValue(astdoc.Reference{ID: "alice"})
	doc.Root.Set("owner", astdoc.ScalarItem(ref, 2))

	_, err := ResolveDocument(doc, r, true)
	require.Nil(t, err)

	item, _ := doc.Root.Get("owner")
	require.True(t, item.Scalar.Ref.TypeKnown)
	require.Equal(t, "User", item.Scalar.Ref.TypeName)
}

func TestResolveAmbiguousUnqualifiedReferenceStrictErrors(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))
	require.Nil(t, r.Register("Org", "alice", 2))

	doc := astdoc.NewDocument()
	ref := astdoc.ReferenceValue(astdoc.Reference{ID: "alice"})
	doc.Root.Set("owner", astdoc.ScalarItem(ref, 3))

	_, err := ResolveDocument(doc, r, true)
	require.NotNil(t, err)
}

func TestResolveUnresolvedReferenceLenientLeavesInPlace(t *testing.T) {
	r := New()

	doc := astdoc.NewDocument()
	ref := astdoc.ReferenceValue(astdoc.Reference{TypeName: "User", TypeKnown: true, ID: "ghost"})
	doc.Root.Set("owner", astdoc.ScalarItem(ref, 3))

	unresolved, err := ResolveDocument(doc, r, false)
	require.Nil(t, err)
	require.Len(t, unresolved, 1)
	require.Equal(t, 3, unresolved[0].Line)

	item, _ := doc.Root.Get("owner")
	require.False(t, item.Scalar.Ref.Resolved)
}

func TestResolveWalksMatrixRowFieldsAndChildren(t *testing.T) {
	r := New()
	require.Nil(t, r.Register("User", "alice", 1))
	require.Nil(t, r.Register("Post", "p1", 2))

	doc := astdoc.NewDocument()
	ref := astdoc.ReferenceValue(astdoc.Reference{TypeName: "User", TypeKnown: true, ID: "alice"})
	node := astdoc.NewNode("Post", "p1", 2, []astdoc.Value{ref})
	list := &astdoc.MatrixList{TypeName: "Post", Schema: []string{"id", "author"}, Rows: []*astdoc.Node{node}}
	doc.Root.Set("posts", astdoc.ListItem(list))

	unresolved, err := ResolveDocument(doc, r, true)
	require.Nil(t, err)
	require.Empty(t, unresolved)
	require.True(t, node.Fields[0].Ref.Resolved)
}
