package tree_test

import (
	"testing"

	"github.com/katalvlaran/apted/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *tree.Node[string] {
	f := tree.New("f")
	d := tree.New("d")
	a := tree.New("a")
	c := tree.New("c")
	b := tree.New("b")
	e := tree.New("e")

	_ = c.AddChild(b)
	_ = d.AddChild(a)
	_ = d.AddChild(c)
	_ = f.AddChild(d)
	_ = f.AddChild(e)

	return f
}

func TestNodeCount(t *testing.T) {
	root := buildSample()
	assert.Equal(t, 6, root.NodeCount())
}

func TestAddChildNilAndReparent(t *testing.T) {
	n := tree.New(1)
	err := n.AddChild(nil)
	assert.ErrorIs(t, err, tree.ErrNilChild)

	child := tree.New(2)
	require.NoError(t, n.AddChild(child))
	err = n.AddChild(child)
	assert.ErrorIs(t, err, tree.ErrChildHasParent)
}

func TestWalkPreorderAndDepth(t *testing.T) {
	root := buildSample()
	var labels []string
	var depths []int
	root.Walk(func(node *tree.Node[string], depth int) {
		labels = append(labels, node.Data())
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"f", "d", "a", "c", "b", "e"}, labels)
	assert.Equal(t, []int{0, 1, 2, 2, 3, 1}, depths)
}

func TestDetachFromParent(t *testing.T) {
	root := buildSample()
	d := root.IthChild(0)
	require.NoError(t, d.DetachFromParent())
	assert.Nil(t, d.Parent())
	assert.Equal(t, 1, root.NumChildren())
	assert.ErrorIs(t, d.DetachFromParent(), tree.ErrNotAChild)
}

func TestReplaceChild(t *testing.T) {
	root := tree.New("r")
	a := tree.New("a")
	require.NoError(t, root.AddChild(a))
	b := tree.New("b")
	require.NoError(t, root.ReplaceChild(a, b))
	assert.Equal(t, b, root.IthChild(0))
	assert.Nil(t, a.Parent())
}

func TestClone(t *testing.T) {
	root := buildSample()
	clone := root.Clone()
	assert.Equal(t, root.NodeCount(), clone.NodeCount())
	assert.Nil(t, clone.Parent())

	var origLabels, cloneLabels []string
	root.Walk(func(n *tree.Node[string], _ int) { origLabels = append(origLabels, n.Data()) })
	clone.Walk(func(n *tree.Node[string], _ int) { cloneLabels = append(cloneLabels, n.Data()) })
	assert.Equal(t, origLabels, cloneLabels)

	// Mutating the clone must not affect the original.
	require.NoError(t, clone.IthChild(0).AddChild(tree.New("x")))
	assert.Equal(t, 6, root.NodeCount())
	assert.Equal(t, 7, clone.NodeCount())
}
