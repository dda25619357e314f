package strategy_test

import (
	"testing"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/indexer"
	"github.com/katalvlaran/apted/strategy"
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

func mustIndex(t *testing.T, root *tree.Node[string]) *indexer.Indexer[string] {
	t.Helper()
	idx, err := indexer.New(root, costmodel.NewStringUnitCost())
	require.NoError(t, err)
	return idx
}

func TestComputeMatrixDimensions(t *testing.T) {
	it1 := mustIndex(t, buildSample())
	it2 := mustIndex(t, buildSample())

	m, err := strategy.Compute(it1, it2)
	require.NoError(t, err)
	assert.Equal(t, it1.Size(), len(m.Cells))
	for _, row := range m.Cells {
		assert.Equal(t, it2.Size(), len(row))
	}
	assert.Equal(t, it1.Size(), m.N1)
}

func TestComputeSingleNodeTrees(t *testing.T) {
	it1 := mustIndex(t, tree.New("x"))
	it2 := mustIndex(t, tree.New("y"))

	m, err := strategy.Compute(it1, it2)
	require.NoError(t, err)
	assert.Equal(t, 1, len(m.Cells))
	assert.Equal(t, 1, len(m.Cells[0]))
	// Both roots are leaves, so the pair is trivial: no candidate path
	// is evaluated and the cell ends up holding the -1 the pass stores
	// when no path was chosen.
	assert.Equal(t, -1.0, m.Get(0, 0))
}

func TestComputeDoesNotPanicOnAsymmetricTrees(t *testing.T) {
	small := tree.New("r")
	_ = small.AddChild(tree.New("a"))

	big := buildSample()

	it1 := mustIndex(t, small)
	it2 := mustIndex(t, big)

	m, err := strategy.Compute(it1, it2)
	require.NoError(t, err)
	assert.Equal(t, 2, len(m.Cells))
	assert.Equal(t, 6, len(m.Cells[0]))
}
