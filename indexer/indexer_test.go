package indexer_test

import (
	"testing"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/indexer"
	"github.com/katalvlaran/apted/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSample constructs f(d(a, c(b)), e), the 6-node tree used
// throughout the test suite's boundary scenarios.
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

func TestRootSizeEqualsNodeCount(t *testing.T) {
	root := buildSample()
	idx := mustIndex(t, root)
	assert.Equal(t, root.NodeCount(), idx.Size())
	assert.Equal(t, root.NodeCount(), idx.Sizes[0])
	assert.Equal(t, -1, idx.Parents[0])
}

func TestPostLPreLRoundTrip(t *testing.T) {
	idx := mustIndex(t, buildSample())
	for preL := 0; preL < idx.Size(); preL++ {
		postL := idx.PreLToPostL[preL]
		assert.Equal(t, preL, idx.PostLToPreL[postL], "postL_to_preL(preL_to_postL(%d)) must be identity", preL)
	}
}

func TestPostRPreLRoundTrip(t *testing.T) {
	idx := mustIndex(t, buildSample())
	for preL := 0; preL < idx.Size(); preL++ {
		postR := idx.PreLToPostR[preL]
		assert.Equal(t, preL, idx.PostRToPreL[postR])
	}
}

func TestPreRPreLRoundTrip(t *testing.T) {
	idx := mustIndex(t, buildSample())
	for preL := 0; preL < idx.Size(); preL++ {
		preR := idx.PreLToPreR[preL]
		assert.Equal(t, preL, idx.PreRToPreL[preR])
	}
}

func TestLeavesHaveSizeOne(t *testing.T) {
	idx := mustIndex(t, buildSample())
	// a, b, e are leaves; f, d, c are not.
	leafLabels := map[string]bool{"a": true, "b": true, "e": true}
	for preL, n := range idx.PreLToNode {
		isLeaf := idx.IsLeaf(preL)
		assert.Equal(t, leafLabels[n.Data()], isLeaf, "node %q leaf mismatch", n.Data())
	}
}

func TestSumDelInsCostIsBottomUp(t *testing.T) {
	idx := mustIndex(t, buildSample())
	// Under unit cost every node costs 1 to delete/insert, so a
	// subtree's sum must equal its own node count.
	for preL := 0; preL < idx.Size(); preL++ {
		assert.Equal(t, float64(idx.Sizes[preL]), idx.PreLToSumDelCost[preL])
		assert.Equal(t, float64(idx.Sizes[preL]), idx.PreLToSumInsCost[preL])
	}
}

func TestLeafDescendantsAreSelfForLeaves(t *testing.T) {
	idx := mustIndex(t, buildSample())
	for preL := 0; preL < idx.Size(); preL++ {
		if idx.IsLeaf(preL) {
			assert.Equal(t, preL, idx.PreLToLLD(preL))
			assert.Equal(t, preL, idx.PreLToRLD(preL))
		}
	}
}

func TestSingleNodeTree(t *testing.T) {
	root := tree.New("x")
	idx := mustIndex(t, root)
	assert.Equal(t, 1, idx.Size())
	assert.Equal(t, 0, idx.PreLToLLD(0))
	assert.Equal(t, 0, idx.PreLToRLD(0))
	assert.True(t, idx.IsLeaf(0))
}

func TestNodeTypeLAndRMarkFirstAndLastChild(t *testing.T) {
	idx := mustIndex(t, buildSample())
	// d (preL 1) is f's first child -> nodeType_L; e (preL 5) is f's
	// last child -> nodeType_R.
	var dPreL, ePreL int = -1, -1
	for preL, n := range idx.PreLToNode {
		switch n.Data() {
		case "d":
			dPreL = preL
		case "e":
			ePreL = preL
		}
	}
	require.NotEqual(t, -1, dPreL)
	require.NotEqual(t, -1, ePreL)
	assert.True(t, idx.NodeTypeL[dPreL])
	assert.True(t, idx.NodeTypeR[ePreL])
}

func TestCurrentNodeCursor(t *testing.T) {
	idx := mustIndex(t, buildSample())
	assert.Equal(t, 0, idx.CurrentNode())
	idx.SetCurrentNode(3)
	assert.Equal(t, 3, idx.CurrentNode())
}
