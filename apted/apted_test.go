package apted_test

import (
	"testing"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/costmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distance(t *testing.T, s1, s2 string) float64 {
	t.Helper()
	t1, err := bracket.Parse(s1)
	require.NoError(t, err)
	t2, err := bracket.Parse(s2)
	require.NoError(t, err)
	d, err := apted.Distance(t1, t2, costmodel.NewStringUnitCost())
	require.NoError(t, err)
	return d
}

func TestDistanceIdenticalTrees(t *testing.T) {
	assert.Equal(t, 0.0, distance(t, "{f{d{a}{c{b}}}{e}}", "{f{d{a}{c{b}}}{e}}"))
}

func TestDistanceSingleNodeRename(t *testing.T) {
	assert.Equal(t, 1.0, distance(t, "{a}", "{x}"))
}

func TestDistanceSingleInsert(t *testing.T) {
	assert.Equal(t, 1.0, distance(t, "{a}", "{a{b}}"))
}

func TestDistanceSingleDelete(t *testing.T) {
	assert.Equal(t, 1.0, distance(t, "{a{b}}", "{a}"))
}

func TestDistanceLeafVsTreeWithTwoChildren(t *testing.T) {
	assert.Equal(t, 2.0, distance(t, "{a}", "{a{b}{c}}"))
}

func TestDistanceCompletelyDifferentTrees(t *testing.T) {
	d := distance(t, "{a{b}{c}}", "{x{y}{z}}")
	assert.Equal(t, 3.0, d)
}

func TestNewEngineNilTree(t *testing.T) {
	eng := apted.NewEngine(costmodel.NewStringUnitCost())
	_, err := eng.Distance(nil, nil)
	assert.ErrorIs(t, err, apted.ErrNilTree)
}

func TestEngineLastSubproblemCount(t *testing.T) {
	t1, err := bracket.Parse("{f{d{a}{c{b}}}{e}}")
	require.NoError(t, err)
	t2, err := bracket.Parse("{f{c{b}}{e}}")
	require.NoError(t, err)

	eng := apted.NewEngine(costmodel.NewStringUnitCost())
	_, err = eng.Distance(t1, t2)
	require.NoError(t, err)
	assert.Greater(t, eng.LastSubproblemCount(), int64(0))
}

func TestEngineReusableAcrossCalls(t *testing.T) {
	eng := apted.NewEngine(costmodel.NewStringUnitCost())

	t1, err := bracket.Parse("{a}")
	require.NoError(t, err)
	t2, err := bracket.Parse("{b}")
	require.NoError(t, err)
	d1, err := eng.Distance(t1, t2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d1)

	t3, err := bracket.Parse("{a{b}}")
	require.NoError(t, err)
	t4, err := bracket.Parse("{a{b}{c}}")
	require.NoError(t, err)
	d2, err := eng.Distance(t3, t4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d2)
}

func TestWithCostValidationRejectsNegativeCost(t *testing.T) {
	model := costmodel.NewLabelCost(
		func(string) float64 { return -1 },
		func(string) float64 { return 1 },
		func(a, b string) float64 {
			if a == b {
				return 0
			}
			return 1
		},
	)

	t1, err := bracket.Parse("{a{b}}")
	require.NoError(t, err)
	t2, err := bracket.Parse("{a}")
	require.NoError(t, err)

	_, err = apted.Distance(t1, t2, model, apted.WithCostValidation())
	assert.ErrorIs(t, err, costmodel.ErrNonFiniteCost)
}
