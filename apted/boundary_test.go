package apted_test

import (
	"testing"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/costmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryScenarios(t *testing.T) {
	tests := []struct {
		name string
		t1   string
		t2   string
		want float64
	}{
		{"identical leaves", "{a}", "{a}", 0},
		{"single rename", "{a}", "{b}", 1},
		{"sibling swap", "{a{b}{c}}", "{a{c}{b}}", 2},
		{"reshuffled grandchild", "{a{b{d}}{c}}", "{a{b}{c{d}}}", 2},
		{"nested reshuffle", "{f{d{a}{c{b}}}{e}}", "{f{c{d{a}{b}}}{e}}", 2},
		{"deep chain vs leaf", "{a}", "{a{b{c{d{e}}}}}", 4},
	}

	model := costmodel.NewStringUnitCost()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t1, err := bracket.Parse(tc.t1)
			require.NoError(t, err)
			t2, err := bracket.Parse(tc.t2)
			require.NoError(t, err)

			got, err := apted.Distance(t1, t2, model)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAgainstEmptyTreeIsSumOfDeleteOrInsertCost(t *testing.T) {
	t1, err := bracket.Parse("{a{b}{c{d}}}")
	require.NoError(t, err)
	empty, err := bracket.Parse("{}")
	require.NoError(t, err)

	model := costmodel.NewStringUnitCost()

	// d(A, nearly-empty) counts one rename of the root (label ""
	// differs from "a") plus one delete per remaining node.
	dAEmpty, err := apted.Distance(t1, empty, model)
	require.NoError(t, err)
	assert.Equal(t, 4.0, dAEmpty)

	dEmptyA, err := apted.Distance(empty, t1, model)
	require.NoError(t, err)
	assert.Equal(t, dAEmpty, dEmptyA)
}

func TestAddingOneLeafIncreasesDistanceByOne(t *testing.T) {
	base, err := bracket.Parse("{a{b}{c{d}}}")
	require.NoError(t, err)
	withExtraLeaf, err := bracket.Parse("{a{b}{c{d}{x}}}")
	require.NoError(t, err)

	model := costmodel.NewStringUnitCost()
	d, err := apted.Distance(base, withExtraLeaf, model)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}
