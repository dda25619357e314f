package apted_test

import (
	"testing"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/bruteforce"
	"github.com/katalvlaran/apted/costmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAgreesWithBruteForce checks the engine against the exponential
// reference oracle on a handful of small tree pairs spanning distinct
// shapes: identical, renamed, reordered, and structurally unrelated.
func TestAgreesWithBruteForce(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"{a}", "{a}"},
		{"{a}", "{b}"},
		{"{a{b}}", "{a}"},
		{"{a{b}{c}}", "{a{c}{b}}"},
		{"{a{b{c}}}", "{a{b}{c}}"},
		{"{f{d{a}{c}}{e}}", "{f{c}{e}}"},
		{"{a{b}{c}}", "{x{y}{z}}"},
		{"{a{b}}", "{b{a}}"},
	}

	model := costmodel.NewStringUnitCost()
	for _, p := range pairs {
		t1, err := bracket.Parse(p.a)
		require.NoError(t, err)
		t2, err := bracket.Parse(p.b)
		require.NoError(t, err)

		want, err := bruteforce.Distance(t1, t2, model)
		require.NoError(t, err)

		got, err := apted.Distance(t1, t2, model)
		require.NoError(t, err)

		assert.Equal(t, want, got, "mismatch for %q vs %q", p.a, p.b)
	}
}

// TestDistanceIsSymmetricUnderUnitCost checks that, for the unit cost
// model (whose rename cost is itself symmetric), distance(t1, t2) ==
// distance(t2, t1).
func TestDistanceIsSymmetricUnderUnitCost(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"{a{b}{c}}", "{a{c}{b}}"},
		{"{f{d{a}{c}}{e}}", "{f{c}{e}}"},
		{"{a{b{c}}}", "{a{b}{c}}"},
	}

	model := costmodel.NewStringUnitCost()
	for _, p := range pairs {
		t1, err := bracket.Parse(p.a)
		require.NoError(t, err)
		t2, err := bracket.Parse(p.b)
		require.NoError(t, err)

		forward, err := apted.Distance(t1, t2, model)
		require.NoError(t, err)
		backward, err := apted.Distance(t2, t1, model)
		require.NoError(t, err)

		assert.Equal(t, forward, backward)
	}
}

// TestDistanceTriangleInequality checks d(a,c) <= d(a,b) + d(b,c) for a
// few small triples, a property unit-cost tree edit distance must
// satisfy since it is a genuine metric.
func TestDistanceTriangleInequality(t *testing.T) {
	trees := []string{"{a{b}{c}}", "{a{c}{b}}", "{x{y}}", "{a}"}
	model := costmodel.NewStringUnitCost()

	for i := range trees {
		for j := range trees {
			for k := range trees {
				ta, err := bracket.Parse(trees[i])
				require.NoError(t, err)
				tb, err := bracket.Parse(trees[j])
				require.NoError(t, err)
				tc, err := bracket.Parse(trees[k])
				require.NoError(t, err)

				dab, err := apted.Distance(ta, tb, model)
				require.NoError(t, err)
				dbc, err := apted.Distance(tb, tc, model)
				require.NoError(t, err)
				dac, err := apted.Distance(ta, tc, model)
				require.NoError(t, err)

				assert.LessOrEqual(t, dac, dab+dbc+1e-9)
			}
		}
	}
}
