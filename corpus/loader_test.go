package corpus_test

import (
	"testing"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/corpus"
	"github.com/katalvlaran/apted/costmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorrectnessCases(t *testing.T) {
	cases, err := corpus.LoadCorrectnessCases("../testdata/correctness_test_cases.json")
	require.NoError(t, err)
	require.Len(t, cases, 4)
	assert.Equal(t, "identical", cases[0].TestID)
	assert.Equal(t, 0.0, cases[0].ExpectedDistance)
}

func TestLoadCorrectnessCasesAgainstEngine(t *testing.T) {
	cases, err := corpus.LoadCorrectnessCases("../testdata/correctness_test_cases.json")
	require.NoError(t, err)

	model := costmodel.NewStringUnitCost()
	for _, c := range cases {
		t1, err := bracket.Parse(c.T1)
		require.NoError(t, err)
		t2, err := bracket.Parse(c.T2)
		require.NoError(t, err)

		got, err := apted.Distance(t1, t2, model)
		require.NoError(t, err)
		assert.Equal(t, c.ExpectedDistance, got, "case %s", c.TestID)
	}
}

func TestLoadLargeCases(t *testing.T) {
	cases, err := corpus.LoadLargeCases("../testdata/large_test_case.json")
	require.NoError(t, err)
	require.Len(t, cases, 1)

	t1, err := bracket.Parse(cases[0].T1)
	require.NoError(t, err)
	t2, err := bracket.Parse(cases[0].T2)
	require.NoError(t, err)

	_, err = apted.Distance(t1, t2, costmodel.NewStringUnitCost())
	require.NoError(t, err)
}

func TestLoadCorrectnessCasesEmptyPath(t *testing.T) {
	_, err := corpus.LoadCorrectnessCases("")
	assert.ErrorIs(t, err, corpus.ErrEmptyPath)
}

func TestLoadCorrectnessCasesMissingFile(t *testing.T) {
	_, err := corpus.LoadCorrectnessCases("../testdata/does_not_exist.json")
	assert.Error(t, err)
}
