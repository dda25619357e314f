package bracket_test

import (
	"testing"

	"github.com/katalvlaran/apted/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleNode(t *testing.T) {
	root, err := bracket.Parse("{a}")
	require.NoError(t, err)
	assert.Equal(t, "a", root.Data())
	assert.Equal(t, 0, root.NumChildren())
}

func TestParseEmptyLabel(t *testing.T) {
	root, err := bracket.Parse("{}")
	require.NoError(t, err)
	assert.Equal(t, "", root.Data())
}

func TestParseNestedTree(t *testing.T) {
	root, err := bracket.Parse("{f{d{a}{c{b}}}{e}}")
	require.NoError(t, err)

	assert.Equal(t, "f", root.Data())
	require.Equal(t, 2, root.NumChildren())

	d := root.IthChild(0)
	assert.Equal(t, "d", d.Data())
	require.Equal(t, 2, d.NumChildren())
	assert.Equal(t, "a", d.IthChild(0).Data())

	c := d.IthChild(1)
	assert.Equal(t, "c", c.Data())
	require.Equal(t, 1, c.NumChildren())
	assert.Equal(t, "b", c.IthChild(0).Data())

	e := root.IthChild(1)
	assert.Equal(t, "e", e.Data())
	assert.Equal(t, 0, e.NumChildren())
}

func TestParseMultiCharLabels(t *testing.T) {
	root, err := bracket.Parse("{root{leftChild}{rightChild}}")
	require.NoError(t, err)
	assert.Equal(t, "root", root.Data())
	assert.Equal(t, "leftChild", root.IthChild(0).Data())
	assert.Equal(t, "rightChild", root.IthChild(1).Data())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", bracket.ErrEmptyInput},
		{"missing open brace", "a}", bracket.ErrMissingOpenBrace},
		{"unclosed", "{a", bracket.ErrUnbalancedBraces},
		{"unclosed child", "{a{b}", bracket.ErrUnbalancedBraces},
		{"trailing garbage", "{a}{b}", bracket.ErrUnbalancedBraces},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bracket.Parse(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	for _, s := range []string{"{a}", "{}", "{f{d{a}{c{b}}}{e}}"} {
		root, err := bracket.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, bracket.Render(root))
	}
}
