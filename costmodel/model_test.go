package costmodel_test

import (
	"testing"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/tree"
	"github.com/stretchr/testify/assert"
)

func TestUnitCost(t *testing.T) {
	m := costmodel.NewStringUnitCost()
	a := tree.New("a")
	b := tree.New("b")
	a2 := tree.New("a")

	assert.Equal(t, 1.0, m.DeleteCost(a))
	assert.Equal(t, 1.0, m.InsertCost(a))
	assert.Equal(t, 0.0, m.RenameCost(a, a2))
	assert.Equal(t, 1.0, m.RenameCost(a, b))
}

func TestLabelCost(t *testing.T) {
	weight := map[string]float64{"expensive": 5, "cheap": 1}
	m := costmodel.NewLabelCost(
		func(s string) float64 { return weight[s] },
		func(s string) float64 { return weight[s] },
		func(a, b string) float64 {
			if a == b {
				return 0
			}
			return weight[a] + weight[b]
		},
	)
	exp := tree.New("expensive")
	cheap := tree.New("cheap")

	assert.Equal(t, 5.0, m.DeleteCost(exp))
	assert.Equal(t, 1.0, m.InsertCost(cheap))
	assert.Equal(t, 6.0, m.RenameCost(exp, cheap))
	assert.Equal(t, 0.0, m.RenameCost(exp, tree.New("expensive")))
}
