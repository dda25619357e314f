package apted

import (
	"math"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/tree"
)

// validatingModel wraps a Model and remembers the first invalid cost
// it observes, so the engine can surface costmodel.ErrNonFiniteCost
// after a run instead of checking on every single call site.
type validatingModel[T any] struct {
	inner costmodel.Model[T]
	err   error
}

func (v *validatingModel[T]) DeleteCost(n *tree.Node[T]) float64 {
	c := v.inner.DeleteCost(n)
	v.check(c)
	return c
}

func (v *validatingModel[T]) InsertCost(n *tree.Node[T]) float64 {
	c := v.inner.InsertCost(n)
	v.check(c)
	return c
}

func (v *validatingModel[T]) RenameCost(n1, n2 *tree.Node[T]) float64 {
	c := v.inner.RenameCost(n1, n2)
	v.check(c)
	return c
}

func (v *validatingModel[T]) check(c float64) {
	if v.err == nil && (math.IsNaN(c) || math.IsInf(c, 0) || c < 0) {
		v.err = costmodel.ErrNonFiniteCost
	}
}
