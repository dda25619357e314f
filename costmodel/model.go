package costmodel

import "github.com/katalvlaran/apted/tree"

// Model prices the three edit operations tree edit distance is built
// from. All three methods must be side-effect free and must return
// the same value for equal inputs.
type Model[T any] interface {
	// DeleteCost is the cost of removing n from the source tree.
	DeleteCost(n *tree.Node[T]) float64

	// InsertCost is the cost of inserting n into the destination tree.
	InsertCost(n *tree.Node[T]) float64

	// RenameCost is the cost of relabeling n1 (source) into n2
	// (destination) in place.
	RenameCost(n1, n2 *tree.Node[T]) float64
}

// unitCost is the classical unit-cost model: delete and insert always
// cost 1, rename costs 0 if two payloads are considered equal and 1
// otherwise.
type unitCost[T any] struct {
	equal func(a, b T) bool
}

// NewUnitCost returns the classical unit-cost model generalized over
// any payload type T: delete = insert = 1, rename = 0 if equal(a, b)
// else 1. This directly generalizes the reference StringCostModel,
// which hardcodes equal to string equality.
func NewUnitCost[T any](equal func(a, b T) bool) Model[T] {
	return &unitCost[T]{equal: equal}
}

func (u *unitCost[T]) DeleteCost(_ *tree.Node[T]) float64 { return 1 }
func (u *unitCost[T]) InsertCost(_ *tree.Node[T]) float64 { return 1 }

func (u *unitCost[T]) RenameCost(n1, n2 *tree.Node[T]) float64 {
	if u.equal(n1.Data(), n2.Data()) {
		return 0
	}
	return 1
}

// NewStringUnitCost is a convenience constructor for Node[string]
// trees, matching the reference implementation's StringCostModel
// exactly (delete = insert = 1, rename = 0 iff labels are equal).
func NewStringUnitCost() Model[string] {
	return NewUnitCost(func(a, b string) bool { return a == b })
}

// labelCost generalizes unitCost by allowing delete/insert/rename
// weights to vary per payload, via caller-supplied weight functions.
// Delete and insert weights depend only on the node being removed or
// added; rename weight depends on both endpoints and is expected (but
// not required) to be 0 when the endpoints are "the same" by the
// caller's notion of equality.
type labelCost[T any] struct {
	deleteWeight func(T) float64
	insertWeight func(T) float64
	renameWeight func(a, b T) float64
}

// NewLabelCost builds a Model whose three costs are derived from
// caller-supplied weight functions, letting per-label (or
// per-node-class) costs vary instead of being fixed at 1. This is the
// shape a CLI cost-config file (see cmd/tedcli) resolves into.
func NewLabelCost[T any](deleteWeight, insertWeight func(T) float64, renameWeight func(a, b T) float64) Model[T] {
	return &labelCost[T]{deleteWeight: deleteWeight, insertWeight: insertWeight, renameWeight: renameWeight}
}

func (l *labelCost[T]) DeleteCost(n *tree.Node[T]) float64 { return l.deleteWeight(n.Data()) }
func (l *labelCost[T]) InsertCost(n *tree.Node[T]) float64 { return l.insertWeight(n.Data()) }
func (l *labelCost[T]) RenameCost(n1, n2 *tree.Node[T]) float64 {
	return l.renameWeight(n1.Data(), n2.Data())
}
