package apted

import (
	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/indexer"
	"github.com/katalvlaran/apted/strategy"
	"github.com/katalvlaran/apted/tree"
)

// Engine computes tree edit distances under a fixed cost model.
//
// An Engine is not safe for concurrent use: Distance mutates the
// engine's last-run subproblem counter. Use one Engine per goroutine,
// or guard calls with external synchronization.
type Engine[T any] struct {
	model costmodel.Model[T]
	opts  Options

	lastSubproblemCount int64
}

// NewEngine builds an Engine that prices edit operations using model.
func NewEngine[T any](model costmodel.Model[T], opts ...Option) *Engine[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T]{model: model, opts: o}
}

// Distance computes the tree edit distance between t1 and t2.
func (e *Engine[T]) Distance(t1, t2 *tree.Node[T]) (float64, error) {
	if t1 == nil || t2 == nil {
		return 0, ErrNilTree
	}

	model := e.model
	var vm *validatingModel[T]
	if e.opts.ValidateCosts {
		vm = &validatingModel[T]{inner: e.model}
		model = vm
	}

	it1, err := indexer.New(t1, model)
	if err != nil {
		return 0, err
	}
	it2, err := indexer.New(t2, model)
	if err != nil {
		return 0, err
	}

	m, err := strategy.Compute(it1, it2)
	if err != nil {
		return 0, err
	}

	r := &run[T]{model: model, it1: it1, it2: it2, delta: m}
	r.tedInit()
	dist := r.gted()

	e.lastSubproblemCount = r.counter

	if vm != nil && vm.err != nil {
		return 0, vm.err
	}

	return dist, nil
}

// LastSubproblemCount returns the number of forest-distance
// subproblems solved by the most recent call to Distance. Useful for
// benchmarking and for comparing the engine's behavior against a
// brute-force reference on small trees.
func (e *Engine[T]) LastSubproblemCount() int64 { return e.lastSubproblemCount }

// Distance is a convenience one-shot wrapper around Engine for
// callers who don't need to reuse an Engine across calls.
func Distance[T any](t1, t2 *tree.Node[T], model costmodel.Model[T], opts ...Option) (float64, error) {
	return NewEngine(model, opts...).Distance(t1, t2)
}
