package bruteforce

import (
	"math"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/indexer"
	"github.com/katalvlaran/apted/tree"
)

// pair is one element of a one-to-one node mapping: n1/n2 are preorder
// ids into t1/t2, or -1 to mark the other side as deleted/inserted.
type pair struct {
	n1, n2 int
}

// Distance computes the tree edit distance between t1 and t2 under
// model by exhaustive search. It is exponential in size1+size2 and
// rejects inputs above MaxCombinedSize.
func Distance[T any](t1, t2 *tree.Node[T], model costmodel.Model[T]) (float64, error) {
	if t1 == nil || t2 == nil {
		return 0, ErrNilTree
	}

	it1, err := indexer.New(t1, model)
	if err != nil {
		return 0, err
	}
	it2, err := indexer.New(t2, model)
	if err != nil {
		return 0, err
	}

	if it1.Size()+it2.Size() > MaxCombinedSize {
		return 0, ErrTreeTooLarge
	}

	mappings := generateAllOneToOneMappings(it1.Size(), it2.Size())
	mappings = removeNonTEDMappings(it1, it2, mappings)

	return getMinCost(it1, it2, model, mappings), nil
}

func generateAllOneToOneMappings(size1, size2 int) [][]pair {
	base := make([]pair, 0, size1+size2)
	for n1 := 0; n1 < size1; n1++ {
		base = append(base, pair{n1, -1})
	}
	for n2 := 0; n2 < size2; n2++ {
		base = append(base, pair{-1, n2})
	}

	mappings := [][]pair{base}

	for n1 := 0; n1 < size1; n1++ {
		snapshot := mappings
		for n2 := 0; n2 < size2; n2++ {
			for _, m := range snapshot {
				if !canAdd(m, n2) {
					continue
				}
				extended := extendMapping(m, n1, n2)
				mappings = append(mappings, extended)
			}
		}
	}

	return mappings
}

// canAdd reports whether (n1, n2) may be added to m: n2 must not
// already be paired with some other mapped n1' in m.
func canAdd(m []pair, n2 int) bool {
	for _, e := range m {
		if e.n1 != -1 && e.n2 != -1 && e.n2 == n2 {
			return false
		}
	}
	return true
}

// extendMapping copies m, adds (n1, n2), and drops the now-subsumed
// (n1, -1) and (-1, n2) entries.
func extendMapping(m []pair, n1, n2 int) []pair {
	out := make([]pair, 0, len(m)+1)
	for _, e := range m {
		if e == (pair{n1, -1}) || e == (pair{-1, n2}) {
			continue
		}
		out = append(out, e)
	}
	out = append(out, pair{n1, n2})
	return out
}

// removeNonTEDMappings discards every mapping that violates the
// ancestor-order or sibling-order condition a valid edit mapping must
// preserve between any two of its mapped pairs.
func removeNonTEDMappings[T any](it1, it2 *indexer.Indexer[T], mappings [][]pair) [][]pair {
	kept := mappings[:0]
	for _, m := range mappings {
		if isTEDMapping(it1, it2, m) {
			kept = append(kept, m)
		}
	}
	return kept
}

func isTEDMapping[T any](it1, it2 *indexer.Indexer[T], mapping []pair) bool {
	for _, e1 := range mapping {
		if e1.n1 == -1 || e1.n2 == -1 {
			continue
		}
		for _, e2 := range mapping {
			if e2.n1 == -1 || e2.n2 == -1 {
				continue
			}
			ancestor1 := e1.n1 < e2.n1 && it1.PreLToPreR[e1.n1] < it1.PreLToPreR[e2.n1]
			ancestor2 := e1.n2 < e2.n2 && it2.PreLToPreR[e1.n2] < it2.PreLToPreR[e2.n2]
			if ancestor1 != ancestor2 {
				return false
			}

			sibling1 := e1.n1 < e2.n1 && it1.PreLToPreR[e1.n1] > it1.PreLToPreR[e2.n1]
			sibling2 := e1.n2 < e2.n2 && it2.PreLToPreR[e1.n2] > it2.PreLToPreR[e2.n2]
			if sibling1 != sibling2 {
				return false
			}
		}
	}
	return true
}

func getMinCost[T any](it1, it2 *indexer.Indexer[T], model costmodel.Model[T], mappings [][]pair) float64 {
	minCost := math.Inf(1)

	for _, m := range mappings {
		cost := 0.0
		for _, e := range m {
			switch {
			case e.n1 > -1 && e.n2 > -1:
				cost += model.RenameCost(it1.PreLToNode[e.n1], it2.PreLToNode[e.n2])
			case e.n1 > -1:
				cost += model.DeleteCost(it1.PreLToNode[e.n1])
			default:
				cost += model.InsertCost(it2.PreLToNode[e.n2])
			}
			if cost >= minCost {
				break
			}
		}
		if cost < minCost {
			minCost = cost
		}
	}

	return minCost
}
