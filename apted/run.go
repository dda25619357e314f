package apted

import (
	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/indexer"
	"github.com/katalvlaran/apted/strategy"
)

// Path types a strategy cell can decode to.
const (
	pathLeft  = 0
	pathRight = 1
	pathInner = 2
)

// run owns every piece of mutable state a single Distance call needs:
// the two tree indexers, the shared strategy/distance matrix, and the
// scratch arrays the forest-distance recurrences reuse across
// subtree pairs. A fresh run is built per Distance call so an Engine
// itself stays free of per-call state besides the reported subproblem
// count.
type run[T any] struct {
	model costmodel.Model[T]
	it1   *indexer.Indexer[T]
	it2   *indexer.Indexer[T]
	delta *strategy.Matrix

	q  []float64
	fn []int
	ft []int

	counter int64
}

func signum(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// getStrategyPathType decodes an encoded path id into one of
// pathLeft, pathRight, pathInner, relative to the subtree currently
// rooted at currentRootNodePreL (spanning currentSubtreeSize nodes).
func getStrategyPathType(pathIDWithOffset, pathIDOffset int, currentRootNodePreL, currentSubtreeSize int) int {
	if signum(pathIDWithOffset) == -1 {
		return pathLeft
	}
	pathID := abs(pathIDWithOffset) - 1
	if pathID >= pathIDOffset {
		pathID -= pathIDOffset
	}
	if pathID == (currentRootNodePreL+currentSubtreeSize)-1 {
		return pathRight
	}
	return pathInner
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// tedInit resets the subproblem counter, allocates the fn/ft/q
// scratch arrays, and pre-fills delta, for every subtree pair where at
// least one side is a single node, with the distance between the two
// subtrees' child forests: 0 when both are single nodes, otherwise the
// cost of inserting (or deleting) the larger side's descendants. gted
// never reads these cells (spf1 handles such pairs directly); the
// single-path functions read them when they match such a pair.
func (r *run[T]) tedInit() {
	r.counter = 0

	maxSize := maxInt(r.it1.Size(), r.it2.Size()) + 1
	r.q = make([]float64, maxSize)
	r.fn = make([]int, maxSize+1)
	r.ft = make([]int, maxSize+1)

	for x := 0; x < r.it1.Size(); x++ {
		sizeX := r.it1.Sizes[x]
		for y := 0; y < r.it2.Size(); y++ {
			sizeY := r.it2.Sizes[y]
			switch {
			case sizeX == 1 && sizeY == 1:
				r.delta.Cells[x][y] = 0
			case sizeX == 1:
				r.delta.Cells[x][y] = r.it2.PreLToSumInsCost[y] - r.model.InsertCost(r.it2.PreLToNode[y])
			case sizeY == 1:
				r.delta.Cells[x][y] = r.it1.PreLToSumDelCost[x] - r.model.DeleteCost(r.it1.PreLToNode[x])
			}
		}
	}
}

// updateFnArray links node into the fn chain used by spfA to
// walk all already-visited nodes of a forest right to left: if
// lnForNode falls inside the current subtree, node is spliced in right
// after it; otherwise node becomes the new head of the chain (stored
// past the end of fn, at the sentinel slot updateFnArray's caller
// reserves for it).
func (r *run[T]) updateFnArray(lnForNode, node, currentSubtreePreL int) {
	if lnForNode >= currentSubtreePreL {
		r.fn[node] = r.fn[lnForNode]
		r.fn[lnForNode] = node
	} else {
		r.fn[node] = r.fn[len(r.fn)-1]
		r.fn[len(r.fn)-1] = node
	}
}

// updateFtArray records node's left neighbor in ft and, if node itself
// has a successor already threaded through fn, repoints that
// successor's ft entry at node.
func (r *run[T]) updateFtArray(lnForNode, node int) {
	r.ft[node] = lnForNode
	if r.fn[node] > -1 {
		r.ft[r.fn[node]] = node
	}
}

// gted computes the tree edit distance between the subtrees currently
// pointed at by it1 and it2's cursors, recursing first over every
// off-path child subtree (whose distance does not depend on this
// pair's chosen decomposition path) before delegating the path itself
// to spfL, spfR, or spfA.
func (r *run[T]) gted() float64 {
	currentSubtree1 := r.it1.CurrentNode()
	currentSubtree2 := r.it2.CurrentNode()
	subtreeSize1 := r.it1.Sizes[currentSubtree1]
	subtreeSize2 := r.it2.Sizes[currentSubtree2]

	if subtreeSize1 == 1 || subtreeSize2 == 1 {
		return r.spf1(r.it1, currentSubtree1, r.it2, currentSubtree2)
	}

	strategyPathID := int(r.delta.Cells[currentSubtree1][currentSubtree2])
	pathIDOffset := r.it1.Size()
	currentPathNode := abs(strategyPathID) - 1

	if currentPathNode < pathIDOffset {
		strategyPathType := getStrategyPathType(strategyPathID, pathIDOffset, currentSubtree1, subtreeSize1)
		for {
			parent := r.it1.Parents[currentPathNode]
			if parent < currentSubtree1 {
				break
			}
			for _, child := range r.it1.Children[parent] {
				if child != currentPathNode {
					r.it1.SetCurrentNode(child)
					r.gted()
				}
			}
			currentPathNode = parent
		}
		r.it1.SetCurrentNode(currentSubtree1)

		switch strategyPathType {
		case pathLeft:
			return r.spfL(r.it1, r.it2, false)
		case pathRight:
			return r.spfR(r.it1, r.it2, false)
		default:
			return r.spfA(r.it1, r.it2, abs(strategyPathID)-1, strategyPathType, false)
		}
	}

	currentPathNode -= pathIDOffset
	strategyPathType := getStrategyPathType(strategyPathID, pathIDOffset, currentSubtree2, subtreeSize2)
	for {
		parent := r.it2.Parents[currentPathNode]
		if parent < currentSubtree2 {
			break
		}
		for _, child := range r.it2.Children[parent] {
			if child != currentPathNode {
				r.it2.SetCurrentNode(child)
				r.gted()
			}
		}
		currentPathNode = parent
	}
	r.it2.SetCurrentNode(currentSubtree2)

	switch strategyPathType {
	case pathLeft:
		return r.spfL(r.it2, r.it1, true)
	case pathRight:
		return r.spfR(r.it2, r.it1, true)
	default:
		return r.spfA(r.it2, r.it1, abs(strategyPathID)-pathIDOffset-1, strategyPathType, true)
	}
}
