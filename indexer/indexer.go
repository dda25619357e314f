package indexer

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/apted/costmodel"
	"github.com/katalvlaran/apted/tree"
)

// Indexer precomputes every structural and cost array the distance
// engine needs from a single input tree: four traversal numberings
// (left-to-right/right-to-left preorder and postorder) and the
// translations between them, leftmost/rightmost leaf descendants,
// keyroot sums, per-subtree delete/insert cost totals, and the lchl /
// rchl counters used to pick between the two strategy-computation
// passes.
//
// All node ids in this package are left-to-right preorder ids unless
// the field or method name says otherwise (PostL = left-to-right
// postorder, PreR/PostR = right-to-left preorder/postorder).
//
// An Indexer is built once per tree by New and is read-only
// afterward, except for the CurrentNode cursor the distance engine
// uses while it walks subtree pairs.
type Indexer[T any] struct {
	model    costmodel.Model[T]
	treeSize int

	// Sizes holds the subtree size rooted at each preorder id.
	Sizes []int
	// Parents holds the preorder id of each node's parent, -1 for the root.
	Parents []int
	// Children holds, for each preorder id, its children's preorder ids in order.
	Children [][]int

	// PostLToLLD maps a left-to-right postorder id to the postorder id
	// of its leftmost leaf descendant.
	PostLToLLD []int
	// PostRToRLD maps a right-to-left postorder id to the same id of
	// its rightmost leaf descendant.
	PostRToRLD []int
	// PreLToLN maps a preorder id to the preorder id of the nearest
	// leaf strictly to its left in preorder, or -1.
	PreLToLN []int
	// PreRToLN is the PreLToLN analogue for right-to-left preorder ids.
	PreRToLN []int

	// PreLToNode maps a preorder id back to the source *tree.Node.
	PreLToNode []*tree.Node[T]
	// NodeTypeL marks a node as being the leftmost child of its parent
	// (or the root).
	NodeTypeL []bool
	// NodeTypeR marks a node as being the rightmost child of its
	// parent (or the root).
	NodeTypeR []bool

	// PreLToPreR and PreRToPreL translate between left-to-right and
	// right-to-left preorder ids.
	PreLToPreR []int
	PreRToPreL []int
	// PreLToPostL and PostLToPreL translate between left-to-right
	// preorder and left-to-right postorder ids.
	PreLToPostL []int
	PostLToPreL []int
	// PreLToPostR and PostRToPreL translate between left-to-right
	// preorder and right-to-left postorder ids.
	PreLToPostR []int
	PostRToPreL []int

	// PreLToKRSum and PreLToRevKRSum hold the running keyroot-path
	// length sums used by the strategy-cost recurrence (spec term
	// "kr_sum" / "rev_kr_sum").
	PreLToKRSum    []int64
	PreLToRevKRSum []int64
	// PreLToDescSum holds the descendant-sum bound used by the same
	// recurrence ("desc_sum").
	PreLToDescSum []int64
	// PreLToSumDelCost and PreLToSumInsCost hold, per subtree root,
	// the total cost of deleting (resp. inserting) every node in that
	// subtree under the configured cost model.
	PreLToSumDelCost []float64
	PreLToSumInsCost []float64

	// Lchl and Rchl count, across the whole tree, how many leaves sit
	// immediately after their parent in left-to-right (resp.
	// right-to-left) preorder. The distance engine uses whichever is
	// smaller to choose its strategy-computation pass.
	Lchl int
	Rchl int

	currentNode int

	// Recursion-local temporaries, mirroring the single-pass indexing
	// algorithm this type is grounded on: each carries a child's
	// result to its parent across the return of the recursive call.
	sizeTmp          int
	descSizesTmp     int64
	krSizesSumTmp    int64
	revkrSizesSumTmp int64
	preorderTmp      int
}

// New indexes root under model, allocating and filling every array
// Indexer exposes. It returns ErrOverflow if the tree is so large that
// the descendant-sum computation would overflow int64.
func New[T any](root *tree.Node[T], model costmodel.Model[T]) (*Indexer[T], error) {
	n := root.NodeCount()
	idx := &Indexer[T]{
		model:            model,
		treeSize:         n,
		Sizes:            make([]int, n),
		Parents:          make([]int, n),
		Children:         make([][]int, n),
		PostLToLLD:       make([]int, n),
		PostRToRLD:       make([]int, n),
		PreLToLN:         make([]int, n),
		PreRToLN:         make([]int, n),
		PreLToNode:       make([]*tree.Node[T], n),
		NodeTypeL:        make([]bool, n),
		NodeTypeR:        make([]bool, n),
		PreLToPreR:       make([]int, n),
		PreRToPreL:       make([]int, n),
		PreLToPostL:      make([]int, n),
		PreLToPostR:      make([]int, n),
		PostLToPreL:      make([]int, n),
		PostRToPreL:      make([]int, n),
		PreLToKRSum:      make([]int64, n),
		PreLToRevKRSum:   make([]int64, n),
		PreLToDescSum:    make([]int64, n),
		PreLToSumDelCost: make([]float64, n),
		PreLToSumInsCost: make([]float64, n),
	}
	idx.Parents[0] = -1
	idx.NodeTypeL[0] = true
	idx.NodeTypeR[0] = true

	if _, err := idx.indexNodes(root, -1); err != nil {
		return nil, err
	}
	idx.postTraversalIndexing()

	return idx, nil
}

// indexNodes performs a single recursive left-to-right preorder walk
// that simultaneously assigns every preorder/postorder id translation
// and accumulates the keyroot and descendant sums bottom-up, using
// the sizeTmp/descSizesTmp/krSizesSumTmp/revkrSizesSumTmp/preorderTmp
// fields to carry each child's results to its parent.
func (idx *Indexer[T]) indexNodes(node *tree.Node[T], postorder int) (int, error) {
	currentSize := 0
	childrenCount := 0
	var descSizes int64
	var krSizesSum int64
	var revkrSizesSum int64
	preorder := idx.preorderTmp

	idx.preorderTmp++

	childNodes := node.Children()
	for i, child := range childNodes {
		childrenCount++
		currentPreorder := idx.preorderTmp
		idx.Parents[currentPreorder] = preorder

		var err error
		postorder, err = idx.indexNodes(child, postorder)
		if err != nil {
			return 0, err
		}
		idx.Children[preorder] = append(idx.Children[preorder], currentPreorder)

		currentSize += 1 + idx.sizeTmp
		descSizes += idx.descSizesTmp

		if childrenCount > 1 {
			krSizesSum += idx.krSizesSumTmp + int64(idx.sizeTmp) + 1
		} else {
			krSizesSum += idx.krSizesSumTmp
			idx.NodeTypeL[currentPreorder] = true
		}

		if i < len(childNodes)-1 {
			revkrSizesSum += idx.revkrSizesSumTmp + int64(idx.sizeTmp) + 1
		} else {
			revkrSizesSum += idx.revkrSizesSumTmp
			idx.NodeTypeR[currentPreorder] = true
		}
	}

	postorder++

	currentDescSizes := descSizes + int64(currentSize) + 1

	a := int64(currentSize) + 1
	product, ok := safeMul(a, a+3)
	if !ok {
		return 0, ErrOverflow
	}
	idx.PreLToDescSum[preorder] = product/2 - currentDescSizes
	idx.PreLToKRSum[preorder] = krSizesSum + int64(currentSize) + 1
	idx.PreLToRevKRSum[preorder] = revkrSizesSum + int64(currentSize) + 1

	idx.PreLToNode[preorder] = node

	idx.Sizes[preorder] = currentSize + 1
	preorderR := idx.treeSize - 1 - postorder
	idx.PreLToPreR[preorder] = preorderR
	idx.PreRToPreL[preorderR] = preorder

	idx.descSizesTmp = currentDescSizes
	idx.sizeTmp = currentSize
	idx.krSizesSumTmp = krSizesSum
	idx.revkrSizesSumTmp = revkrSizesSum

	idx.PostLToPreL[postorder] = preorder
	idx.PreLToPostL[preorder] = postorder
	idx.PreLToPostR[preorder] = idx.treeSize - 1 - preorder
	idx.PostRToPreL[idx.treeSize-1-preorder] = preorder

	return postorder, nil
}

// postTraversalIndexing fills the arrays that need the full set of
// preorder/postorder translations to already be in place: leaf
// neighbors, leftmost/rightmost leaf descendants, the lchl/rchl
// heuristic counters, and the bottom-up subtree delete/insert cost
// sums.
func (idx *Indexer[T]) postTraversalIndexing() {
	currentLeaf := -1

	for i := 0; i < idx.treeSize; i++ {
		idx.PreLToLN[i] = currentLeaf
		if idx.IsLeaf(i) {
			currentLeaf = i
		}

		// Leftmost leaf descendant, indexed by left-to-right postorder.
		postl := i
		preorder := idx.PostLToPreL[i]
		if idx.Sizes[preorder] == 1 {
			idx.PostLToLLD[postl] = postl
		} else {
			idx.PostLToLLD[postl] = idx.PostLToLLD[idx.PreLToPostL[idx.Children[preorder][0]]]
		}

		// Rightmost leaf descendant, indexed by right-to-left postorder.
		postr := i
		preorder = idx.PostRToPreL[postr]
		if idx.Sizes[preorder] == 1 {
			idx.PostRToRLD[postr] = postr
		} else {
			lastChild := idx.Children[preorder][len(idx.Children[preorder])-1]
			idx.PostRToRLD[postr] = idx.PostRToRLD[idx.PreLToPostR[lastChild]]
		}

		// Count lchl/rchl: a leaf immediately following its parent in
		// left-to-right (resp. right-to-left) preorder.
		if idx.Sizes[i] == 1 {
			parent := idx.Parents[i]
			if parent > -1 {
				if parent+1 == i {
					idx.Lchl++
				} else if idx.PreLToPreR[parent]+1 == idx.PreLToPreR[i] {
					idx.Rchl++
				}
			}
		}

		// Sum subtree delete/insert costs bottom-up, i.e. walking
		// preorder ids in reverse.
		nodeForSum := idx.treeSize - i - 1
		parentForSum := idx.Parents[nodeForSum]
		idx.PreLToSumDelCost[nodeForSum] += idx.model.DeleteCost(idx.PreLToNode[nodeForSum])
		idx.PreLToSumInsCost[nodeForSum] += idx.model.InsertCost(idx.PreLToNode[nodeForSum])
		if parentForSum > -1 {
			idx.PreLToSumDelCost[parentForSum] += idx.PreLToSumDelCost[nodeForSum]
			idx.PreLToSumInsCost[parentForSum] += idx.PreLToSumInsCost[nodeForSum]
		}
	}

	currentLeaf = -1
	for i := 0; i < idx.Sizes[0]; i++ {
		idx.PreRToLN[i] = currentLeaf
		if idx.IsLeaf(idx.PreRToPreL[i]) {
			currentLeaf = i
		}
	}
}

// Size returns the number of nodes in the indexed tree.
func (idx *Indexer[T]) Size() int { return idx.treeSize }

// PreLToLLD returns the preorder id of the leftmost leaf descendant
// of the node at preorder id preL.
func (idx *Indexer[T]) PreLToLLD(preL int) int {
	return idx.PostLToPreL[idx.PostLToLLD[idx.PreLToPostL[preL]]]
}

// PreLToRLD returns the preorder id of the rightmost leaf descendant
// of the node at preorder id preL.
func (idx *Indexer[T]) PreLToRLD(preL int) int {
	return idx.PostRToPreL[idx.PostRToRLD[idx.PreLToPostR[preL]]]
}

// PostLToNode returns the node at left-to-right postorder id postL.
func (idx *Indexer[T]) PostLToNode(postL int) *tree.Node[T] {
	return idx.PreLToNode[idx.PostLToPreL[postL]]
}

// PostRToNode returns the node at right-to-left postorder id postR.
func (idx *Indexer[T]) PostRToNode(postR int) *tree.Node[T] {
	return idx.PreLToNode[idx.PostRToPreL[postR]]
}

// IsLeaf reports whether the node at preorder id nodeID is a leaf.
func (idx *Indexer[T]) IsLeaf(nodeID int) bool {
	return idx.Sizes[nodeID] == 1
}

// CurrentNode returns the preorder id of the subtree root the
// distance engine is currently positioned at.
func (idx *Indexer[T]) CurrentNode() int { return idx.currentNode }

// SetCurrentNode repositions the engine's cursor to preorder id preorder.
func (idx *Indexer[T]) SetCurrentNode(preorder int) { idx.currentNode = preorder }

// safeMul multiplies two non-negative int64s, reporting false instead
// of wrapping on overflow.
func safeMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

// DebugString renders every index array for manual inspection,
// mirroring the reference implementation's diagnostic dump.
func (idx *Indexer[T]) DebugString() string {
	var b strings.Builder
	sep := strings.Repeat("-", 80)
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "sizes: %v\n", idx.Sizes)
	fmt.Fprintf(&b, "parents: %v\n", idx.Parents)
	fmt.Fprintf(&b, "children: %v\n", idx.Children)
	fmt.Fprintf(&b, "preL_to_preR: %v\n", idx.PreLToPreR)
	fmt.Fprintf(&b, "preR_to_preL: %v\n", idx.PreRToPreL)
	fmt.Fprintf(&b, "preL_to_postL: %v\n", idx.PreLToPostL)
	fmt.Fprintf(&b, "postL_to_preL: %v\n", idx.PostLToPreL)
	fmt.Fprintf(&b, "preL_to_postR: %v\n", idx.PreLToPostR)
	fmt.Fprintf(&b, "postR_to_preL: %v\n", idx.PostRToPreL)
	fmt.Fprintf(&b, "postL_to_lld: %v\n", idx.PostLToLLD)
	fmt.Fprintf(&b, "postR_to_rld: %v\n", idx.PostRToRLD)
	fmt.Fprintf(&b, "preL_to_ln: %v\n", idx.PreLToLN)
	fmt.Fprintf(&b, "preR_to_ln: %v\n", idx.PreRToLN)
	fmt.Fprintf(&b, "preL_to_kr_sum: %v\n", idx.PreLToKRSum)
	fmt.Fprintf(&b, "preL_to_rev_kr_sum: %v\n", idx.PreLToRevKRSum)
	fmt.Fprintf(&b, "preL_to_desc_sum: %v\n", idx.PreLToDescSum)
	fmt.Fprintf(&b, "preL_to_sumDelCost: %v\n", idx.PreLToSumDelCost)
	fmt.Fprintf(&b, "preL_to_sumInsCost: %v\n", idx.PreLToSumInsCost)
	fmt.Fprintf(&b, "nodeType_L: %v\n", idx.NodeTypeL)
	fmt.Fprintf(&b, "nodeType_R: %v\n", idx.NodeTypeR)
	fmt.Fprintf(&b, "lchl: %d, rchl: %d\n", idx.Lchl, idx.Rchl)
	fmt.Fprintln(&b, sep)

	return b.String()
}
