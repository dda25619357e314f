package strategy

import (
	"math"

	"github.com/katalvlaran/apted/indexer"
)

// maxExactFloat64Int is the largest integer float64 represents
// without loss of precision.
const maxExactFloat64Int = int64(1) << 53

// Compute determines, for every subtree pair (v in it1, w in it2), the
// cheapest of six decomposition paths to use when the distance engine
// later recurses into that pair, using the heuristic from Pawlik &
// Augsten: the left-to-right postorder pass is used when it1 has
// fewer left-path leaves than right-path leaves, otherwise the
// right-to-left postorder pass is used. Both passes produce
// numerically identical results; only their traversal order (and
// therefore performance) differs.
func Compute[T any](it1, it2 *indexer.Indexer[T]) (*Matrix, error) {
	if err := checkPrecision(it1); err != nil {
		return nil, err
	}
	if err := checkPrecision(it2); err != nil {
		return nil, err
	}

	if it1.Lchl < it1.Rchl {
		return computeOptStrategyPostL(it1, it2), nil
	}
	return computeOptStrategyPostR(it1, it2), nil
}

func checkPrecision[T any](it *indexer.Indexer[T]) error {
	for _, v := range it.PreLToKRSum {
		if v > maxExactFloat64Int {
			return ErrStrategyOverflow
		}
	}
	for _, v := range it.PreLToRevKRSum {
		if v > maxExactFloat64Int {
			return ErrStrategyOverflow
		}
	}
	for _, v := range it.PreLToDescSum {
		if v > maxExactFloat64Int {
			return ErrStrategyOverflow
		}
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// computeOptStrategyPostL walks both trees in left-to-right
// postorder, accumulating partial left/right/inner costs per node and
// propagating them to each node's parent as soon as all of a node's
// children have been processed.
func computeOptStrategyPostL[T any](it1, it2 *indexer.Indexer[T]) *Matrix {
	size1 := it1.Size()
	size2 := it2.Size()

	delta := NewMatrix(size1, size2)

	cost1L := make([][]float64, size1)
	cost1R := make([][]float64, size1)
	cost1I := make([][]float64, size1)
	cost2L := make([]float64, size2)
	cost2R := make([]float64, size2)
	cost2I := make([]float64, size2)
	cost2Path := make([]int, size2)
	leafRow := make([]float64, size2)
	pathIDOffset := size1

	var rowsToReuseL, rowsToReuseR, rowsToReuseI [][]float64

	for v := 0; v < size1; v++ {
		vInPreL := it1.PostLToPreL[v]

		isVLeaf := it1.IsLeaf(vInPreL)
		parentVPreL := it1.Parents[vInPreL]

		parentVPostL := -1
		if parentVPreL != -1 {
			parentVPostL = it1.PreLToPostL[parentVPreL]
		}

		sizeV := it1.Sizes[vInPreL]
		leftPathV := -(it1.PreRToPreL[it1.PreLToPreR[vInPreL]+sizeV-1] + 1)
		rightPathV := vInPreL + sizeV - 1 + 1
		krSumV := it1.PreLToKRSum[vInPreL]
		revkrSumV := it1.PreLToRevKRSum[vInPreL]
		descSumV := it1.PreLToDescSum[vInPreL]

		if isVLeaf {
			cost1L[v] = leafRow
			cost1R[v] = leafRow
			cost1I[v] = leafRow
			for i := 0; i < size2; i++ {
				delta.Cells[vInPreL][it2.PostLToPreL[i]] = float64(vInPreL)
			}
		}

		costLpointerV := cost1L[v]
		costRpointerV := cost1R[v]
		costIpointerV := cost1I[v]

		var costLpointerParentV, costRpointerParentV, costIpointerParentV []float64
		var strategyPointerParentV []float64

		if parentVPreL != -1 && len(cost1L[parentVPostL]) == 0 {
			if len(rowsToReuseL) == 0 {
				cost1L[parentVPostL] = make([]float64, size2)
				cost1R[parentVPostL] = make([]float64, size2)
				cost1I[parentVPostL] = make([]float64, size2)
			} else {
				n := len(rowsToReuseL) - 1
				cost1L[parentVPostL] = rowsToReuseL[n]
				rowsToReuseL = rowsToReuseL[:n]
				cost1R[parentVPostL] = rowsToReuseR[n]
				rowsToReuseR = rowsToReuseR[:n]
				cost1I[parentVPostL] = rowsToReuseI[n]
				rowsToReuseI = rowsToReuseI[:n]
			}
		}

		if parentVPreL != -1 {
			costLpointerParentV = cost1L[parentVPostL]
			costRpointerParentV = cost1R[parentVPostL]
			costIpointerParentV = cost1I[parentVPostL]
			strategyPointerParentV = delta.Cells[parentVPreL]
		}

		for i := range cost2L {
			cost2L[i] = 0
			cost2R[i] = 0
			cost2I[i] = 0
			cost2Path[i] = 0
		}

		for w := 0; w < size2; w++ {
			wInPreL := it2.PostLToPreL[w]

			parentWPreL := it2.Parents[wInPreL]
			parentWPostL := -1
			if parentWPreL != -1 {
				parentWPostL = it2.PreLToPostL[parentWPreL]
			}

			sizeW := it2.Sizes[wInPreL]
			if it2.IsLeaf(wInPreL) {
				cost2L[w] = 0
				cost2R[w] = 0
				cost2I[w] = 0
				cost2Path[w] = wInPreL
			}

			minCost := math.MaxFloat64
			strategyPath := -1

			if sizeV <= 1 || sizeW <= 1 {
				minCost = float64(maxInt(sizeV, sizeW))
			} else {
				tmpCost := float64(sizeV)*float64(it2.PreLToKRSum[wInPreL]) + costLpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = leftPathV
				}
				tmpCost = float64(sizeV)*float64(it2.PreLToRevKRSum[wInPreL]) + costRpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = rightPathV
				}
				tmpCost = float64(sizeV)*float64(it2.PreLToDescSum[wInPreL]) + costIpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = int(delta.Cells[vInPreL][wInPreL]) + 1
				}
				tmpCost = float64(sizeW)*float64(krSumV) + cost2L[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = -(it2.PreRToPreL[it2.PreLToPreR[wInPreL]+sizeW-1] + pathIDOffset + 1)
				}
				tmpCost = float64(sizeW)*float64(revkrSumV) + cost2R[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = wInPreL + sizeW - 1 + pathIDOffset + 1
				}
				tmpCost = float64(sizeW)*float64(descSumV) + cost2I[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = cost2Path[w] + pathIDOffset + 1
				}
			}

			if parentVPreL != -1 {
				costRpointerParentV[w] += minCost
				tmpCost := -minCost + cost1I[v][w]
				if tmpCost < cost1I[parentVPostL][w] {
					costIpointerParentV[w] = tmpCost
					strategyPointerParentV[wInPreL] = delta.Cells[vInPreL][wInPreL]
				}
				if it1.NodeTypeR[vInPreL] {
					costIpointerParentV[w] += costRpointerParentV[w]
					costRpointerParentV[w] += costRpointerV[w] - minCost
				}
				if it1.NodeTypeL[vInPreL] {
					costLpointerParentV[w] += costLpointerV[w]
				} else {
					costLpointerParentV[w] += minCost
				}
			}
			if parentWPreL != -1 {
				cost2R[parentWPostL] += minCost
				tmpCost := -minCost + cost2I[w]
				if tmpCost < cost2I[parentWPostL] {
					cost2I[parentWPostL] = tmpCost
					cost2Path[parentWPostL] = cost2Path[w]
				}
				if it2.NodeTypeR[wInPreL] {
					cost2I[parentWPostL] += cost2R[parentWPostL]
					cost2R[parentWPostL] += cost2R[w] - minCost
				}
				if it2.NodeTypeL[wInPreL] {
					cost2L[parentWPostL] += cost2L[w]
				} else {
					cost2L[parentWPostL] += minCost
				}
			}
			delta.Cells[vInPreL][wInPreL] = float64(strategyPath)
		}

		if !it1.IsLeaf(vInPreL) {
			for i := range cost1L[v] {
				cost1L[v][i] = 0
				cost1R[v][i] = 0
				cost1I[v][i] = 0
			}
			rowsToReuseL = append(rowsToReuseL, cost1L[v])
			rowsToReuseR = append(rowsToReuseR, cost1R[v])
			rowsToReuseI = append(rowsToReuseI, cost1I[v])
		}
	}

	return delta
}

// computeOptStrategyPostR is the mirror of computeOptStrategyPostL
// using right-to-left postorder (expressed directly over preorder ids
// walked from size-1 down to 0, since preorder id order and
// right-to-left postorder processing order coincide here).
func computeOptStrategyPostR[T any](it1, it2 *indexer.Indexer[T]) *Matrix {
	size1 := it1.Size()
	size2 := it2.Size()

	delta := NewMatrix(size1, size2)

	cost1L := make([][]float64, size1)
	cost1R := make([][]float64, size1)
	cost1I := make([][]float64, size1)
	cost2L := make([]float64, size2)
	cost2R := make([]float64, size2)
	cost2I := make([]float64, size2)
	cost2Path := make([]int, size2)
	leafRow := make([]float64, size2)
	pathIDOffset := size1

	var rowsToReuseL, rowsToReuseR, rowsToReuseI [][]float64

	for v := size1 - 1; v >= 0; v-- {
		isVLeaf := it1.IsLeaf(v)
		parentV := it1.Parents[v]

		sizeV := it1.Sizes[v]
		leftPathV := -(it1.PreRToPreL[it1.PreLToPreR[v]+sizeV-1] + 1)
		rightPathV := v + sizeV - 1 + 1
		krSumV := it1.PreLToKRSum[v]
		revkrSumV := it1.PreLToRevKRSum[v]
		descSumV := it1.PreLToDescSum[v]

		if isVLeaf {
			cost1L[v] = leafRow
			cost1R[v] = leafRow
			cost1I[v] = leafRow
			for i := 0; i < size2; i++ {
				delta.Cells[v][i] = float64(v)
			}
		}

		costLpointerV := cost1L[v]
		costRpointerV := cost1R[v]
		costIpointerV := cost1I[v]

		var costLpointerParentV, costRpointerParentV, costIpointerParentV []float64
		var strategyPointerParentV []float64

		if parentV != -1 && len(cost1L[parentV]) == 0 {
			if len(rowsToReuseL) == 0 {
				cost1L[parentV] = make([]float64, size2)
				cost1R[parentV] = make([]float64, size2)
				cost1I[parentV] = make([]float64, size2)
			} else {
				n := len(rowsToReuseL) - 1
				cost1L[parentV] = rowsToReuseL[n]
				rowsToReuseL = rowsToReuseL[:n]
				cost1R[parentV] = rowsToReuseR[n]
				rowsToReuseR = rowsToReuseR[:n]
				cost1I[parentV] = rowsToReuseI[n]
				rowsToReuseI = rowsToReuseI[:n]
			}
		}

		if parentV != -1 {
			costLpointerParentV = cost1L[parentV]
			costRpointerParentV = cost1R[parentV]
			costIpointerParentV = cost1I[parentV]
			strategyPointerParentV = delta.Cells[parentV]
		}

		for i := range cost2L {
			cost2L[i] = 0
			cost2R[i] = 0
			cost2I[i] = 0
			cost2Path[i] = 0
		}

		for w := size2 - 1; w >= 0; w-- {
			sizeW := it2.Sizes[w]
			if it2.IsLeaf(w) {
				cost2L[w] = 0
				cost2R[w] = 0
				cost2I[w] = 0
				cost2Path[w] = w
			}

			minCost := math.MaxFloat64
			strategyPath := -1

			if sizeV <= 1 || sizeW <= 1 {
				minCost = float64(maxInt(sizeV, sizeW))
			} else {
				tmpCost := float64(sizeV)*float64(it2.PreLToKRSum[w]) + costLpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = leftPathV
				}
				tmpCost = float64(sizeV)*float64(it2.PreLToRevKRSum[w]) + costRpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = rightPathV
				}
				tmpCost = float64(sizeV)*float64(it2.PreLToDescSum[w]) + costIpointerV[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = int(delta.Cells[v][w]) + 1
				}
				tmpCost = float64(sizeW)*float64(krSumV) + cost2L[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = -(it2.PreRToPreL[it2.PreLToPreR[w]+sizeW-1] + pathIDOffset + 1)
				}
				tmpCost = float64(sizeW)*float64(revkrSumV) + cost2R[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = w + sizeW - 1 + pathIDOffset + 1
				}
				tmpCost = float64(sizeW)*float64(descSumV) + cost2I[w]
				if tmpCost < minCost {
					minCost = tmpCost
					strategyPath = cost2Path[w] + pathIDOffset + 1
				}
			}

			if parentV != -1 {
				costLpointerParentV[w] += minCost
				tmpCost := -minCost + cost1I[v][w]
				if tmpCost < cost1I[parentV][w] {
					costIpointerParentV[w] = tmpCost
					strategyPointerParentV[w] = delta.Cells[v][w]
				}
				if it1.NodeTypeL[v] {
					costIpointerParentV[w] += costLpointerParentV[w]
					costLpointerParentV[w] += costLpointerV[w] - minCost
				}
				if it1.NodeTypeR[v] {
					costRpointerParentV[w] += costRpointerV[w]
				} else {
					costRpointerParentV[w] += minCost
				}
			}
			parentW := it2.Parents[w]
			if parentW != -1 {
				cost2L[parentW] += minCost
				tmpCost := -minCost + cost2I[w]
				if tmpCost < cost2I[parentW] {
					cost2I[parentW] = tmpCost
					cost2Path[parentW] = cost2Path[w]
				}
				if it2.NodeTypeL[w] {
					cost2I[parentW] += cost2L[parentW]
					cost2L[parentW] += cost2L[w] - minCost
				}
				if it2.NodeTypeR[w] {
					cost2R[parentW] += cost2R[w]
				} else {
					cost2R[parentW] += minCost
				}
			}
			delta.Cells[v][w] = float64(strategyPath)
		}

		if !it1.IsLeaf(v) {
			for i := range cost1L[v] {
				cost1L[v][i] = 0
				cost1R[v][i] = 0
				cost1I[v][i] = 0
			}
			rowsToReuseL = append(rowsToReuseL, cost1L[v])
			rowsToReuseR = append(rowsToReuseR, cost1R[v])
			rowsToReuseI = append(rowsToReuseI, cost1I[v])
		}
	}

	return delta
}
