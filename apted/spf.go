package apted

import "github.com/katalvlaran/apted/indexer"

// spf1 computes the distance between two subtrees directly when at
// least one of them is a single node, without walking any
// decomposition path.
func (r *run[T]) spf1(ni1 *indexer.Indexer[T], subtreeRootNode1 int, ni2 *indexer.Indexer[T], subtreeRootNode2 int) float64 {
	subtreeSize1 := ni1.Sizes[subtreeRootNode1]
	subtreeSize2 := ni2.Sizes[subtreeRootNode2]

	if subtreeSize1 == 1 && subtreeSize2 == 1 {
		n1 := ni1.PreLToNode[subtreeRootNode1]
		n2 := ni2.PreLToNode[subtreeRootNode2]
		maxCost := r.model.DeleteCost(n1) + r.model.InsertCost(n2)
		renCost := r.model.RenameCost(n1, n2)
		return minFloat(renCost, maxCost)
	}

	if subtreeSize1 == 1 {
		n1 := ni1.PreLToNode[subtreeRootNode1]
		cost := ni2.PreLToSumInsCost[subtreeRootNode2]
		maxCost := cost + r.model.DeleteCost(n1)
		minRenMinusIns := cost
		for i := subtreeRootNode2; i < subtreeRootNode2+subtreeSize2; i++ {
			n2 := ni2.PreLToNode[i]
			nodeRenMinusIns := r.model.RenameCost(n1, n2) - r.model.InsertCost(n2)
			if nodeRenMinusIns < minRenMinusIns {
				minRenMinusIns = nodeRenMinusIns
			}
		}
		cost += minRenMinusIns
		return minFloat(cost, maxCost)
	}

	// subtreeSize2 == 1
	n2 := ni2.PreLToNode[subtreeRootNode2]
	cost := ni1.PreLToSumDelCost[subtreeRootNode1]
	maxCost := cost + r.model.InsertCost(n2)
	minRenMinusDel := cost
	for i := subtreeRootNode1; i < subtreeRootNode1+subtreeSize1; i++ {
		n1 := ni1.PreLToNode[i]
		nodeRenMinusDel := r.model.RenameCost(n1, n2) - r.model.DeleteCost(n1)
		if nodeRenMinusDel < minRenMinusDel {
			minRenMinusDel = nodeRenMinusDel
		}
	}
	cost += minRenMinusDel
	return minFloat(cost, maxCost)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// spfL computes the distance between the subtrees currently rooted at
// it1 and it2's cursors using the Zhang-Shasha keyroot recurrence
// restricted to the left path of it2's subtree: only it2's keyroot
// nodes (and the whole of it1's subtree) need their own
// forest-distance table.
func (r *run[T]) spfL(it1, it2 *indexer.Indexer[T], treesSwapped bool) float64 {
	root2 := it2.CurrentNode()
	keyRoots := make([]int, it2.Sizes[root2])
	for i := range keyRoots {
		keyRoots[i] = -1
	}

	pathID := it2.PreLToLLD(root2)
	firstKeyRoot := r.computeKeyRoots(it2, root2, pathID, keyRoots, 0)

	root1 := it1.CurrentNode()
	forestdist := make2D(it1.Sizes[root1]+1, it2.Sizes[root2]+1)

	for i := firstKeyRoot - 1; i >= 0; i-- {
		r.treeEditDist(it1, it2, root1, keyRoots[i], forestdist, treesSwapped)
	}

	return forestdist[it1.Sizes[root1]][it2.Sizes[root2]]
}

func (r *run[T]) computeKeyRoots(it2 *indexer.Indexer[T], subtreeRootNode, pathID int, keyRoots []int, index int) int {
	keyRoots[index] = subtreeRootNode
	index++

	pathNode := pathID
	for pathNode > subtreeRootNode {
		parent := it2.Parents[pathNode]
		for _, child := range it2.Children[parent] {
			if child != pathNode {
				index = r.computeKeyRoots(it2, child, it2.PreLToLLD(child), keyRoots, index)
			}
		}
		pathNode = parent
	}

	return index
}

// treeEditDist fills forestdist with the distances between every
// subforest pair of it1's subtree rooted at it1subtree and it2's
// subtree rooted at it2subtree, indexed by left-to-right postorder
// offsets, caching subtree-level results into r.delta as it goes.
func (r *run[T]) treeEditDist(it1, it2 *indexer.Indexer[T], it1subtree, it2subtree int, forestdist [][]float64, treesSwapped bool) {
	i := it1.PreLToPostL[it1subtree]
	j := it2.PreLToPostL[it2subtree]

	ioff := it1.PostLToLLD[i] - 1
	joff := it2.PostLToLLD[j] - 1

	forestdist[0][0] = 0
	for i1 := 1; i1 <= i-ioff; i1++ {
		n1 := it1.PostLToNode(i1 + ioff)
		var c float64
		if treesSwapped {
			c = r.model.InsertCost(n1)
		} else {
			c = r.model.DeleteCost(n1)
		}
		forestdist[i1][0] = forestdist[i1-1][0] + c
	}
	for j1 := 1; j1 <= j-joff; j1++ {
		n2 := it2.PostLToNode(j1 + joff)
		var c float64
		if treesSwapped {
			c = r.model.DeleteCost(n2)
		} else {
			c = r.model.InsertCost(n2)
		}
		forestdist[0][j1] = forestdist[0][j1-1] + c
	}

	for i1 := 1; i1 <= i-ioff; i1++ {
		for j1 := 1; j1 <= j-joff; j1++ {
			r.counter++

			n1 := it1.PostLToNode(i1 + ioff)
			n2 := it2.PostLToNode(j1 + joff)

			var u float64
			if treesSwapped {
				u = r.model.RenameCost(n2, n1)
			} else {
				u = r.model.RenameCost(n1, n2)
			}

			var delCost, insCost float64
			if treesSwapped {
				delCost = r.model.InsertCost(n1)
				insCost = r.model.DeleteCost(n2)
			} else {
				delCost = r.model.DeleteCost(n1)
				insCost = r.model.InsertCost(n2)
			}
			da := forestdist[i1-1][j1] + delCost
			db := forestdist[i1][j1-1] + insCost

			var dc float64
			if it1.PostLToLLD[i1+ioff] == it1.PostLToLLD[i] && it2.PostLToLLD[j1+joff] == it2.PostLToLLD[j] {
				dc = forestdist[i1-1][j1-1] + u
				if treesSwapped {
					r.delta.Cells[it2.PostLToPreL[j1+joff]][it1.PostLToPreL[i1+ioff]] = forestdist[i1-1][j1-1]
				} else {
					r.delta.Cells[it1.PostLToPreL[i1+ioff]][it2.PostLToPreL[j1+joff]] = forestdist[i1-1][j1-1]
				}
			} else {
				var cached float64
				if treesSwapped {
					cached = r.delta.Cells[it2.PostLToPreL[j1+joff]][it1.PostLToPreL[i1+ioff]]
				} else {
					cached = r.delta.Cells[it1.PostLToPreL[i1+ioff]][it2.PostLToPreL[j1+joff]]
				}
				dc = forestdist[it1.PostLToLLD[i1+ioff]-1-ioff][it2.PostLToLLD[j1+joff]-1-joff] + cached + u
			}

			forestdist[i1][j1] = minFloat(minFloat(da, db), dc)
		}
	}
}

// spfR is spfL's mirror over right-to-left postorder.
func (r *run[T]) spfR(it1, it2 *indexer.Indexer[T], treesSwapped bool) float64 {
	root2 := it2.CurrentNode()
	revKeyRoots := make([]int, it2.Sizes[root2])
	for i := range revKeyRoots {
		revKeyRoots[i] = -1
	}

	pathID := it2.PreLToRLD(root2)
	firstKeyRoot := r.computeRevKeyRoots(it2, root2, pathID, revKeyRoots, 0)

	root1 := it1.CurrentNode()
	forestdist := make2D(it1.Sizes[root1]+1, it2.Sizes[root2]+1)

	for i := firstKeyRoot - 1; i >= 0; i-- {
		r.revTreeEditDist(it1, it2, root1, revKeyRoots[i], forestdist, treesSwapped)
	}

	return forestdist[it1.Sizes[root1]][it2.Sizes[root2]]
}

func (r *run[T]) computeRevKeyRoots(it2 *indexer.Indexer[T], subtreeRootNode, pathID int, revKeyRoots []int, index int) int {
	revKeyRoots[index] = subtreeRootNode
	index++

	pathNode := pathID
	for pathNode > subtreeRootNode {
		parent := it2.Parents[pathNode]
		for _, child := range it2.Children[parent] {
			if child != pathNode {
				index = r.computeRevKeyRoots(it2, child, it2.PreLToRLD(child), revKeyRoots, index)
			}
		}
		pathNode = parent
	}

	return index
}

func (r *run[T]) revTreeEditDist(it1, it2 *indexer.Indexer[T], it1subtree, it2subtree int, forestdist [][]float64, treesSwapped bool) {
	i := it1.PreLToPostR[it1subtree]
	j := it2.PreLToPostR[it2subtree]

	ioff := it1.PostRToRLD[i] - 1
	joff := it2.PostRToRLD[j] - 1

	forestdist[0][0] = 0
	for i1 := 1; i1 <= i-ioff; i1++ {
		n1 := it1.PostRToNode(i1 + ioff)
		var c float64
		if treesSwapped {
			c = r.model.InsertCost(n1)
		} else {
			c = r.model.DeleteCost(n1)
		}
		forestdist[i1][0] = forestdist[i1-1][0] + c
	}
	for j1 := 1; j1 <= j-joff; j1++ {
		n2 := it2.PostRToNode(j1 + joff)
		var c float64
		if treesSwapped {
			c = r.model.DeleteCost(n2)
		} else {
			c = r.model.InsertCost(n2)
		}
		forestdist[0][j1] = forestdist[0][j1-1] + c
	}

	for i1 := 1; i1 <= i-ioff; i1++ {
		for j1 := 1; j1 <= j-joff; j1++ {
			r.counter++

			n1 := it1.PostRToNode(i1 + ioff)
			n2 := it2.PostRToNode(j1 + joff)

			var u float64
			if treesSwapped {
				u = r.model.RenameCost(n2, n1)
			} else {
				u = r.model.RenameCost(n1, n2)
			}

			var delCost, insCost float64
			if treesSwapped {
				delCost = r.model.InsertCost(n1)
				insCost = r.model.DeleteCost(n2)
			} else {
				delCost = r.model.DeleteCost(n1)
				insCost = r.model.InsertCost(n2)
			}
			da := forestdist[i1-1][j1] + delCost
			db := forestdist[i1][j1-1] + insCost

			var dc float64
			if it1.PostRToRLD[i1+ioff] == it1.PostRToRLD[i] && it2.PostRToRLD[j1+joff] == it2.PostRToRLD[j] {
				dc = forestdist[i1-1][j1-1] + u
				if treesSwapped {
					r.delta.Cells[it2.PostRToPreL[j1+joff]][it1.PostRToPreL[i1+ioff]] = forestdist[i1-1][j1-1]
				} else {
					r.delta.Cells[it1.PostRToPreL[i1+ioff]][it2.PostRToPreL[j1+joff]] = forestdist[i1-1][j1-1]
				}
			} else {
				var cached float64
				if treesSwapped {
					cached = r.delta.Cells[it2.PostRToPreL[j1+joff]][it1.PostRToPreL[i1+ioff]]
				} else {
					cached = r.delta.Cells[it1.PostRToPreL[i1+ioff]][it2.PostRToPreL[j1+joff]]
				}
				dc = forestdist[it1.PostRToRLD[i1+ioff]-1-ioff][it2.PostRToRLD[j1+joff]-1-joff] + cached + u
			}

			forestdist[i1][j1] = minFloat(minFloat(da, db), dc)
		}
	}
}

func make2D(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}
