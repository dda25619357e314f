package apted

import "github.com/katalvlaran/apted/indexer"

// spfA computes the distance between the subtrees currently rooted at
// it1 and it2's cursors by walking the single decomposition path
// named by pathID (of the given pathType, relative to it1's subtree)
// node by node from its far end up to the subtree root, solving a
// forest-distance recurrence against every node of it2's subtree at
// each step. gted calls it only for paths of type pathInner; paths
// along the left or right boundary go to spfL or spfR.
//
// treesSwapped tells the recurrence whether it1/it2 here are in the
// same order as the engine's original t1/t2 (false) or swapped
// (true); the cost-model calls below flip delete<->insert accordingly
// so the aggregated cost always has the correct meaning as "edit t1
// into t2".
func (r *run[T]) spfA(it1, it2 *indexer.Indexer[T], pathID, pathType int, treesSwapped bool) float64 {
	it2nodes := it2.PreLToNode
	it1sizes := it1.Sizes
	it2sizes := it2.Sizes
	it1parents := it1.Parents
	it2parents := it2.Parents
	it1preLToPreR := it1.PreLToPreR
	it2preLToPreR := it2.PreLToPreR
	it1preRToPreL := it1.PreRToPreL
	it2preRToPreL := it2.PreRToPreL

	currentSubtreePreL1 := it1.CurrentNode()
	currentSubtreePreL2 := it2.CurrentNode()

	currentForestSize1 := 0
	currentForestSize2 := 0
	tmpForestSize1 := 0

	currentForestCost1 := 0.0
	currentForestCost2 := 0.0
	tmpForestCost1 := 0.0

	subtreeSize2 := it2sizes[currentSubtreePreL2]
	subtreeSize1 := it1sizes[currentSubtreePreL1]
	t := make2D(subtreeSize2+1, subtreeSize2+1)
	s := make2D(subtreeSize1+1, subtreeSize2+1)

	minCost := -1.0
	var sp1, sp2, sp3 float64

	startPathNode := -1
	endPathNode := pathID
	it1PreLoff := endPathNode
	it2PreLoff := currentSubtreePreL2
	it1PreRoff := it1preLToPreR[endPathNode]
	it2PreRoff := it2preLToPreR[it2PreLoff]

	var rFlast, lFlast int
	var lFfirst, rFfirst, rGlast, rGfirst, lGfirst int
	var rGInPreL, rGminus1InPreL, parentOfRGInPreL, lGlast int
	var lFInPreR, lFSubtreeSize int
	var lGminus1InPreR, parentOfLG, parentOfLGInPreR int
	var rFInPreL, rFSubtreeSize, rGfirstInPreL int

	var leftPart, rightPart, fForestIsTree bool
	var lFIsConsecutiveNodeOfCurrentPathNode, lFIsLeftSiblingOfCurrentPathNode bool
	var rFIsConsecutiveNodeOfCurrentPathNode, rFIsRightSiblingOfCurrentPathNode bool

	const sourceS = 1
	const sourceT = 2
	const sourceForestCost = 3
	var sp1source, sp3source int

	// Loop A — walk up the path.
	for endPathNode >= currentSubtreePreL1 {
		it1PreLoff = endPathNode
		it1PreRoff = it1preLToPreR[endPathNode]
		rFlast = -1
		lFlast = -1
		endPathNodeInPreR := it1preLToPreR[endPathNode]
		startPathNodeInPreR := maxIntConst
		if startPathNode != -1 {
			startPathNodeInPreR = it1preLToPreR[startPathNode]
		}
		parentOfEndPathNode := it1parents[endPathNode]
		parentOfEndPathNodeInPreR := maxIntConst
		if parentOfEndPathNode != -1 {
			parentOfEndPathNodeInPreR = it1preLToPreR[parentOfEndPathNode]
		}

		leftPart = startPathNode-endPathNode > 1
		rightPart = startPathNode >= 0 && startPathNodeInPreR-endPathNodeInPreR > 1

		// Deal with nodes to the left of the path.
		if pathType == pathRight || (pathType == pathInner && leftPart) {
			if startPathNode == -1 {
				rFfirst = endPathNodeInPreR
				lFfirst = endPathNode
			} else {
				rFfirst = startPathNodeInPreR
				lFfirst = startPathNode - 1
			}

			if !rightPart {
				rFlast = endPathNodeInPreR
			}

			rGlast = it2preLToPreR[currentSubtreePreL2]
			rGfirst = (rGlast + subtreeSize2) - 1
			if rightPart {
				lFlast = endPathNode + 1
			} else {
				lFlast = endPathNode
			}
			r.fn[len(r.fn)-1] = -1

			for i := currentSubtreePreL2; i < currentSubtreePreL2+subtreeSize2; i++ {
				r.fn[i] = -1
				r.ft[i] = -1
			}

			tmpForestSize1 = currentForestSize1
			tmpForestCost1 = currentForestCost1

			// Loop B — for all nodes in G (right-hand input tree).
			for rG := rGfirst; rG >= rGlast; rG-- {
				lGfirst = it2preRToPreL[rG]
				rGInPreL = it2preRToPreL[rG]
				if rG <= it2preLToPreR[currentSubtreePreL2] {
					rGminus1InPreL = maxIntConst
				} else {
					rGminus1InPreL = it2preRToPreL[rG-1]
				}
				parentOfRGInPreL = it2parents[rGInPreL]
				if pathType == pathRight {
					if lGfirst == currentSubtreePreL2 || rGminus1InPreL != parentOfRGInPreL {
						lGlast = lGfirst
					} else {
						lGlast = it2parents[lGfirst] + 1
					}
				} else {
					if lGfirst == currentSubtreePreL2 {
						lGlast = lGfirst
					} else {
						lGlast = currentSubtreePreL2 + 1
					}
				}

				r.updateFnArray(it2.PreLToLN[lGfirst], lGfirst, currentSubtreePreL2)
				r.updateFtArray(it2.PreLToLN[lGfirst], lGfirst)
				rF := rFfirst

				currentForestSize1 = tmpForestSize1
				currentForestCost1 = tmpForestCost1

				// Loop C — for all nodes to the left of the path node.
				for lF := lFfirst; lF >= lFlast; lF-- {
					if lF == lFlast && !rightPart {
						rF = rFlast
					}

					lFNode := it1.PreLToNode[lF]
					currentForestSize1++
					if treesSwapped {
						currentForestCost1 += r.model.InsertCost(lFNode)
					} else {
						currentForestCost1 += r.model.DeleteCost(lFNode)
					}

					currentForestSize2 = it2sizes[lGfirst]
					if treesSwapped {
						currentForestCost2 = it2.PreLToSumDelCost[lGfirst]
					} else {
						currentForestCost2 = it2.PreLToSumInsCost[lGfirst]
					}
					lFInPreR = it1preLToPreR[lF]
					fForestIsTree = lFInPreR == rF
					lFSubtreeSize = it1sizes[lF]
					lFIsConsecutiveNodeOfCurrentPathNode = startPathNode-lF == 1
					lFIsLeftSiblingOfCurrentPathNode = lF+lFSubtreeSize == startPathNode
					sp1source = sourceS
					sp3source = sourceS

					if fForestIsTree {
						if lFSubtreeSize == 1 {
							sp1source = sourceForestCost
						} else if lFIsConsecutiveNodeOfCurrentPathNode {
							sp1source = sourceT
						}
						sp3 = 0
						sp3source = sourceT
					} else {
						if lFIsConsecutiveNodeOfCurrentPathNode {
							sp1source = sourceT
						}
						if treesSwapped {
							sp3 = currentForestCost1 - it1.PreLToSumInsCost[lF]
						} else {
							sp3 = currentForestCost1 - it1.PreLToSumDelCost[lF]
						}
						if lFIsLeftSiblingOfCurrentPathNode {
							sp3source = sourceForestCost
						}
					}

					sp3RowOffset := lF + lFSubtreeSize

					lG := lGfirst

					switch sp1source {
					case sourceS:
						sp1 = s[(lF+1)-it1PreLoff][lG-it2PreLoff]
					case sourceT:
						sp1 = t[lG-it2PreLoff][rG-it2PreRoff]
					case sourceForestCost:
						sp1 = currentForestCost2
					}
					if treesSwapped {
						sp1 += r.model.InsertCost(lFNode)
					} else {
						sp1 += r.model.DeleteCost(lFNode)
					}
					minCost = sp1

					if currentForestSize2 == 1 {
						sp2 = currentForestCost1
					} else {
						sp2 = r.q[lF]
					}
					if treesSwapped {
						sp2 += r.model.DeleteCost(it2nodes[lG])
					} else {
						sp2 += r.model.InsertCost(it2nodes[lG])
					}
					if sp2 < minCost {
						minCost = sp2
					}

					if sp3 < minCost {
						if treesSwapped {
							sp3 += r.delta.Cells[lG][lF]
						} else {
							sp3 += r.delta.Cells[lF][lG]
						}
						if sp3 < minCost {
							if treesSwapped {
								sp3 += r.model.RenameCost(it2nodes[lG], lFNode)
							} else {
								sp3 += r.model.RenameCost(lFNode, it2nodes[lG])
							}
							if sp3 < minCost {
								minCost = sp3
							}
						}
					}

					s[lF-it1PreLoff][lG-it2PreLoff] = minCost

					lG = r.ft[lG]
					r.counter++

					// Loop D — for all nodes to the left of rG.
					for lG >= lGlast {
						currentForestSize2++
						if treesSwapped {
							currentForestCost2 += r.model.DeleteCost(it2nodes[lG])
						} else {
							currentForestCost2 += r.model.InsertCost(it2nodes[lG])
						}
						var delCost float64
						if treesSwapped {
							delCost = r.model.InsertCost(lFNode)
						} else {
							delCost = r.model.DeleteCost(lFNode)
						}
						switch sp1source {
						case sourceS:
							sp1 = s[(lF+1)-it1PreLoff][lG-it2PreLoff] + delCost
						case sourceT:
							sp1 = t[lG-it2PreLoff][rG-it2PreRoff] + delCost
						case sourceForestCost:
							sp1 = currentForestCost2 + delCost
						}

						var insCost float64
						if treesSwapped {
							insCost = r.model.DeleteCost(it2nodes[lG])
						} else {
							insCost = r.model.InsertCost(it2nodes[lG])
						}
						sp2 = s[lF-it1PreLoff][r.fn[lG]-it2PreLoff] + insCost
						minCost = sp1
						if sp2 < minCost {
							minCost = sp2
						}

						if treesSwapped {
							sp3 = r.delta.Cells[lG][lF]
						} else {
							sp3 = r.delta.Cells[lF][lG]
						}
						if sp3 < minCost {
							switch sp3source {
							case sourceS:
								sp3 += s[sp3RowOffset-it1PreLoff][r.fn[(lG+it2sizes[lG])-1]-it2PreLoff]
							case sourceT:
								if treesSwapped {
									sp3 += currentForestCost2 - it2.PreLToSumDelCost[lG]
								} else {
									sp3 += currentForestCost2 - it2.PreLToSumInsCost[lG]
								}
							case sourceForestCost:
								sp3 += t[r.fn[(lG+it2sizes[lG])-1]-it2PreLoff][rG-it2PreRoff]
							}
							if sp3 < minCost {
								if treesSwapped {
									sp3 += r.model.RenameCost(it2nodes[lG], lFNode)
								} else {
									sp3 += r.model.RenameCost(lFNode, it2nodes[lG])
								}
								if sp3 < minCost {
									minCost = sp3
								}
							}
						}
						s[lF-it1PreLoff][lG-it2PreLoff] = minCost
						lG = r.ft[lG]
						r.counter++
					}
				}

				if rGminus1InPreL == parentOfRGInPreL {
					if !rightPart {
						if leftPart {
							if treesSwapped {
								r.delta.Cells[parentOfRGInPreL][endPathNode] = s[(lFlast+1)-it1PreLoff][(rGminus1InPreL+1)-it2PreLoff]
							} else {
								r.delta.Cells[endPathNode][parentOfRGInPreL] = s[(lFlast+1)-it1PreLoff][(rGminus1InPreL+1)-it2PreLoff]
							}
						}
						if endPathNode > 0 && endPathNode == parentOfEndPathNode+1 && endPathNodeInPreR == parentOfEndPathNodeInPreR+1 {
							if treesSwapped {
								r.delta.Cells[parentOfRGInPreL][parentOfEndPathNode] = s[lFlast-it1PreLoff][(rGminus1InPreL+1)-it2PreLoff]
							} else {
								r.delta.Cells[parentOfEndPathNode][parentOfRGInPreL] = s[lFlast-it1PreLoff][(rGminus1InPreL+1)-it2PreLoff]
							}
						}
					}

					for lF := lFfirst; lF >= lFlast; lF-- {
						r.q[lF] = s[lF-it1PreLoff][(parentOfRGInPreL+1)-it2PreLoff]
					}
				}

				for lG := lGfirst; lG >= lGlast; lG = r.ft[lG] {
					t[lG-it2PreLoff][rG-it2PreRoff] = s[lFlast-it1PreLoff][lG-it2PreLoff]
				}
			}
		}

		// Deal with nodes to the right of the path.
		if pathType == pathLeft || (pathType == pathInner && rightPart) || (pathType == pathInner && !leftPart && !rightPart) {
			if startPathNode == -1 {
				lFfirst = endPathNode
				rFfirst = it1preLToPreR[endPathNode]
			} else {
				rFfirst = it1preLToPreR[startPathNode] - 1
				lFfirst = endPathNode + 1
			}

			lFlast = endPathNode
			lGlast = currentSubtreePreL2
			lGfirst = (lGlast + subtreeSize2) - 1
			rFlast = it1preLToPreR[endPathNode]
			r.fn[len(r.fn)-1] = -1

			for i := currentSubtreePreL2; i < currentSubtreePreL2+subtreeSize2; i++ {
				r.fn[i] = -1
				r.ft[i] = -1
			}

			tmpForestSize1 = currentForestSize1
			tmpForestCost1 = currentForestCost1

			// Loop B' — for all nodes in G.
			for lG := lGfirst; lG >= lGlast; lG-- {
				rGfirst = it2preLToPreR[lG]
				r.updateFnArray(it2.PreRToLN[rGfirst], rGfirst, it2preLToPreR[currentSubtreePreL2])
				r.updateFtArray(it2.PreRToLN[rGfirst], rGfirst)
				lF := lFfirst
				if lG <= currentSubtreePreL2 {
					lGminus1InPreR = maxIntConst
				} else {
					lGminus1InPreR = it2preLToPreR[lG-1]
				}
				parentOfLG = it2parents[lG]
				if parentOfLG == -1 {
					parentOfLGInPreR = -1
				} else {
					parentOfLGInPreR = it2preLToPreR[parentOfLG]
				}

				currentForestSize1 = tmpForestSize1
				currentForestCost1 = tmpForestCost1

				if pathType == pathLeft {
					if lG == currentSubtreePreL2 {
						rGlast = rGfirst
					} else if it2.Children[parentOfLG][0] != lG {
						rGlast = rGfirst
					} else {
						rGlast = it2preLToPreR[parentOfLG] + 1
					}
				} else {
					if rGfirst == it2preLToPreR[currentSubtreePreL2] {
						rGlast = rGfirst
					} else {
						rGlast = it2preLToPreR[currentSubtreePreL2]
					}
				}

				// Loop C' — for all nodes to the right of the path node.
				for rF := rFfirst; rF >= rFlast; rF-- {
					if rF == rFlast {
						lF = lFlast
					}
					rFInPreL = it1preRToPreL[rF]

					currentForestSize1++
					if treesSwapped {
						currentForestCost1 += r.model.InsertCost(it1.PreLToNode[rFInPreL])
					} else {
						currentForestCost1 += r.model.DeleteCost(it1.PreLToNode[rFInPreL])
					}

					currentForestSize2 = it2sizes[lG]
					if treesSwapped {
						currentForestCost2 = it2.PreLToSumDelCost[lG]
					} else {
						currentForestCost2 = it2.PreLToSumInsCost[lG]
					}
					rFSubtreeSize = it1sizes[rFInPreL]

					if startPathNode > 0 {
						rFIsConsecutiveNodeOfCurrentPathNode = startPathNodeInPreR-rF == 1
						rFIsRightSiblingOfCurrentPathNode = rF+rFSubtreeSize == startPathNodeInPreR
					} else {
						rFIsConsecutiveNodeOfCurrentPathNode = false
						rFIsRightSiblingOfCurrentPathNode = false
					}

					fForestIsTree = rFInPreL == lF
					rFNode := it1.PreLToNode[rFInPreL]
					sp3RowOffset := rF + rFSubtreeSize
					sp1source = sourceS
					sp3source = sourceS

					if fForestIsTree {
						if rFSubtreeSize == 1 {
							sp1source = sourceForestCost
						} else if rFIsConsecutiveNodeOfCurrentPathNode {
							sp1source = sourceT
						}
						sp3 = 0
						sp3source = sourceT
					} else {
						if rFIsConsecutiveNodeOfCurrentPathNode {
							sp1source = sourceT
						}
						if treesSwapped {
							sp3 = currentForestCost1 - it1.PreLToSumInsCost[rFInPreL]
						} else {
							sp3 = currentForestCost1 - it1.PreLToSumDelCost[rFInPreL]
						}
						if rFIsRightSiblingOfCurrentPathNode {
							sp3source = sourceForestCost
						}
					}
					if currentForestSize2 == 1 {
						sp2 = currentForestCost1
					} else {
						sp2 = r.q[rF]
					}

					rG := rGfirst
					rGfirstInPreL = it2preRToPreL[rGfirst]
					currentForestSize2++

					switch sp1source {
					case sourceS:
						sp1 = s[(rF+1)-it1PreRoff][rG-it2PreRoff]
					case sourceT:
						sp1 = t[lG-it2PreLoff][rG-it2PreRoff]
					case sourceForestCost:
						sp1 = currentForestCost2
					}
					if treesSwapped {
						sp1 += r.model.InsertCost(rFNode)
					} else {
						sp1 += r.model.DeleteCost(rFNode)
					}
					minCost = sp1

					if treesSwapped {
						sp2 += r.model.DeleteCost(it2nodes[rGfirstInPreL])
					} else {
						sp2 += r.model.InsertCost(it2nodes[rGfirstInPreL])
					}
					if sp2 < minCost {
						minCost = sp2
					}

					if sp3 < minCost {
						if treesSwapped {
							sp3 += r.delta.Cells[rGfirstInPreL][rFInPreL]
						} else {
							sp3 += r.delta.Cells[rFInPreL][rGfirstInPreL]
						}
						if sp3 < minCost {
							if treesSwapped {
								sp3 += r.model.RenameCost(it2nodes[rGfirstInPreL], rFNode)
							} else {
								sp3 += r.model.RenameCost(rFNode, it2nodes[rGfirstInPreL])
							}
							if sp3 < minCost {
								minCost = sp3
							}
						}
					}

					s[rF-it1PreRoff][rG-it2PreRoff] = minCost
					rG = r.ft[rG]
					r.counter++

					// Loop D' — for all nodes to the right of lG.
					for rG >= rGlast {
						rGInPreL = it2preRToPreL[rG]
						currentForestSize2++
						if treesSwapped {
							currentForestCost2 += r.model.DeleteCost(it2nodes[rGInPreL])
						} else {
							currentForestCost2 += r.model.InsertCost(it2nodes[rGInPreL])
						}
						var delCost float64
						if treesSwapped {
							delCost = r.model.InsertCost(rFNode)
						} else {
							delCost = r.model.DeleteCost(rFNode)
						}
						switch sp1source {
						case sourceS:
							sp1 = s[(rF+1)-it1PreRoff][rG-it2PreRoff] + delCost
						case sourceT:
							sp1 = t[lG-it2PreLoff][rG-it2PreRoff] + delCost
						case sourceForestCost:
							sp1 = currentForestCost2 + delCost
						}
						var insCost float64
						if treesSwapped {
							insCost = r.model.DeleteCost(it2nodes[rGInPreL])
						} else {
							insCost = r.model.InsertCost(it2nodes[rGInPreL])
						}
						sp2 = s[rF-it1PreRoff][r.fn[rG]-it2PreRoff] + insCost
						minCost = sp1
						if sp2 < minCost {
							minCost = sp2
						}

						if treesSwapped {
							sp3 = r.delta.Cells[rGInPreL][rFInPreL]
						} else {
							sp3 = r.delta.Cells[rFInPreL][rGInPreL]
						}
						if sp3 < minCost {
							switch sp3source {
							case sourceS:
								sp3 += s[sp3RowOffset-it1PreRoff][r.fn[(rG+it2sizes[rGInPreL])-1]-it2PreRoff]
							case sourceT:
								if treesSwapped {
									sp3 += currentForestCost2 - it2.PreLToSumDelCost[rGInPreL]
								} else {
									sp3 += currentForestCost2 - it2.PreLToSumInsCost[rGInPreL]
								}
							case sourceForestCost:
								sp3 += t[lG-it2PreLoff][r.fn[(rG+it2sizes[rGInPreL])-1]-it2PreRoff]
							}
							if sp3 < minCost {
								if treesSwapped {
									sp3 += r.model.RenameCost(it2nodes[rGInPreL], rFNode)
								} else {
									sp3 += r.model.RenameCost(rFNode, it2nodes[rGInPreL])
								}
								if sp3 < minCost {
									minCost = sp3
								}
							}
						}
						s[rF-it1PreRoff][rG-it2PreRoff] = minCost
						rG = r.ft[rG]
						r.counter++
					}
				}

				if lG > currentSubtreePreL2 && lG-1 == parentOfLG {
					if rightPart {
						if treesSwapped {
							r.delta.Cells[parentOfLG][endPathNode] = s[(rFlast+1)-it1PreRoff][(lGminus1InPreR+1)-it2PreRoff]
						} else {
							r.delta.Cells[endPathNode][parentOfLG] = s[(rFlast+1)-it1PreRoff][(lGminus1InPreR+1)-it2PreRoff]
						}
					}

					if endPathNode > 0 && endPathNode == parentOfEndPathNode+1 && endPathNodeInPreR == parentOfEndPathNodeInPreR+1 {
						if treesSwapped {
							r.delta.Cells[parentOfLG][parentOfEndPathNode] = s[rFlast-it1PreRoff][(lGminus1InPreR+1)-it2PreRoff]
						} else {
							r.delta.Cells[parentOfEndPathNode][parentOfLG] = s[rFlast-it1PreRoff][(lGminus1InPreR+1)-it2PreRoff]
						}
					}

					for rF := rFfirst; rF >= rFlast; rF-- {
						r.q[rF] = s[rF-it1PreRoff][(parentOfLGInPreR+1)-it2PreRoff]
					}
				}

				for rG := rGfirst; rG >= rGlast; rG = r.ft[rG] {
					t[lG-it2PreLoff][rG-it2PreRoff] = s[rFlast-it1PreRoff][rG-it2PreRoff]
				}
			}
		}

		// Walk up the path by one node.
		startPathNode = endPathNode
		endPathNode = it1parents[endPathNode]
	}

	return minCost
}

// maxIntConst stands in for the reference implementation's
// "effectively infinite" sentinel used when a preR predecessor does
// not exist.
const maxIntConst = 1 << 30
