// Package apted computes the tree edit distance between two ordered
// labeled trees: the minimum total cost of node deletions,
// insertions, and renames needed to transform one tree into the
// other.
//
// The engine follows the all-path algorithm of Pawlik and Augsten: it
// precomputes a decomposition strategy for every subtree pair via the
// strategy package, then recursively walks the chosen path for each
// subtree pair, falling back to a Zhang-Shasha-style keyroot
// algorithm when the path hugs a tree boundary (spfL/spfR) and to a
// general forest-distance recurrence otherwise (spfA). This achieves
// O(n^3) worst-case time and O(n^2) space regardless of tree shape,
// unlike algorithms that commit to one decomposition strategy
// upfront.
//
// Usage:
//
//	eng := apted.NewEngine(costmodel.NewStringUnitCost())
//	dist, err := eng.Distance(t1, t2)
package apted
