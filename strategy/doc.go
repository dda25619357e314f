// Package strategy computes, for every pair of subtrees (v, w) drawn
// from two indexed input trees, which of six decomposition paths
// (left, right, or heavy-inner path of v; left, right, or heavy-inner
// path of w) minimizes the cost bound of comparing those subtrees.
// The result is a dense n1 x n2 matrix that the distance engine
// consults once per gted call to decide how to recurse, and then
// reuses as its own subtree-distance cache once a path has been
// walked.
//
// Compute picks between two structurally dual computation passes
// (left-to-right postorder vs right-to-left postorder) using the
// lchl/rchl heuristic counters the indexer already collected; the
// chosen pass amortizes the six-candidate minimization across all
// n1*n2 subtree pairs in O(n1*n2) by propagating partial sums up
// each tree one level at a time and reusing freed rows.
package strategy
