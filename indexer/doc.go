// Package indexer precomputes, once per input tree, every array the
// tree edit distance engine needs to run in cubic time and quadratic
// space: left-to-right and right-to-left preorder/postorder id
// translations, leftmost/rightmost leaf descendants, keyroot sums,
// subtree delete/insert cost sums, and the lchl/rchl heuristic
// counters used to pick a strategy-computation pass.
//
// An Indexer is built once per tree via New and is read-only
// afterward except for the single CurrentNode cursor, which the
// distance engine uses to track which subtree it is currently
// comparing.
package indexer
