// Package bruteforce computes tree edit distance by exhaustively
// enumerating every one-to-one node mapping between two trees,
// discarding the ones that violate the ancestor-order and
// sibling-order constraints a valid edit mapping must satisfy, and
// keeping the cheapest of what remains.
//
// The mapping count is exponential in the combined tree size, so this
// package exists purely as a correctness oracle for apted.Engine on
// small trees (tests and property checks), never as a production path.
package bruteforce
