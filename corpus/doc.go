// Package corpus loads the JSON test-fixture formats used to validate
// and benchmark a tree edit distance engine: correctness cases (tree
// pairs with a known expected distance) and large throughput cases
// (tree pairs with no ground truth, meant only to be timed).
package corpus
