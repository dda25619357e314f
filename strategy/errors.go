package strategy

import "errors"

// ErrStrategyOverflow indicates one of the indexer's keyroot or
// descendant sums exceeds 2^53, the largest integer float64 can
// represent exactly. The strategy recurrence computes entirely in
// float64 (matching the reference implementation), so a sum beyond
// that threshold would silently lose precision instead of failing
// loudly.
var ErrStrategyOverflow = errors.New("strategy: keyroot/descendant sum too large to represent exactly in float64")
