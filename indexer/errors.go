package indexer

import "errors"

// ErrOverflow indicates the descendant-sum computation for some node
// would overflow int64 during indexing. This can only happen for
// trees far larger than anything the engine can process in cubic time
// regardless, but the source this package is grounded on guards the
// multiplication explicitly, so this package does too.
var ErrOverflow = errors.New("indexer: descendant-sum computation overflowed")
