package apted

import "errors"

// ErrNilTree indicates Distance was called with a nil input tree.
var ErrNilTree = errors.New("apted: input tree must not be nil")
