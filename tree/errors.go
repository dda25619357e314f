package tree

import "errors"

// Sentinel errors for tree construction and mutation.
var (
	// ErrNilChild indicates AddChild was called with a nil child.
	ErrNilChild = errors.New("tree: child is nil")

	// ErrChildHasParent indicates AddChild was called with a child that
	// already belongs to another (or the same) node.
	ErrChildHasParent = errors.New("tree: child already has a parent")

	// ErrNotAChild indicates ReplaceChild or DetachFromParent could not
	// find the expected parent/child relationship.
	ErrNotAChild = errors.New("tree: node is not a child of the given parent")
)
