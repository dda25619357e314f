// Package tree defines the ordered, labeled tree that the apted engine
// operates on.
//
// 🚀 What is this for?
//
//	A Node[T] is a plain rooted tree node: a payload of type T, a parent
//	back-edge, and an ordered list of children. Child order is
//	semantically significant — two trees that differ only in the order
//	of a node's children are different trees for tree edit distance
//	purposes.
//
// ✨ Key properties:
//   - The tree is owned by its root; there is no shared ownership.
//   - Parent is a non-owning back-edge, used only for upward walks.
//   - Nothing here is safe for concurrent mutation: build a tree on one
//     goroutine, then treat it as read-only for the rest of its life.
//
// ⚙️ Usage:
//
//	root := tree.New("f")
//	d := tree.New("d")
//	root.AddChild(d)
//	d.AddChild(tree.New("a"))
//	d.AddChild(tree.New("c"))
//	root.AddChild(tree.New("e"))
//
// See bracket.Parse for building a Node[string] from the
// "{label{child}{child}}" reference text format.
package tree
