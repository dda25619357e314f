// Package bracket parses and renders the bracket-notation tree format
// used throughout the reference fixtures and test corpus: a node is
// written as {label child1 child2 ...}, e.g. {a{b}{c{d}}} is a root
// labeled "a" with children "b" and "c", the latter having child "d".
package bracket
