package bracket

import (
	"strings"

	"github.com/katalvlaran/apted/tree"
)

// Parse reads a single tree from bracket notation: {label child...},
// where each child is itself a complete bracket-notation subtree
// immediately following its parent's label with no separator. A label
// may be empty ({} is a valid single node with label "").
func Parse(s string) (*tree.Node[string], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	node, rest, err := parseNode(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, ErrUnbalancedBraces
	}

	return node, nil
}

// parseNode consumes one complete {...} node from the front of s and
// returns it along with whatever text follows it.
func parseNode(s string) (*tree.Node[string], string, error) {
	if len(s) == 0 || s[0] != '{' {
		return nil, "", ErrMissingOpenBrace
	}

	i := 1
	for i < len(s) && s[i] != '{' && s[i] != '}' {
		i++
	}
	if i >= len(s) {
		return nil, "", ErrUnbalancedBraces
	}

	node := tree.New(s[1:i])

	for i < len(s) && s[i] == '{' {
		child, rest, err := parseNode(s[i:])
		if err != nil {
			return nil, "", err
		}
		if err := node.AddChild(child); err != nil {
			return nil, "", err
		}
		i += len(s[i:]) - len(rest)
	}

	if i >= len(s) || s[i] != '}' {
		return nil, "", ErrUnbalancedBraces
	}
	i++

	return node, s[i:], nil
}

// Render writes root back out in bracket notation. Render(Parse(s))
// round-trips for any s Parse accepts that has no leading or trailing
// whitespace (Parse trims it).
func Render(root *tree.Node[string]) string {
	var b strings.Builder
	renderNode(&b, root)
	return b.String()
}

func renderNode(b *strings.Builder, n *tree.Node[string]) {
	b.WriteByte('{')
	b.WriteString(n.Data())
	for _, c := range n.Children() {
		renderNode(b, c)
	}
	b.WriteByte('}')
}
