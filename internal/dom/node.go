package dom

import (
	"strings"

	"github.com/3-lines-studio/mimir/internal/aria"
	"github.com/3-lines-studio/mimir/markup"
)

// Node is a live element or text run inside a Document. Nodes are created
// by Document.Mount and become detached when the tree is unmounted.
type Node struct {
	doc      *Document
	parent   *Node
	kind     markup.Kind
	tag      string
	text     string
	attrs    map[string]string
	handlers map[string][]markup.Handler
	children []*Node
	detached bool
}

func (n *Node) Document() *Document { return n.doc }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Kind() markup.Kind { return n.kind }

func (n *Node) Tag() string { return n.tag }

func (n *Node) Detached() bool { return n.detached }

func (n *Node) IsElement() bool { return n.kind == markup.KindElement }

func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) Handlers(event string) []markup.Handler {
	return n.handlers[event]
}

// TextContent returns the visible text of the subtree with whitespace
// collapsed, the way a query sees it.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.walk(func(node *Node) {
		if node.kind == markup.KindText {
			sb.WriteString(node.text)
			sb.WriteString(" ")
		}
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Role returns the explicit role attribute when present, otherwise the
// implicit role for the tag.
func (n *Node) Role() string {
	if n.kind != markup.KindElement {
		return ""
	}
	if role, ok := n.attrs["role"]; ok {
		return role
	}
	return aria.ImplicitRole(n.tag, n.attrs)
}

// AccessibleName is the aria-label when set, otherwise the text content.
func (n *Node) AccessibleName() string {
	if label, ok := n.attrs["aria-label"]; ok {
		return label
	}
	return n.TextContent()
}

func (n *Node) HeadingLevel() int {
	if level, ok := n.attrs["aria-level"]; ok {
		return parseLevel(level)
	}
	return aria.HeadingLevel(n.tag)
}

func parseLevel(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}

func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		child.walk(visit)
	}
}

// Walk visits n and every descendant in document order.
func (n *Node) Walk(visit func(*Node)) {
	n.walk(visit)
}
