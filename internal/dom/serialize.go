package dom

import (
	"html"
	"sort"
	"strings"

	"github.com/3-lines-studio/mimir/markup"
)

var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// OuterHTML serializes the subtree. Attributes are emitted in sorted order
// so output is deterministic for snapshots.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	n.writeHTML(&sb)
	return sb.String()
}

// InnerHTML serializes only the children of an element.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	for _, child := range n.children {
		child.writeHTML(&sb)
	}
	return sb.String()
}

func (n *Node) writeHTML(sb *strings.Builder) {
	if n.kind == markup.KindText {
		sb.WriteString(html.EscapeString(n.text))
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.tag)

	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(n.attrs[name]))
		sb.WriteString(`"`)
	}

	if voidTags[n.tag] {
		sb.WriteString(" />")
		return
	}

	sb.WriteString(">")
	for _, child := range n.children {
		child.writeHTML(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteString(">")
}
