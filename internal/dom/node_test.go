package dom

import (
	"testing"

	"github.com/3-lines-studio/mimir/markup"
)

func mustMount(t *testing.T, desc markup.Node) *Node {
	t.Helper()
	doc := NewDocument("div", nil)
	root, err := doc.Mount(desc)
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	return root
}

func TestTextContentCollapsesWhitespace(t *testing.T) {
	root := mustMount(t, markup.El("div",
		markup.Text("  Hello "),
		markup.El("b", markup.Text(" World! ")),
	))

	if got := root.TextContent(); got != "Hello World!" {
		t.Errorf("Expected 'Hello World!', got '%s'", got)
	}
}

func TestRoleExplicitWinsOverImplicit(t *testing.T) {
	root := mustMount(t, markup.El("button", markup.Role("switch")))

	if got := root.Role(); got != "switch" {
		t.Errorf("Expected role 'switch', got '%s'", got)
	}
}

func TestRoleImplicit(t *testing.T) {
	tests := []struct {
		desc markup.Node
		want string
	}{
		{markup.El("button"), "button"},
		{markup.El("h2"), "heading"},
		{markup.El("a", markup.Attr("href", "/x")), "link"},
		{markup.El("div"), ""},
	}

	for _, tt := range tests {
		root := mustMount(t, tt.desc)
		if got := root.Role(); got != tt.want {
			t.Errorf("Role for <%s> = '%s', want '%s'", root.Tag(), got, tt.want)
		}
	}
}

func TestAccessibleName(t *testing.T) {
	labelled := mustMount(t, markup.El("button", markup.Attr("aria-label", "close dialog"), markup.Text("x")))
	if got := labelled.AccessibleName(); got != "close dialog" {
		t.Errorf("Expected aria-label to win, got '%s'", got)
	}

	plain := mustMount(t, markup.El("button", markup.Text("Save")))
	if got := plain.AccessibleName(); got != "Save" {
		t.Errorf("Expected text content name, got '%s'", got)
	}
}

func TestHeadingLevel(t *testing.T) {
	h3 := mustMount(t, markup.El("h3", markup.Text("Section")))
	if got := h3.HeadingLevel(); got != 3 {
		t.Errorf("Expected level 3, got %d", got)
	}

	custom := mustMount(t, markup.El("div", markup.Role("heading"), markup.Attr("aria-level", "2")))
	if got := custom.HeadingLevel(); got != 2 {
		t.Errorf("Expected aria-level 2, got %d", got)
	}
}

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	root := mustMount(t, markup.El("ul",
		markup.El("li", markup.Text("a")),
		markup.El("li", markup.Text("b")),
	))

	var tags []string
	root.Walk(func(n *Node) {
		if n.IsElement() {
			tags = append(tags, n.Tag())
		}
	})

	want := []string{"ul", "li", "li"}
	if len(tags) != len(want) {
		t.Fatalf("Expected %d elements, got %d", len(want), len(tags))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("Walk order[%d] = '%s', want '%s'", i, tags[i], want[i])
		}
	}
}
