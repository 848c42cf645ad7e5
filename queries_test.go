package mimir

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/3-lines-studio/mimir/markup"
)

func renderForTest(t *testing.T, el markup.Node) *Result {
	t.Helper()
	result, err := Render(el)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	t.Cleanup(result.Unmount)
	return result
}

func TestFindByTextAcceptsString(t *testing.T) {
	result := renderForTest(t, markup.El("h1", markup.Text("Hello, Bob!")))

	if _, err := result.FindByText("Hello, Bob!"); err != nil {
		t.Errorf("Expected exact string match, got %v", err)
	}
}

func TestFindByTextAcceptsRegexp(t *testing.T) {
	result := renderForTest(t, markup.El("h1", markup.Text("Hello, Bob!")))

	if _, err := result.FindByText(regexp.MustCompile(`Hello,? Bob!`)); err != nil {
		t.Errorf("Expected pattern match, got %v", err)
	}
}

func TestFindByTextAcceptsMatcher(t *testing.T) {
	result := renderForTest(t, markup.El("h1", markup.Text("Hello, Bob!")))

	if _, err := result.FindByText(Substring("hello, bob")); err != nil {
		t.Errorf("Expected substring match, got %v", err)
	}
}

func TestFindByTextRejectsUnknownType(t *testing.T) {
	result := renderForTest(t, markup.El("h1", markup.Text("x")))

	if _, err := result.FindByText(42); err == nil {
		t.Error("Expected error for unsupported matcher type")
	}
}

func TestFindByRole(t *testing.T) {
	result := renderForTest(t, markup.El("main",
		markup.El("h1", markup.Text("Title")),
		markup.El("button", markup.Text("Save")),
	))

	node, err := result.FindByRole("heading", WithLevel(1))
	if err != nil {
		t.Fatalf("FindByRole failed: %v", err)
	}
	if node.TextContent() != "Title" {
		t.Errorf("Expected 'Title', got '%s'", node.TextContent())
	}
}

func TestFindByRoleAmbiguous(t *testing.T) {
	result := renderForTest(t, markup.El("div",
		markup.El("button", markup.Text("a")),
		markup.El("button", markup.Text("b")),
	))

	_, err := result.FindByRole("button")
	var ambiguous *AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Errorf("Expected AmbiguousMatchError, got %v", err)
	}
}

func TestQueryAllByText(t *testing.T) {
	result := renderForTest(t, markup.El("ul",
		markup.El("li", markup.Text("item")),
		markup.El("li", markup.Text("item")),
	))

	nodes, err := result.QueryAllByText("item")
	if err != nil {
		t.Fatalf("QueryAllByText failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(nodes))
	}
}

func TestQueryAllByRole(t *testing.T) {
	result := renderForTest(t, markup.El("ul",
		markup.El("li", markup.Text("a")),
		markup.El("li", markup.Text("b")),
	))

	if got := len(result.QueryAllByRole("listitem")); got != 2 {
		t.Errorf("Expected 2 list items, got %d", got)
	}
}

func TestResultClick(t *testing.T) {
	clicks := 0
	result := renderForTest(t, markup.El("button",
		markup.OnClick(func(markup.Event) { clicks++ }),
		markup.Text("go"),
	))

	button, err := result.FindByRole("button")
	if err != nil {
		t.Fatalf("FindByRole failed: %v", err)
	}

	if err := result.Click(context.Background(), button); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if clicks != 1 {
		t.Errorf("Expected 1 click, got %d", clicks)
	}
}
