package mimir

import (
	"errors"
	"strings"
	"testing"

	"github.com/3-lines-studio/mimir/markup"
)

func TestRenderMountsDescription(t *testing.T) {
	result, err := Render(markup.El("h1", markup.Text("Hello World!")))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer result.Unmount()

	node, err := result.FindByText("Hello World!")
	if err != nil {
		t.Fatalf("FindByText failed: %v", err)
	}
	if node.Tag() != "h1" {
		t.Errorf("Expected tag 'h1', got '%s'", node.Tag())
	}
}

func TestRenderRejectsInvalidDescription(t *testing.T) {
	_, err := Render(markup.El(""))
	if err == nil {
		t.Fatal("Expected error for description without a tag")
	}
}

func TestWithContainerTag(t *testing.T) {
	result, err := Render(markup.El("li", markup.Text("x")), WithContainerTag("ul"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer result.Unmount()

	if result.Container().Tag() != "ul" {
		t.Errorf("Expected container 'ul', got '%s'", result.Container().Tag())
	}
}

func TestWithContainerAttr(t *testing.T) {
	result, err := Render(markup.El("p"), WithContainerAttr("id", "app"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer result.Unmount()

	if id, _ := result.Container().Attr("id"); id != "app" {
		t.Errorf("Expected container id 'app', got '%s'", id)
	}
}

func TestHTMLSerializesTree(t *testing.T) {
	result, err := Render(markup.El("h1", markup.Text("Hello World!")))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer result.Unmount()

	html := result.HTML()
	if !strings.Contains(html, "<h1>Hello World!</h1>") {
		t.Errorf("Expected serialized heading, got %q", html)
	}
	if !strings.Contains(html, "data-mimir-root=") {
		t.Errorf("Expected container root id in output, got %q", html)
	}
}

func TestUnmountInvalidatesQueries(t *testing.T) {
	result, err := Render(markup.El("h1", markup.Text("Hello World!")))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	result.Unmount()

	_, err = result.FindByText("Hello World!")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError after Unmount, got %v", err)
	}
}

func TestUnmountIsIdempotent(t *testing.T) {
	result, err := Render(markup.El("p", markup.Text("x")))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	result.Unmount()
	result.Unmount()
}

func TestRerenderReplacesTree(t *testing.T) {
	result, err := Render(markup.El("p", markup.Text("before")))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer result.Unmount()

	if err := result.Rerender(markup.El("p", markup.Text("after"))); err != nil {
		t.Fatalf("Rerender failed: %v", err)
	}

	if _, err := result.FindByText("before"); err == nil {
		t.Error("Expected old tree to be gone after Rerender")
	}
	if _, err := result.FindByText("after"); err != nil {
		t.Errorf("Expected new tree to be queryable, got %v", err)
	}
}
