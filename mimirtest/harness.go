// Package mimirtest integrates mimir with the standard testing package.
// Every rendered tree is unmounted automatically when the test finishes,
// so no simulated state leaks between tests.
package mimirtest

import (
	"context"
	"testing"
	"time"

	"github.com/3-lines-studio/mimir"
	"github.com/3-lines-studio/mimir/markup"
)

// settleTimeout bounds event settling so a handler that keeps scheduling
// work fails the test instead of hanging it.
const settleTimeout = 5 * time.Second

// Screen is the per-test query handle. Get* methods fail the test on
// query errors; Query* methods return them.
type Screen struct {
	t      testing.TB
	result *mimir.Result
	render func() markup.Node
}

// Render mounts a static description and registers unmount as a cleanup
// hook. Unmounting is idempotent, so tests may also unmount explicitly.
func Render(t testing.TB, el markup.Node, opts ...mimir.Option) *Screen {
	t.Helper()

	result, err := mimir.Render(el, opts...)
	if err != nil {
		t.Fatalf("mimirtest: render failed: %v", err)
	}
	t.Cleanup(result.Unmount)

	return &Screen{t: t, result: result}
}

// RenderFunc mounts the output of render and re-invokes it after every
// dispatched event, so stateful components reflect their new state.
func RenderFunc(t testing.TB, render func() markup.Node, opts ...mimir.Option) *Screen {
	t.Helper()

	s := Render(t, render(), opts...)
	s.render = render
	return s
}

// Result exposes the underlying handle for assertions the Screen does not
// cover.
func (s *Screen) Result() *mimir.Result {
	return s.result
}

func (s *Screen) GetByText(text any) *mimir.Node {
	s.t.Helper()

	node, err := s.result.FindByText(text)
	if err != nil {
		s.t.Fatalf("GetByText: %v", err)
	}
	return node
}

func (s *Screen) QueryByText(text any) (*mimir.Node, error) {
	return s.result.FindByText(text)
}

func (s *Screen) GetByRole(role string, opts ...mimir.RoleOption) *mimir.Node {
	s.t.Helper()

	node, err := s.result.FindByRole(role, opts...)
	if err != nil {
		s.t.Fatalf("GetByRole: %v", err)
	}
	return node
}

func (s *Screen) QueryByRole(role string, opts ...mimir.RoleOption) (*mimir.Node, error) {
	return s.result.FindByRole(role, opts...)
}

// Click finds the element by its visible text, dispatches a click, waits
// for the document to settle, and re-renders stateful screens.
func (s *Screen) Click(text any) {
	s.t.Helper()

	node := s.GetByText(text)

	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	if err := s.result.Click(ctx, node); err != nil {
		s.t.Fatalf("Click: %v", err)
	}

	if s.render != nil {
		if err := s.result.Rerender(s.render()); err != nil {
			s.t.Fatalf("Click: rerender failed: %v", err)
		}
	}
}

func (s *Screen) HTML() string {
	return s.result.HTML()
}

func (s *Screen) Unmount() {
	s.result.Unmount()
}
