package query

import (
	"fmt"
	"strings"

	"github.com/3-lines-studio/mimir/internal/dom"
)

// AllByText returns every element inside scope whose normalized text
// content satisfies the matcher. When both a wrapper and its child match,
// only the deepest matching element is kept, so `<div><h1>Hi</h1></div>`
// yields the h1, not both.
func AllByText(scope *dom.Node, m Matcher) []*dom.Node {
	if scope == nil || scope.Detached() {
		return nil
	}

	matched := map[*dom.Node]bool{}
	scope.Walk(func(n *dom.Node) {
		if n == scope || !n.IsElement() {
			return
		}
		if m.Match(n.TextContent()) {
			matched[n] = true
		}
	})

	var result []*dom.Node
	scope.Walk(func(n *dom.Node) {
		if matched[n] && !hasMatchingDescendant(n, matched) {
			result = append(result, n)
		}
	})
	return result
}

func hasMatchingDescendant(n *dom.Node, matched map[*dom.Node]bool) bool {
	found := false
	n.Walk(func(d *dom.Node) {
		if d != n && matched[d] {
			found = true
		}
	})
	return found
}

// ByText finds the single element matching m, failing with NotFoundError
// on zero matches and AmbiguousMatchError on several.
func ByText(scope *dom.Node, m Matcher) (*dom.Node, error) {
	return single(AllByText(scope, m), "text "+m.String())
}

type roleQuery struct {
	name  Matcher
	level int
}

type RoleOption func(*roleQuery)

// WithName restricts a role query to elements whose accessible name
// satisfies the matcher.
func WithName(m Matcher) RoleOption {
	return func(q *roleQuery) {
		q.name = m
	}
}

// WithLevel restricts a heading query to a specific level.
func WithLevel(level int) RoleOption {
	return func(q *roleQuery) {
		q.level = level
	}
}

// AllByRole returns every element inside scope carrying the given
// accessibility role, filtered by the options.
func AllByRole(scope *dom.Node, role string, opts ...RoleOption) []*dom.Node {
	if scope == nil || scope.Detached() {
		return nil
	}

	q := roleQuery{}
	for _, opt := range opts {
		opt(&q)
	}

	var result []*dom.Node
	scope.Walk(func(n *dom.Node) {
		if n == scope || !n.IsElement() || n.Role() != role {
			return
		}
		if q.name != nil && !q.name.Match(n.AccessibleName()) {
			return
		}
		if q.level != 0 && n.HeadingLevel() != q.level {
			return
		}
		result = append(result, n)
	})
	return result
}

// ByRole finds the single element with the given role, with the same
// failure semantics as ByText.
func ByRole(scope *dom.Node, role string, opts ...RoleOption) (*dom.Node, error) {
	q := roleQuery{}
	for _, opt := range opts {
		opt(&q)
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "role %q", role)
	if q.name != nil {
		fmt.Fprintf(&desc, " with name %s", q.name.String())
	}
	if q.level != 0 {
		fmt.Fprintf(&desc, " at level %d", q.level)
	}

	return single(AllByRole(scope, role, opts...), desc.String())
}

func single(nodes []*dom.Node, desc string) (*dom.Node, error) {
	switch len(nodes) {
	case 0:
		return nil, &NotFoundError{Query: desc}
	case 1:
		return nodes[0], nil
	default:
		return nil, &AmbiguousMatchError{Query: desc, Count: len(nodes)}
	}
}
