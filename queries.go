package mimir

import (
	"context"
	"fmt"
	"regexp"

	"github.com/3-lines-studio/mimir/internal/event"
	"github.com/3-lines-studio/mimir/internal/query"
)

// toMatcher widens the accepted query argument: a string is an exact
// match, a *regexp.Regexp a pattern match, and any Matcher is used as-is.
func toMatcher(v any) (Matcher, error) {
	switch m := v.(type) {
	case string:
		return query.Exact(m), nil
	case *regexp.Regexp:
		return query.Regexp(m), nil
	case Matcher:
		return m, nil
	default:
		return nil, fmt.Errorf("mimir: unsupported matcher type %T", v)
	}
}

// FindByText returns the single element whose visible text matches.
// Fails with NotFoundError on zero matches and AmbiguousMatchError on
// more than one.
func (r *Result) FindByText(text any) (*Node, error) {
	m, err := toMatcher(text)
	if err != nil {
		return nil, err
	}
	return query.ByText(r.doc.Container(), m)
}

// FindByRole returns the single element with the given accessibility
// role, with the same failure semantics as FindByText.
func (r *Result) FindByRole(role string, opts ...RoleOption) (*Node, error) {
	return query.ByRole(r.doc.Container(), role, opts...)
}

// QueryAllByText returns every matching element without failing on zero
// or many matches.
func (r *Result) QueryAllByText(text any) ([]*Node, error) {
	m, err := toMatcher(text)
	if err != nil {
		return nil, err
	}
	return query.AllByText(r.doc.Container(), m), nil
}

// QueryAllByRole returns every element with the given role.
func (r *Result) QueryAllByRole(role string, opts ...RoleOption) []*Node {
	return query.AllByRole(r.doc.Container(), role, opts...)
}

// Click dispatches a click to the node and waits until the document has
// settled. The ctx bounds the settling phase.
func (r *Result) Click(ctx context.Context, n *Node) error {
	return event.Click(ctx, n)
}
