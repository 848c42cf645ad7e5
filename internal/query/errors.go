package query

import "fmt"

// NotFoundError reports a query that matched no node. A query against an
// unmounted tree always fails this way.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element matches %s", e.Query)
}

// AmbiguousMatchError reports a query that matched more than the single
// node it was expected to.
type AmbiguousMatchError struct {
	Query string
	Count int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d elements match %s, expected exactly one", e.Count, e.Query)
}
