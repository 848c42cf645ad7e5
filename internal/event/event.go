// Package event simulates user interactions against a mounted tree.
// Dispatch is synchronous from the caller's point of view: it returns only
// after every handler has run and the document's task queue has settled.
package event

import (
	"context"
	"errors"

	"github.com/3-lines-studio/mimir/internal/dom"
	"github.com/3-lines-studio/mimir/markup"
)

var ErrDetachedTarget = errors.New("cannot dispatch to a node detached from the document")

// Dispatch runs the event's handlers on the target and then on each
// ancestor up to the container, then settles the document.
func Dispatch(ctx context.Context, target *dom.Node, e markup.Event) error {
	if target == nil || target.Detached() {
		return ErrDetachedTarget
	}

	for n := target; n != nil; n = n.Parent() {
		for _, h := range n.Handlers(e.Type) {
			h(e)
		}
	}

	return target.Document().Settle(ctx)
}

func Click(ctx context.Context, target *dom.Node) error {
	return Dispatch(ctx, target, markup.Event{Type: "click"})
}
