// Package dom implements the simulated document: an in-memory, browser-like
// tree that components are mounted into and queried against. No real display
// is involved; a Document is exclusively owned by one test at a time.
package dom

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/3-lines-studio/mimir/markup"
)

// RootIDAttr marks the container element of every document so rendered
// output can be told apart (and normalized away in snapshots).
const RootIDAttr = "data-mimir-root"

var (
	ErrMissingTag      = errors.New("element description has no tag")
	ErrUnknownNodeKind = errors.New("unknown node kind in description")
)

type Document struct {
	container *Node
	mounted   bool
	tasks     []func()
}

// NewDocument creates an empty document whose container uses the given tag.
// The container receives a fresh root id attribute.
func NewDocument(containerTag string, attrs map[string]string) *Document {
	if containerTag == "" {
		containerTag = "div"
	}

	doc := &Document{}
	container := &Node{
		doc:   doc,
		kind:  markup.KindElement,
		tag:   containerTag,
		attrs: map[string]string{RootIDAttr: uuid.NewString()},
	}
	for k, v := range attrs {
		container.attrs[k] = v
	}
	doc.container = container

	return doc
}

func (d *Document) Container() *Node {
	return d.container
}

func (d *Document) Mounted() bool {
	return d.mounted
}

// Mount builds a live tree from the description and attaches it under the
// container, replacing anything mounted before.
func (d *Document) Mount(desc markup.Node) (*Node, error) {
	node, err := build(d, desc)
	if err != nil {
		return nil, err
	}

	d.detachChildren()
	node.parent = d.container
	d.container.children = []*Node{node}
	d.container.detached = false
	d.mounted = true

	return node, nil
}

// Unmount detaches the mounted tree and discards pending tasks. Calling it
// on an already unmounted document is a no-op.
func (d *Document) Unmount() {
	if !d.mounted {
		return
	}

	d.detachChildren()
	d.container.children = nil
	d.container.detached = true
	d.tasks = nil
	d.mounted = false
}

func (d *Document) detachChildren() {
	for _, child := range d.container.children {
		child.walk(func(n *Node) {
			n.detached = true
		})
	}
}

// Schedule queues work to run once the current dispatch settles. Handlers
// use it for follow-up effects such as re-renders.
func (d *Document) Schedule(task func()) {
	d.tasks = append(d.tasks, task)
}

// Settle drains the task queue, including tasks queued by tasks, until the
// document is quiescent or ctx is done.
func (d *Document) Settle(ctx context.Context) error {
	for len(d.tasks) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		task := d.tasks[0]
		d.tasks = d.tasks[1:]
		task()
	}
	return nil
}

func build(doc *Document, desc markup.Node) (*Node, error) {
	switch desc.Kind {
	case markup.KindText:
		return &Node{doc: doc, kind: markup.KindText, text: desc.Text}, nil
	case markup.KindElement:
		if desc.Tag == "" {
			return nil, ErrMissingTag
		}

		node := &Node{doc: doc, kind: markup.KindElement, tag: desc.Tag}
		if len(desc.Attrs) > 0 {
			node.attrs = make(map[string]string, len(desc.Attrs))
			for k, v := range desc.Attrs {
				node.attrs[k] = v
			}
		}
		if len(desc.Handlers) > 0 {
			node.handlers = make(map[string][]markup.Handler, len(desc.Handlers))
			for event, hs := range desc.Handlers {
				node.handlers[event] = append([]markup.Handler(nil), hs...)
			}
		}

		for _, childDesc := range desc.Children {
			child, err := build(doc, childDesc)
			if err != nil {
				return nil, err
			}
			child.parent = node
			node.children = append(node.children, child)
		}

		return node, nil
	default:
		return nil, ErrUnknownNodeKind
	}
}
