// Package mimir renders declarative UI descriptions into a simulated
// document and exposes text and role queries against the result. It is
// meant for unit-testing presentational components without a browser.
package mimir

import (
	"fmt"

	"github.com/3-lines-studio/mimir/internal/dom"
	"github.com/3-lines-studio/mimir/internal/query"
	"github.com/3-lines-studio/mimir/markup"
)

const Version = "0.1.0"

// Aliases so callers only import mimir and markup.
type (
	Node                = dom.Node
	Matcher             = query.Matcher
	NotFoundError       = query.NotFoundError
	AmbiguousMatchError = query.AmbiguousMatchError
	RoleOption          = query.RoleOption
)

func WithName(m Matcher) RoleOption { return query.WithName(m) }

func WithLevel(level int) RoleOption { return query.WithLevel(level) }

func Exact(s string) Matcher { return query.Exact(s) }

func Substring(s string) Matcher { return query.Substring(s) }

type config struct {
	containerTag   string
	containerAttrs map[string]string
}

type Option func(*config)

// WithContainerTag changes the tag of the container element the tree is
// mounted under. The default is div.
func WithContainerTag(tag string) Option {
	return func(c *config) {
		c.containerTag = tag
	}
}

// WithContainerAttr sets an attribute on the container element.
func WithContainerAttr(name, value string) Option {
	return func(c *config) {
		if c.containerAttrs == nil {
			c.containerAttrs = map[string]string{}
		}
		c.containerAttrs[name] = value
	}
}

// Result is the query handle over one mounted tree. It stays valid after
// Unmount, but every query then fails with NotFoundError.
type Result struct {
	doc *dom.Document
}

// Render mounts the description into a fresh simulated document.
func Render(el markup.Node, opts ...Option) (*Result, error) {
	cfg := config{containerTag: "div"}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := dom.NewDocument(cfg.containerTag, cfg.containerAttrs)
	if _, err := doc.Mount(el); err != nil {
		return nil, fmt.Errorf("mimir: render failed: %w", err)
	}

	return &Result{doc: doc}, nil
}

func (r *Result) Container() *Node {
	return r.doc.Container()
}

// Rerender replaces the mounted tree with a new description, keeping the
// same document and container.
func (r *Result) Rerender(el markup.Node) error {
	if _, err := r.doc.Mount(el); err != nil {
		return fmt.Errorf("mimir: rerender failed: %w", err)
	}
	return nil
}

// HTML serializes the mounted tree, container included.
func (r *Result) HTML() string {
	return r.doc.Container().OuterHTML()
}

// Unmount detaches the tree. Idempotent; the per-test isolation hook in
// mimirtest calls it after every test.
func (r *Result) Unmount() {
	r.doc.Unmount()
}
