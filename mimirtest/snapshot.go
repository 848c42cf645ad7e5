package mimirtest

import (
	"regexp"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/mimir/internal/dom"
)

var rootIDPattern = regexp.MustCompile(dom.RootIDAttr + `="[^"]*"`)

// NormalizeHTML replaces per-document identifiers so rendered output is
// stable across runs.
func NormalizeHTML(html string) string {
	return rootIDPattern.ReplaceAllString(html, dom.RootIDAttr+`="[ID]"`)
}

// MatchSnapshot snapshots the normalized HTML with an .html extension.
func MatchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, NormalizeHTML(html))
}
