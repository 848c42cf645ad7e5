// Package query implements the lookup operations a rendered tree is
// asserted against: by text and by accessibility role. A query that finds
// nothing fails with NotFoundError; one that finds more than a single node
// fails with AmbiguousMatchError.
package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a piece of visible text satisfies a query. The
// String form is used in error messages.
type Matcher interface {
	Match(text string) bool
	String() string
}

type exactMatcher string

func (m exactMatcher) Match(text string) bool { return string(m) == text }
func (m exactMatcher) String() string         { return fmt.Sprintf("%q", string(m)) }

// Exact matches the whole normalized text, case-sensitively.
func Exact(s string) Matcher { return exactMatcher(s) }

type substringMatcher string

func (m substringMatcher) Match(text string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(string(m)))
}

func (m substringMatcher) String() string {
	return fmt.Sprintf("substring %q (case-insensitive)", string(m))
}

// Substring matches case-insensitively anywhere in the text.
func Substring(s string) Matcher { return substringMatcher(s) }

type regexpMatcher struct{ re *regexp.Regexp }

func (m regexpMatcher) Match(text string) bool { return m.re.MatchString(text) }
func (m regexpMatcher) String() string         { return fmt.Sprintf("pattern /%s/", m.re.String()) }

// Regexp matches the compiled pattern against the text.
func Regexp(re *regexp.Regexp) Matcher { return regexpMatcher{re: re} }

type funcMatcher struct {
	desc string
	fn   func(string) bool
}

func (m funcMatcher) Match(text string) bool { return m.fn(text) }
func (m funcMatcher) String() string         { return m.desc }

// Func wraps a predicate; desc describes it in failure messages.
func Func(desc string, fn func(string) bool) Matcher {
	return funcMatcher{desc: desc, fn: fn}
}
