// Package aria maps element tags to their implicit WAI-ARIA roles.
package aria

var tagRoles = map[string]string{
	"button":   "button",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"img":      "img",
	"ul":       "list",
	"ol":       "list",
	"li":       "listitem",
	"nav":      "navigation",
	"main":     "main",
	"header":   "banner",
	"footer":   "contentinfo",
	"form":     "form",
	"table":    "table",
	"p":        "paragraph",
	"select":   "combobox",
	"textarea": "textbox",
}

var inputTypeRoles = map[string]string{
	"":         "textbox",
	"text":     "textbox",
	"search":   "searchbox",
	"checkbox": "checkbox",
	"radio":    "radio",
	"button":   "button",
	"submit":   "button",
	"reset":    "button",
}

// ImplicitRole returns the role implied by a tag and its attributes, or ""
// when the element has no implicit role (div, span, ...).
func ImplicitRole(tag string, attrs map[string]string) string {
	switch tag {
	case "a":
		if _, ok := attrs["href"]; ok {
			return "link"
		}
		return ""
	case "input":
		return inputTypeRoles[attrs["type"]]
	}
	return tagRoles[tag]
}

// HeadingLevel returns the level for h1..h6, or 0 for anything else.
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
