package components

import (
	"fmt"

	"github.com/3-lines-studio/mimir/markup"
)

// Counter returns a render function for a button that counts its own
// clicks. Each invocation reflects the current count.
func Counter() func() markup.Node {
	count := 0
	return func() markup.Node {
		return markup.El("button",
			markup.OnClick(func(markup.Event) { count++ }),
			markup.Text(fmt.Sprintf("Count: %d", count)),
		)
	}
}
