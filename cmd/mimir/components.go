package main

import (
	"github.com/3-lines-studio/mimir/example/components"
	"github.com/3-lines-studio/mimir/internal/server"
	"github.com/3-lines-studio/mimir/markup"
)

// registry names every component the render and serve commands expose.
// The name flag only affects components that take one.
func registry(name string) map[string]server.Component {
	return map[string]server.Component{
		"greeting": components.Greeting,
		"personal-greeting": func() markup.Node {
			return components.Greet(components.GreetingProps{Name: name})
		},
		"counter": func() markup.Node {
			return components.Counter()()
		},
	}
}
