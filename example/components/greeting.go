// Package components holds the tutorial components the tests and the
// preview command render.
package components

import "github.com/3-lines-studio/mimir/markup"

// Greeting renders the fixed greeting shown when no name is known.
func Greeting() markup.Node {
	return markup.El("h1", markup.Text("Hello World!"))
}

// PersonalGreeting renders a greeting addressed to name.
func PersonalGreeting(name string) markup.Node {
	return markup.El("h1", markup.Text("Hello, "+name+"!"))
}

// GreetingProps carries the optional subject of a greeting. An empty Name
// means the greeting is addressed to no one in particular.
type GreetingProps struct {
	Name string
}

// Greet renders Greeting or PersonalGreeting depending on the props.
func Greet(props GreetingProps) markup.Node {
	if props.Name == "" {
		return Greeting()
	}
	return PersonalGreeting(props.Name)
}
