// Command example renders the tutorial components and prints their HTML.
package main

import (
	"fmt"
	"log"

	"github.com/3-lines-studio/mimir"
	"github.com/3-lines-studio/mimir/example/components"
	"github.com/3-lines-studio/mimir/markup"
)

func main() {
	for _, el := range []markup.Node{
		components.Greeting(),
		components.PersonalGreeting("World"),
		components.Greet(components.GreetingProps{Name: "Ada"}),
	} {
		result, err := mimir.Render(el)
		if err != nil {
			log.Fatalf("render failed: %v", err)
		}
		fmt.Println(result.HTML())
		result.Unmount()
	}
}
