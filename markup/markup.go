// Package markup builds declarative element descriptions that mimir
// renders into a simulated document.
package markup

type Kind int

const (
	KindElement Kind = iota
	KindText
)

// Event is passed to handlers when a simulated interaction is dispatched.
type Event struct {
	Type   string
	Detail map[string]any
}

type Handler func(Event)

// Node is an immutable description of an element or a text run. It is a
// plain value; rendering copies it into the document, so a description can
// be mounted any number of times.
type Node struct {
	Kind     Kind
	Tag      string
	Text     string
	Attrs    map[string]string
	Handlers map[string][]Handler
	Children []Node
}

// Mod configures a node under construction. Node itself is a Mod: passing
// a node to El appends it as a child, so trees read top-down:
//
//	El("h1", Attr("id", "title"), Text("Hello World!"))
type Mod interface {
	Apply(*Node)
}

type ModFunc func(*Node)

func (f ModFunc) Apply(n *Node) { f(n) }

func (c Node) Apply(parent *Node) {
	parent.Children = append(parent.Children, c)
}

func El(tag string, mods ...Mod) Node {
	n := Node{Kind: KindElement, Tag: tag}
	for _, mod := range mods {
		mod.Apply(&n)
	}
	return n
}

func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

func Attr(name, value string) Mod {
	return ModFunc(func(n *Node) {
		if n.Attrs == nil {
			n.Attrs = map[string]string{}
		}
		n.Attrs[name] = value
	})
}

// Role sets an explicit accessibility role, overriding the implicit one.
func Role(name string) Mod {
	return Attr("role", name)
}

func On(event string, h Handler) Mod {
	return ModFunc(func(n *Node) {
		if n.Handlers == nil {
			n.Handlers = map[string][]Handler{}
		}
		n.Handlers[event] = append(n.Handlers[event], h)
	})
}

func OnClick(h Handler) Mod {
	return On("click", h)
}
