// Package menu builds the navigable tree shown by the browser from a
// parsed section map.
package menu

// Kind tags the concrete type behind a Node.
type Kind int

const (
	KindSubmenu Kind = iota
	KindContent
	KindAction // reserved
)

func (k Kind) String() string {
	switch k {
	case KindSubmenu:
		return "submenu"
	case KindContent:
		return "content"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// Entry holds what every menu line displays.
type Entry struct {
	Label       string
	Icon        string
	Description string
}

// Info returns the entry itself; it is promoted to every node type.
func (e *Entry) Info() *Entry { return e }

// Node is one of *Submenu, *Content or *Action.
type Node interface {
	Info() *Entry
	Kind() Kind
}

// Submenu opens a further level of options.
type Submenu struct {
	Entry
	Children []Node
}

func (*Submenu) Kind() Kind { return KindSubmenu }

// Add appends children and returns the submenu for chaining.
func (m *Submenu) Add(children ...Node) *Submenu {
	m.Children = append(m.Children, children...)
	return m
}

// Content shows the section stored under Key.
type Content struct {
	Entry
	Key string
}

func (*Content) Kind() Kind { return KindContent }

// Action is reserved for entries that run a command instead of showing
// content. Nothing builds one yet.
type Action struct {
	Entry
}

func (*Action) Kind() Kind { return KindAction }

// NewSubmenu returns an empty submenu.
func NewSubmenu(label, icon, description string) *Submenu {
	return &Submenu{Entry: Entry{Label: label, Icon: icon, Description: description}}
}

// NewContent returns a leaf bound to a section key.
func NewContent(key, label, icon, description string) *Content {
	return &Content{Entry: Entry{Label: label, Icon: icon, Description: description}, Key: key}
}

// Walk visits n and all of its descendants depth-first.
func Walk(n Node, fn func(Node)) {
	fn(n)
	if m, ok := n.(*Submenu); ok {
		for _, c := range m.Children {
			Walk(c, fn)
		}
	}
}
