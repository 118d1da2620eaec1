// Package dom is a minimal UI node tree: elements with text, attributes,
// classes, children and click-style event listeners. It plays the role of a
// browser document for the feed pipeline and is rendered to the terminal by
// the tui package.
//
// Nodes are not safe for concurrent use. A tree attached to a live container
// is owned by the Bubble Tea update loop.
package dom

import (
	"slices"
	"sort"
	"strings"
)

// FragmentTag marks a detached container whose children move into the
// parent on Append, like a document fragment.
const FragmentTag = "#fragment"

// Event is delivered to listeners by Dispatch.
type Event struct {
	Type   string
	Target *Node
}

// Handler reacts to an event.
type Handler func(Event)

// ListenerID identifies one binding on one node.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Handler
}

// Node is an element in the tree.
type Node struct {
	tag       string
	text      string
	attrs     map[string]string
	classes   []string
	parent    *Node
	children  []*Node
	listeners map[string][]listener
	nextID    ListenerID
}

// New creates an empty element.
func New(tag string) *Node {
	return &Node{tag: tag}
}

// NewText creates an element with text content and optional classes.
func NewText(tag, text string, classes ...string) *Node {
	n := New(tag)
	n.text = text
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// NewFragment creates an empty fragment.
func NewFragment() *Node {
	return New(FragmentTag)
}

func (n *Node) Tag() string      { return n.tag }
func (n *Node) IsFragment() bool { return n.tag == FragmentTag }
func (n *Node) Text() string     { return n.text }
func (n *Node) Parent() *Node    { return n.parent }

// SetText replaces the node's own text content.
func (n *Node) SetText(s string) { n.text = s }

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// Data returns a data-* attribute.
func (n *Node) Data(key string) (string, bool) { return n.Attr("data-" + key) }

// SetData sets a data-* attribute.
func (n *Node) SetData(key, value string) { n.SetAttr("data-"+key, value) }

// HasClass reports whether the class is present.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// AddClass adds a class once.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes a class if present.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// ToggleClass flips a class and reports whether it is now present.
func (n *Node) ToggleClass(class string) bool {
	if n.HasClass(class) {
		n.RemoveClass(class)
		return false
	}
	n.AddClass(class)
	return true
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Append adds children in order. A fragment child is emptied into n.
// A child that already has a parent is moved.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.IsFragment() {
			moved := c.children
			c.children = nil
			for _, gc := range moved {
				gc.parent = nil
				n.Append(gc)
			}
			continue
		}
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// RemoveChild detaches c from n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// Clear removes every child, last first, and returns how many were removed.
func (n *Node) Clear() int {
	removed := 0
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
		removed++
	}
	return removed
}

// AddListener binds fn for event type and returns the binding id.
func (n *Node) AddListener(event string, fn Handler) ListenerID {
	if n.listeners == nil {
		n.listeners = make(map[string][]listener)
	}
	n.nextID++
	n.listeners[event] = append(n.listeners[event], listener{id: n.nextID, fn: fn})
	return n.nextID
}

// RemoveListener unbinds a binding previously returned by AddListener.
func (n *Node) RemoveListener(event string, id ListenerID) bool {
	ls := n.listeners[event]
	i := slices.IndexFunc(ls, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	n.listeners[event] = slices.Delete(ls, i, i+1)
	return true
}

// ListenerCount returns the number of bindings for event type.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Dispatch delivers an event to n's listeners and returns how many ran.
func (n *Node) Dispatch(event string) int {
	ls := slices.Clone(n.listeners[event])
	for _, l := range ls {
		l.fn(Event{Type: event, Target: n})
	}
	return len(ls)
}

// String serializes the subtree as markup with sorted attributes. Two trees
// with the same structure serialize identically.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsFragment() {
		for _, c := range n.children {
			c.write(b)
		}
		return
	}
	b.WriteString("<" + n.tag)
	if len(n.classes) > 0 {
		b.WriteString(` class="` + strings.Join(n.classes, " ") + `"`)
	}
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + `="` + n.attrs[k] + `"`)
	}
	b.WriteString(">")
	b.WriteString(n.text)
	for _, c := range n.children {
		c.write(b)
	}
	b.WriteString("</" + n.tag + ">")
}
