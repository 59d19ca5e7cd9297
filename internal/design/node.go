package design

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-flexui/internal/layout"
)

// Kind selects the visual element built for a node.
type Kind string

const (
	KindElement   Kind = "element"
	KindScene     Kind = "scene"
	KindWindow    Kind = "window"
	KindStack     Kind = "stack"
	KindAccordion Kind = "accordion"
	KindListItem  Kind = "listitem"
	KindText      Kind = "text"
)

var kinds = map[Kind]bool{
	KindElement: true, KindScene: true, KindWindow: true, KindStack: true,
	KindAccordion: true, KindListItem: true, KindText: true,
}

// Visual state names used by variants.
const (
	StateDefault  = "Default"
	StateOpening  = "Opening"
	StateHover    = "Hover"
	StatePressed  = "Pressed"
	StateDisabled = "Disabled"
)

// Variant is a named set of property overrides applied for a visual state.
type Variant struct {
	State string
	Style Style
}

// Transition declares that changes to Property animate over Duration,
// starting after Delay, following the named easing curve.
type Transition struct {
	Property Property
	Duration time.Duration
	Delay    time.Duration
	Easing   string
}

// Node is one element descriptor of a design tree. A node owns its
// children; [Node.Clone] copies the whole subtree.
type Node struct {
	Class       string
	Kind        Kind
	Orientation layout.Orientation
	Alignment   layout.Alignment
	Text        string
	ItemIndex   int

	// Style is the property set of the node's default variant.
	Style       Style
	Variants    []Variant
	Transitions []Transition
	Children    []*Node

	part bool
}

// NewPart returns a placeholder that [Link] replaces with a clone of the
// registry design named class.
func NewPart(class string) *Node {
	return &Node{Class: class, part: true}
}

// IsPart reports whether n is an unresolved placeholder.
func (n *Node) IsPart() bool {
	return n.part
}

// KindOrDefault returns the node's kind, treating the empty kind as an element.
func (n *Node) KindOrDefault() Kind {
	if n.Kind == "" {
		return KindElement
	}
	return n.Kind
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Variants != nil {
		c.Variants = append([]Variant(nil), n.Variants...)
	}
	if n.Transitions != nil {
		c.Transitions = append([]Transition(nil), n.Transitions...)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// FindVariant returns the variant for state.
func (n *Node) FindVariant(state string) (Variant, bool) {
	for _, v := range n.Variants {
		if v.State == state {
			return v, true
		}
	}
	return Variant{}, false
}

// FindTransition returns the transition declared for p.
func (n *Node) FindTransition(p Property) (Transition, bool) {
	for _, t := range n.Transitions {
		if t.Property == p {
			return t, true
		}
	}
	return Transition{}, false
}

// FindByClass returns the first node in depth-first order whose class is class.
func (n *Node) FindByClass(class string) *Node {
	if n.Class == class {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByClass(class); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// HasParts reports whether any Part remains in the subtree.
func (n *Node) HasParts() bool {
	found := false
	n.Walk(func(c *Node) bool {
		if c.part {
			found = true
		}
		return !found
	})
	return found
}

// Target returns the concrete node n stands for. Reading the target of a
// Part before it has been linked is a programming error.
func (n *Node) Target() *Node {
	if n.part {
		panic(fmt.Sprintf("design: part %q read before linking", n.Class))
	}
	return n
}
