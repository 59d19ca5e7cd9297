package flexui

import (
	"sync/atomic"

	"github.com/grindlemire/go-flexui/internal/anim"
	"github.com/grindlemire/go-flexui/internal/design"
)

// Kind selects the visual element built for a design node.
type Kind = design.Kind

const (
	KindElement   = design.KindElement
	KindScene     = design.KindScene
	KindWindow    = design.KindWindow
	KindStack     = design.KindStack
	KindAccordion = design.KindAccordion
	KindListItem  = design.KindListItem
	KindText      = design.KindText
)

// Visual state names.
const (
	StateDefault  = design.StateDefault
	StateOpening  = design.StateOpening
	StateHover    = design.StateHover
	StatePressed  = design.StatePressed
	StateDisabled = design.StateDisabled
)

var lastID atomic.Uint64

// Element is the live counterpart of one resolved design node. It holds the
// measured and arranged geometry, the actual style and the invalidation
// state of the node, and owns its children.
type Element struct {
	id     uint64
	design *design.Node

	// Tree structure. The parent link is set once, when the element is built.
	children []*Element
	parent   *Element
	scene    *Scene

	policy Policy

	// Layout results
	constraint Size
	desired    Size
	rect       Rect // border box in the parent's local space, offset by x/y
	arranged   bool
	onHostLine bool // rect is a host window line rect, in that window's space
	hostLine   Rect

	// Style state
	variants       []design.Variant
	style          ActualStyle
	state          string
	explicitWidth  bool
	explicitHeight bool
	opened         *design.Style // values the Opening variant displaced
	flags          InvalidateFlags
	layoutEnabled  bool
	destroyed      bool
	itemIndex      int
	window         HostWindow
}

// NewElement builds a standalone visual tree for d. Every Part in d must
// already have been linked.
//
// Elements built this way belong to no scene: property changes are applied
// immediately because there is no renderable surface to animate on.
func NewElement(d *design.Node) *Element {
	return build(d, nil, nil, nil)
}

// build creates the element for d below parent. policies overrides the
// default policy by design class.
func build(d *design.Node, parent *Element, s *Scene, policies map[string]Policy) *Element {
	d = d.Target()
	e := &Element{
		id:            lastID.Add(1),
		design:        d,
		parent:        parent,
		scene:         s,
		style:         DefaultActualStyle(),
		state:         StateDefault,
		flags:         InvalidateAll,
		layoutEnabled: true,
		itemIndex:     d.ItemIndex,
	}

	e.variants = make([]design.Variant, 0, len(d.Variants)+1)
	e.variants = append(e.variants, design.Variant{State: StateDefault, Style: d.Style})
	e.variants = append(e.variants, d.Variants...)

	children := d.Children
	if d.KindOrDefault() == KindListItem && d.Text != "" {
		children = append([]*design.Node{{Kind: KindText, Text: d.Text}}, children...)
	}
	e.children = make([]*Element, 0, len(children))
	for _, c := range children {
		e.children = append(e.children, build(c, e, s, policies))
	}

	if p, ok := policies[d.Class]; ok && d.Class != "" {
		e.policy = p
	} else {
		e.policy = defaultPolicy(d.KindOrDefault(), d.Orientation, len(e.children))
	}
	if s != nil {
		s.register(e)
	}
	return e
}

// ID returns the element's process-unique identity.
func (e *Element) ID() uint64 {
	return e.id
}

// Design returns the design node the element was built from.
func (e *Element) Design() *design.Node {
	return e.design
}

// Class returns the design class tag, or "".
func (e *Element) Class() string {
	return e.design.Class
}

// Kind returns the design kind.
func (e *Element) Kind() Kind {
	return e.design.KindOrDefault()
}

// Text returns the text of a text element.
func (e *Element) Text() string {
	return e.design.Text
}

// Alignment returns how the element sits inside its layout slot.
func (e *Element) Alignment() Alignment {
	return e.design.Alignment
}

// Orientation returns the design orientation.
func (e *Element) Orientation() Orientation {
	return e.design.Orientation
}

// ItemIndex returns the command index of a list item.
func (e *Element) ItemIndex() int {
	return e.itemIndex
}

// SetItemIndex sets the command index used to ask the host for a line rect.
func (e *Element) SetItemIndex(i int) {
	if e.itemIndex == i {
		return
	}
	e.itemIndex = i
	e.SetInvalidate(InvalidateLayout)
}

// Policy returns the layout policy of the element.
func (e *Element) Policy() Policy {
	return e.policy
}

// SetPolicy replaces the layout policy of the element.
func (e *Element) SetPolicy(p Policy) {
	if p == nil {
		panic("flexui: nil policy")
	}
	e.policy = p
	e.SetInvalidate(InvalidateLayout)
}

// LayoutEnabled reports whether the element takes part in layout.
func (e *Element) LayoutEnabled() bool {
	return e.layoutEnabled && !e.destroyed
}

// SetLayoutEnabled includes or excludes the element from layout.
func (e *Element) SetLayoutEnabled(enabled bool) {
	if e.layoutEnabled == enabled {
		return
	}
	e.layoutEnabled = enabled
	e.SetInvalidate(InvalidateLayout)
}

// ActualStyle returns the current style.
func (e *Element) ActualStyle() ActualStyle {
	return e.style
}

// VisualState returns the requested visual state.
func (e *Element) VisualState() string {
	return e.state
}

// DesiredSize returns the result of the last Measure, margin included.
func (e *Element) DesiredSize() Size {
	return e.desired
}

// Constraint returns the constraint the last Measure passed to the policy.
func (e *Element) Constraint() Size {
	return e.constraint
}

// ExplicitWidth reports whether a width has been styled on the element.
// An explicit width of 0 is still explicit.
func (e *Element) ExplicitWidth() bool {
	return e.explicitWidth
}

// ExplicitHeight reports whether a height has been styled on the element.
func (e *Element) ExplicitHeight() bool {
	return e.explicitHeight
}

// ActualRect returns the arranged border box in the parent's local space.
func (e *Element) ActualRect() Rect {
	return e.rect
}

// Window returns the bound host window, or nil.
func (e *Element) Window() HostWindow {
	return e.window
}

// Destroyed reports whether Destroy has been called.
func (e *Element) Destroyed() bool {
	return e.destroyed
}

func (e *Element) scheduler() *anim.Scheduler {
	if e.scene != nil {
		return e.scene.scheduler
	}
	return anim.Default()
}

func (e *Element) animKey(p design.Property) anim.Key {
	return anim.Key{Owner: e.id, Property: string(p)}
}
