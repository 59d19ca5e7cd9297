package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/internal/layout"
)

// Policy lays out the children of an element.
//
// Measure receives the space left after the element's margin and padding
// and returns the desired content size. Arrange receives the content box in
// the element's local space and arranges each child.
type Policy interface {
	Measure(ctx *Context, e *Element, constraint Size) Size
	Arrange(ctx *Context, e *Element, content Rect)
}

var (
	_ Policy = Leaf{}
	_ Policy = Canvas{}
	_ Policy = Stack{}
	_ Policy = Accordion{}
	_ Policy = ListItem{}
)

// defaultPolicy picks the policy for a design kind.
func defaultPolicy(kind Kind, orientation Orientation, children int) Policy {
	switch kind {
	case KindStack:
		return Stack{Orientation: orientation}
	case KindAccordion:
		return Accordion{Orientation: orientation}
	case KindListItem:
		return ListItem{}
	case KindText:
		return Leaf{}
	}
	if children == 0 {
		return Leaf{}
	}
	return Canvas{}
}

// Leaf lays out nothing. It records the constraint it was measured with
// and wants no content space of its own.
type Leaf struct{}

func (Leaf) Measure(_ *Context, e *Element, constraint Size) Size {
	e.constraint = constraint
	return Size{}
}

func (Leaf) Arrange(*Context, *Element, Rect) {}

// Canvas gives every child the whole content box, placed by the child's
// alignment.
type Canvas struct{}

func (Canvas) Measure(ctx *Context, e *Element, constraint Size) Size {
	e.constraint = constraint
	return layout.MeasureCanvas(e.layoutChildren(ctx), constraint)
}

func (Canvas) Arrange(ctx *Context, e *Element, content Rect) {
	layout.ArrangeCanvas(e.layoutChildren(ctx), content)
}

// Stack places children one after another along its orientation.
type Stack struct {
	Orientation Orientation
}

func (s Stack) Measure(ctx *Context, e *Element, constraint Size) Size {
	e.constraint = constraint
	return layout.MeasureStack(s.Orientation, e.layoutChildren(ctx), constraint)
}

func (s Stack) Arrange(ctx *Context, e *Element, content Rect) {
	layout.ArrangeStack(s.Orientation, e.layoutChildren(ctx), content)
}

// Accordion keeps the first and last children at their desired extents and
// splits the remaining space equally among the children in between. Only
// Horizontal and Vertical are supported; other orientations panic.
type Accordion struct {
	Orientation Orientation
}

func (a Accordion) Measure(ctx *Context, e *Element, constraint Size) Size {
	e.constraint = constraint
	return layout.MeasureAccordion(a.Orientation, e.layoutChildren(ctx), constraint)
}

func (a Accordion) Arrange(ctx *Context, e *Element, content Rect) {
	layout.ArrangeAccordion(a.Orientation, e.layoutChildren(ctx), content)
}

// ListItem arranges its children in the line rect that the enclosing host
// window reports for the item's index. The item takes that line as its own
// rect, and it and its children are placed in that window's local space
// rather than the slot its parent offered.
type ListItem struct{}

func (ListItem) Measure(ctx *Context, e *Element, constraint Size) Size {
	e.constraint = constraint
	return layout.MeasureCanvas(e.layoutChildren(ctx), constraint)
}

func (ListItem) Arrange(ctx *Context, e *Element, _ Rect) {
	w, ok := ctx.CurrentWindow().(Selectable)
	if !ok {
		panic(fmt.Sprintf("flexui: list item %d has no selectable host window (current %T)", e.itemIndex, ctx.CurrentWindow()))
	}
	line := w.ItemLineRect(e.itemIndex)
	e.onHostLine, e.hostLine = true, line
	for _, child := range e.children {
		if ctx.TestLayoutEnabled(child) {
			child.Arrange(ctx, line)
		}
	}
}
