package flexui

import "github.com/grindlemire/go-flexui/internal/layout"

// Measure computes the element's desired size for constraint, the space
// its parent offers including the element's margin.
//
// The policy measures the content against constraint minus margin and
// padding. An explicitly styled width or height replaces the measured
// extent on that axis. The desired size includes the margin.
func (e *Element) Measure(ctx *Context, constraint Size) {
	m, p := e.style.Margin, e.style.Padding
	inner := constraint.Deflate(m).Deflate(p)
	desired := e.policy.Measure(ctx, e, inner).Inflate(p).Inflate(m)
	if e.explicitWidth {
		desired.Width = e.style.Width + m.Horizontal()
	}
	if e.explicitHeight {
		desired.Height = e.style.Height + m.Vertical()
	}
	e.desired = desired
}

// Arrange positions the element inside area, the layout slot its parent
// assigned in the parent's local space, and returns the actual rect.
//
// The slot is clamped to an explicitly styled width or height and the
// margin is removed to give the border box. The policy arranges children
// inside the content box, which starts at the local origin inset by the
// padding. The stored rect is the border box offset by the styled x and y;
// a policy that places the element on a host window line replaces the
// border box with that line.
func (e *Element) Arrange(ctx *Context, area Rect) Rect {
	m := e.style.Margin
	slot := area
	if e.explicitWidth {
		slot.Width = min(slot.Width, e.style.Width+m.Horizontal())
	}
	if e.explicitHeight {
		slot.Height = min(slot.Height, e.style.Height+m.Vertical())
	}
	border := slot.Inset(m)

	if e.window != nil {
		ctx.pushWindow(e.window)
		defer ctx.popWindow()
	}
	content := layout.RectFromSize(border.Size()).Inset(e.style.Padding)
	e.onHostLine = false
	e.policy.Arrange(ctx, e, content)
	if e.onHostLine {
		border = e.hostLine
	}

	e.rect = border.Translate(e.style.X, e.style.Y)
	e.arranged = true
	return e.rect
}

// Arranged reports whether the element has been arranged at least once.
func (e *Element) Arranged() bool {
	return e.arranged
}

// ScreenRect returns the actual rect translated into surface space.
//
// A list item and its children are arranged in the local space of the
// window that hosts the list, so translation continues from that window.
func (e *Element) ScreenRect() Rect {
	r := e.rect
	for c := e; c.parent != nil; {
		p := c.parent
		if c.onHostLine || p.onHostLine {
			for p.parent != nil && p.window == nil {
				p = p.parent
			}
		}
		r = r.Translate(p.rect.X, p.rect.Y)
		c = p
	}
	return r
}

// layoutNode adapts an element to the layout engine for one pass.
type layoutNode struct {
	ctx *Context
	e   *Element
}

var _ layout.Node = layoutNode{}

func (n layoutNode) Measure(constraint Size) { n.e.Measure(n.ctx, constraint) }
func (n layoutNode) DesiredSize() Size { return n.e.desired }
func (n layoutNode) Arrange(area Rect) Rect { return n.e.Arrange(n.ctx, area) }
func (n layoutNode) LayoutEnabled() bool { return n.ctx.TestLayoutEnabled(n.e) }
func (n layoutNode) Alignment() Alignment { return n.e.Alignment() }

// layoutChildren returns the element's children as layout nodes.
func (e *Element) layoutChildren(ctx *Context) []layout.Node {
	nodes := make([]layout.Node, len(e.children))
	for i, child := range e.children {
		nodes[i] = layoutNode{ctx: ctx, e: child}
	}
	return nodes
}
