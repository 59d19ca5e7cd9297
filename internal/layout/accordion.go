package layout

import "fmt"

// mustAccordionAxis rejects orientations the accordion policy cannot lay out.
// There is no fallback orientation.
func mustAccordionAxis(o Orientation) {
	if o != Horizontal && o != Vertical {
		panic(fmt.Sprintf("layout: invalid accordion orientation %s", o))
	}
}

// MeasureAccordion aggregates children the same way a stack does.
// It panics if o is not Horizontal or Vertical.
func MeasureAccordion(o Orientation, children []Node, constraint Size) Size {
	mustAccordionAxis(o)
	return MeasureStack(o, children, constraint)
}

// AccordionExtents computes the main-axis extents of the first, middle and
// last children for the given available extent.
//
// The first and last children keep their desired extents clamped to
// available; the remaining space is split equally among the enabled middle
// children regardless of their desired size. Disabled children reserve nothing.
func AccordionExtents(o Orientation, children []Node, available float64) (first, middle, last float64) {
	n := len(children)
	if n == 0 {
		return 0, 0, 0
	}
	if c := children[0]; c.LayoutEnabled() {
		first = min(c.DesiredSize().Along(o), available)
	}
	if n >= 2 {
		if c := children[n-1]; c.LayoutEnabled() {
			last = min(c.DesiredSize().Along(o), available)
		}
	}
	var count int
	for i := 1; i < n-1; i++ {
		if children[i].LayoutEnabled() {
			count++
		}
	}
	if count > 0 {
		middle = max(0, available-first-last) / float64(count)
	}
	return first, middle, last
}

// ArrangeAccordion splits content along o into first, middle and last
// regions and arranges enabled children into them in order. Every child
// spans the full cross extent of content.
// It panics if o is not Horizontal or Vertical.
func ArrangeAccordion(o Orientation, children []Node, content Rect) {
	mustAccordionAxis(o)
	n := len(children)
	if n == 0 {
		return
	}
	first, middle, last := AccordionExtents(o, children, content.Size().Along(o))

	var offset float64
	for i, child := range children {
		if !child.LayoutEnabled() {
			continue
		}
		extent := middle
		switch {
		case i == 0:
			extent = first
		case i == n-1:
			extent = last
		}
		slot := Rect{X: content.X + offset, Y: content.Y, Width: extent, Height: content.Height}
		if !o.IsHorizontal() {
			slot = Rect{X: content.X, Y: content.Y + offset, Width: content.Width, Height: extent}
		}
		child.Arrange(slot)
		offset += extent
	}
}
