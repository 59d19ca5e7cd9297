package layout

// MeasureCanvas measures every enabled child against the full constraint and
// returns the largest desired extent on each axis.
func MeasureCanvas(children []Node, constraint Size) Size {
	var size Size
	for _, child := range children {
		if !child.LayoutEnabled() {
			continue
		}
		child.Measure(constraint)
		d := child.DesiredSize()
		size.Width = max(size.Width, d.Width)
		size.Height = max(size.Height, d.Height)
	}
	return size
}

// ArrangeCanvas gives every enabled child the whole content box, placed
// according to the child's alignment.
func ArrangeCanvas(children []Node, content Rect) {
	for _, child := range children {
		if !child.LayoutEnabled() {
			continue
		}
		child.Arrange(child.Alignment().Place(content, child.DesiredSize()))
	}
}
