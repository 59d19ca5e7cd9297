package layout

// MeasureStack measures every enabled child against constraint and returns
// the aggregate desired size: the sum of extents along o and the maximum
// extent across it.
func MeasureStack(o Orientation, children []Node, constraint Size) Size {
	var along, across float64
	for _, child := range children {
		if !child.LayoutEnabled() {
			continue
		}
		child.Measure(constraint)
		d := child.DesiredSize()
		along += d.Along(o)
		across = max(across, d.Across(o))
	}
	if o.IsHorizontal() {
		return Size{Width: along, Height: across}
	}
	return Size{Width: across, Height: along}
}

// ArrangeStack places enabled children one after another along o inside
// content. Forward orientations start at the leading edge; reverse
// orientations pack the first child against the far edge. Each child keeps
// its desired extent along the axis and is stretched across it unless its
// alignment opts out.
func ArrangeStack(o Orientation, children []Node, content Rect) {
	var offset float64
	for _, child := range children {
		if !child.LayoutEnabled() {
			continue
		}
		d := child.DesiredSize()
		extent := d.Along(o)
		child.Arrange(stackSlot(o, child, content, offset, extent))
		offset += extent
	}
}

// stackSlot builds the rect for one child at offset along the main axis.
func stackSlot(o Orientation, child Node, content Rect, offset, extent float64) Rect {
	d := child.DesiredSize()
	a := child.Alignment()
	if o.IsHorizontal() {
		x := content.X + offset
		if o.IsReverse() {
			x = content.Right() - offset - extent
		}
		y, h := place(a.vertical(), content.Y, content.Height, d.Height)
		return Rect{X: x, Y: y, Width: extent, Height: h}
	}
	y := content.Y + offset
	if o.IsReverse() {
		y = content.Bottom() - offset - extent
	}
	x, w := place(a.horizontal(), content.X, content.Width, d.Width)
	return Rect{X: x, Y: y, Width: w, Height: extent}
}
