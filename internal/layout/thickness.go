package layout

// Thickness is spacing on four sides, used for margin and padding.
type Thickness struct {
	Top, Right, Bottom, Left float64
}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(n float64) Thickness {
	return Thickness{Top: n, Right: n, Bottom: n, Left: n}
}

// ThicknessSymmetric creates a Thickness with vertical (top/bottom) and
// horizontal (left/right) values.
func ThicknessSymmetric(v, h float64) Thickness {
	return Thickness{Top: v, Right: h, Bottom: v, Left: h}
}

// ThicknessTRBL creates a Thickness following CSS order: Top, Right, Bottom, Left.
func ThicknessTRBL(t, r, b, l float64) Thickness {
	return Thickness{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the total horizontal spacing (Left + Right).
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the total vertical spacing (Top + Bottom).
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Add returns the side-wise sum of t and other.
func (t Thickness) Add(other Thickness) Thickness {
	return Thickness{
		Top:    t.Top + other.Top,
		Right:  t.Right + other.Right,
		Bottom: t.Bottom + other.Bottom,
		Left:   t.Left + other.Left,
	}
}
