package layout

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height float64) Size {
	return Size{Width: max(0, width), Height: max(0, height)}
}

// Along returns the extent on the main axis of o.
func (s Size) Along(o Orientation) float64 {
	if o.IsHorizontal() {
		return s.Width
	}
	return s.Height
}

// Across returns the extent on the cross axis of o.
func (s Size) Across(o Orientation) float64 {
	if o.IsHorizontal() {
		return s.Height
	}
	return s.Width
}

// Deflate shrinks the size by t on every side. Dimensions never go negative.
func (s Size) Deflate(t Thickness) Size {
	return NewSize(s.Width-t.Horizontal(), s.Height-t.Vertical())
}

// Inflate grows the size by t on every side.
func (s Size) Inflate(t Thickness) Size {
	return Size{Width: s.Width + t.Horizontal(), Height: s.Height + t.Vertical()}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
