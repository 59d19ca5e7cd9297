package design

import "fmt"

// Optional is a presence-tagged non-numeric property value.
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Tone is a window color tone: red, green, blue and gray adjustments.
type Tone [4]float64

// Style is a sparse property bag. Absent properties leave the element's
// current value unchanged when the style is applied.
type Style struct {
	MarginLeft, MarginTop, MarginRight, MarginBottom     Number
	PaddingLeft, PaddingTop, PaddingRight, PaddingBottom Number

	X, Y, Width, Height Number

	Opacity, BackOpacity, ContentsOpacity Number

	OriginX, OriginY Number

	Windowskin   Optional[string]
	ColorTone    Optional[Tone]
	FrameVisible Optional[bool]
}

// field returns a pointer to the Number backing p.
func (s *Style) field(p Property) *Number {
	switch p {
	case MarginLeft:
		return &s.MarginLeft
	case MarginTop:
		return &s.MarginTop
	case MarginRight:
		return &s.MarginRight
	case MarginBottom:
		return &s.MarginBottom
	case PaddingLeft:
		return &s.PaddingLeft
	case PaddingTop:
		return &s.PaddingTop
	case PaddingRight:
		return &s.PaddingRight
	case PaddingBottom:
		return &s.PaddingBottom
	case X:
		return &s.X
	case Y:
		return &s.Y
	case Width:
		return &s.Width
	case Height:
		return &s.Height
	case Opacity:
		return &s.Opacity
	case BackOpacity:
		return &s.BackOpacity
	case ContentsOpacity:
		return &s.ContentsOpacity
	case OriginX:
		return &s.OriginX
	case OriginY:
		return &s.OriginY
	}
	panic(fmt.Sprintf("design: unknown numeric property %q", p))
}

// Get returns the value of numeric property p.
func (s Style) Get(p Property) Number {
	return *s.field(p)
}

// Set stores the value of numeric property p.
func (s *Style) Set(p Property, n Number) {
	*s.field(p) = n
}

// Each calls fn for every present numeric property, in [Properties] order.
func (s Style) Each(fn func(p Property, n Number)) {
	for _, p := range Properties {
		if n := s.Get(p); n.IsSet() {
			fn(p, n)
		}
	}
}

// Merge returns s with every property present in over applied on top.
func (s Style) Merge(over Style) Style {
	out := s
	over.Each(func(p Property, n Number) {
		out.Set(p, n)
	})
	if over.Windowskin.IsSet() {
		out.Windowskin = over.Windowskin
	}
	if over.ColorTone.IsSet() {
		out.ColorTone = over.ColorTone
	}
	if over.FrameVisible.IsSet() {
		out.FrameVisible = over.FrameVisible
	}
	return out
}

// IsEmpty reports whether no property is present.
func (s Style) IsEmpty() bool {
	return s == Style{}
}
