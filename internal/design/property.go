package design

// Property names a numeric style property. Only these properties may be
// animated by a transition.
type Property string

const (
	MarginLeft      Property = "marginLeft"
	MarginTop       Property = "marginTop"
	MarginRight     Property = "marginRight"
	MarginBottom    Property = "marginBottom"
	PaddingLeft     Property = "paddingLeft"
	PaddingTop      Property = "paddingTop"
	PaddingRight    Property = "paddingRight"
	PaddingBottom   Property = "paddingBottom"
	X               Property = "x"
	Y               Property = "y"
	Width           Property = "width"
	Height          Property = "height"
	Opacity         Property = "opacity"
	BackOpacity     Property = "backOpacity"
	ContentsOpacity Property = "contentsOpacity"
	OriginX         Property = "originX"
	OriginY         Property = "originY"
)

// Properties lists every numeric property in application order.
var Properties = []Property{
	MarginLeft, MarginTop, MarginRight, MarginBottom,
	PaddingLeft, PaddingTop, PaddingRight, PaddingBottom,
	X, Y, Width, Height,
	Opacity, BackOpacity, ContentsOpacity,
	OriginX, OriginY,
}

// Numeric reports whether p is one of the animatable numeric properties.
func (p Property) Numeric() bool {
	for _, q := range Properties {
		if p == q {
			return true
		}
	}
	return false
}
