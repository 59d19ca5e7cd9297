// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexui

import "github.com/grindlemire/go-flexui/internal/layout"

// Rect is an axis-aligned rectangle.
type Rect = layout.Rect

// Size is a width/height pair.
type Size = layout.Size

// Point is an x/y coordinate.
type Point = layout.Point

// Thickness holds spacing on four sides (top, right, bottom, left).
type Thickness = layout.Thickness

// Orientation selects the main axis and direction of a stack or accordion.
type Orientation = layout.Orientation

const (
	Vertical          = layout.Vertical
	Horizontal        = layout.Horizontal
	ReverseVertical   = layout.ReverseVertical
	ReverseHorizontal = layout.ReverseHorizontal
)

// Alignment controls how an element sits inside its layout slot.
type Alignment = layout.Alignment

const (
	AlignStretch           = layout.AlignStretch
	AlignCenter            = layout.AlignCenter
	AlignLeft              = layout.AlignLeft
	AlignTop               = layout.AlignTop
	AlignRight             = layout.AlignRight
	AlignBottom            = layout.AlignBottom
	AlignTopLeft           = layout.AlignTopLeft
	AlignTopRight          = layout.AlignTopRight
	AlignBottomLeft        = layout.AlignBottomLeft
	AlignBottomRight       = layout.AlignBottomRight
	AlignLeftStretch       = layout.AlignLeftStretch
	AlignTopStretch        = layout.AlignTopStretch
	AlignRightStretch      = layout.AlignRightStretch
	AlignBottomStretch     = layout.AlignBottomStretch
	AlignHorizontalStretch = layout.AlignHorizontalStretch
	AlignVerticalStretch   = layout.AlignVerticalStretch
)

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a Size, clamping negative extents to zero.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// ThicknessAll returns a Thickness with n on every side.
func ThicknessAll(n float64) Thickness {
	return layout.ThicknessAll(n)
}

// ThicknessTRBL returns a Thickness from explicit sides.
func ThicknessTRBL(top, right, bottom, left float64) Thickness {
	return layout.ThicknessTRBL(top, right, bottom, left)
}
