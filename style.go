package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/internal/design"
)

// Tone is a window color tone: red, green, blue and gray adjustments.
type Tone = design.Tone

// ActualStyle is the fully defined, currently rendered style of an element.
// Unlike a design Style it has no absent fields.
type ActualStyle struct {
	Margin  Thickness
	Padding Thickness

	X, Y          float64
	Width, Height float64

	Opacity         float64
	BackOpacity     float64
	ContentsOpacity float64

	OriginX, OriginY float64

	Windowskin   string
	ColorTone    Tone
	FrameVisible bool
}

// DefaultActualStyle returns the style every element starts with.
func DefaultActualStyle() ActualStyle {
	return ActualStyle{
		Opacity:         255,
		BackOpacity:     255,
		ContentsOpacity: 255,
		ColorTone:       Tone{0, 0, 0, 1},
		FrameVisible:    true,
	}
}

// Number returns the value of numeric property p.
func (s *ActualStyle) Number(p design.Property) float64 {
	return *s.field(p)
}

func (s *ActualStyle) setNumber(p design.Property, v float64) {
	*s.field(p) = v
}

func (s *ActualStyle) field(p design.Property) *float64 {
	switch p {
	case design.MarginLeft:
		return &s.Margin.Left
	case design.MarginTop:
		return &s.Margin.Top
	case design.MarginRight:
		return &s.Margin.Right
	case design.MarginBottom:
		return &s.Margin.Bottom
	case design.PaddingLeft:
		return &s.Padding.Left
	case design.PaddingTop:
		return &s.Padding.Top
	case design.PaddingRight:
		return &s.Padding.Right
	case design.PaddingBottom:
		return &s.Padding.Bottom
	case design.X:
		return &s.X
	case design.Y:
		return &s.Y
	case design.Width:
		return &s.Width
	case design.Height:
		return &s.Height
	case design.Opacity:
		return &s.Opacity
	case design.BackOpacity:
		return &s.BackOpacity
	case design.ContentsOpacity:
		return &s.ContentsOpacity
	case design.OriginX:
		return &s.OriginX
	case design.OriginY:
		return &s.OriginY
	}
	panic(fmt.Sprintf("flexui: unknown numeric property %q", p))
}
