package layout

import "fmt"

// Orientation is the main axis of a stack or accordion container.
type Orientation uint8

const (
	Vertical          Orientation = iota // Children top-to-bottom
	Horizontal                           // Children left-to-right
	ReverseVertical                      // Children bottom-to-top
	ReverseHorizontal                    // Children right-to-left
)

var orientationNames = map[Orientation]string{
	Vertical:          "vertical",
	Horizontal:        "horizontal",
	ReverseVertical:   "reverse-vertical",
	ReverseHorizontal: "reverse-horizontal",
}

// ParseOrientation converts a design-file name into an Orientation.
// The empty string means Vertical.
func ParseOrientation(s string) (Orientation, error) {
	if s == "" {
		return Vertical, nil
	}
	for o, name := range orientationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// String returns the design-file name of the orientation.
func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Valid reports whether o is one of the declared orientations.
func (o Orientation) Valid() bool {
	_, ok := orientationNames[o]
	return ok
}

// IsHorizontal reports whether the main axis is X.
func (o Orientation) IsHorizontal() bool {
	return o == Horizontal || o == ReverseHorizontal
}

// IsReverse reports whether children are packed from the far edge.
func (o Orientation) IsReverse() bool {
	return o == ReverseVertical || o == ReverseHorizontal
}
