package layout

import "fmt"

// Alignment positions a child within the layout slot its parent assigns.
type Alignment uint8

const (
	AlignStretch           Alignment = iota // Fill the whole slot
	AlignCenter                             // Center on both axes
	AlignLeft                               // Left edge, vertically centered
	AlignTop                                // Top edge, horizontally centered
	AlignRight                              // Right edge, vertically centered
	AlignBottom                             // Bottom edge, horizontally centered
	AlignTopLeft                            // Top-left corner
	AlignTopRight                           // Top-right corner
	AlignBottomLeft                         // Bottom-left corner
	AlignBottomRight                        // Bottom-right corner
	AlignLeftStretch                        // Left edge, full height
	AlignTopStretch                         // Top edge, full width
	AlignRightStretch                       // Right edge, full height
	AlignBottomStretch                      // Bottom edge, full width
	AlignHorizontalStretch                  // Vertically centered, full width
	AlignVerticalStretch                    // Horizontally centered, full height
)

var alignmentNames = map[Alignment]string{
	AlignStretch:           "stretch",
	AlignCenter:            "center",
	AlignLeft:              "left",
	AlignTop:               "top",
	AlignRight:             "right",
	AlignBottom:            "bottom",
	AlignTopLeft:           "top-left",
	AlignTopRight:          "top-right",
	AlignBottomLeft:        "bottom-left",
	AlignBottomRight:       "bottom-right",
	AlignLeftStretch:       "left-stretch",
	AlignTopStretch:        "top-stretch",
	AlignRightStretch:      "right-stretch",
	AlignBottomStretch:     "bottom-stretch",
	AlignHorizontalStretch: "horizontal-stretch",
	AlignVerticalStretch:   "vertical-stretch",
}

// ParseAlignment converts a design-file name into an Alignment.
// The empty string means AlignStretch.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" {
		return AlignStretch, nil
	}
	for a, name := range alignmentNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// String returns the design-file name of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// edge is the placement of a child along one axis of its slot.
type edge uint8

const (
	edgeStretch edge = iota
	edgeStart
	edgeCenter
	edgeEnd
)

func (a Alignment) horizontal() edge {
	switch a {
	case AlignStretch, AlignTopStretch, AlignBottomStretch, AlignHorizontalStretch:
		return edgeStretch
	case AlignLeft, AlignTopLeft, AlignBottomLeft, AlignLeftStretch:
		return edgeStart
	case AlignRight, AlignTopRight, AlignBottomRight, AlignRightStretch:
		return edgeEnd
	default:
		return edgeCenter
	}
}

func (a Alignment) vertical() edge {
	switch a {
	case AlignStretch, AlignLeftStretch, AlignRightStretch, AlignVerticalStretch:
		return edgeStretch
	case AlignTop, AlignTopLeft, AlignTopRight, AlignTopStretch:
		return edgeStart
	case AlignBottom, AlignBottomLeft, AlignBottomRight, AlignBottomStretch:
		return edgeEnd
	default:
		return edgeCenter
	}
}

// StretchesAcross reports whether a child with this alignment fills the
// cross axis of a container laid out along o.
func (a Alignment) StretchesAcross(o Orientation) bool {
	if o.IsHorizontal() {
		return a.vertical() == edgeStretch
	}
	return a.horizontal() == edgeStretch
}

// Place positions a child of the given desired size inside slot.
// Stretched axes take the full slot extent; other axes use the desired
// extent clamped to the slot.
func (a Alignment) Place(slot Rect, desired Size) Rect {
	x, w := place(a.horizontal(), slot.X, slot.Width, desired.Width)
	y, h := place(a.vertical(), slot.Y, slot.Height, desired.Height)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func place(e edge, start, available, desired float64) (pos, extent float64) {
	if e == edgeStretch {
		return start, available
	}
	extent = min(desired, available)
	switch e {
	case edgeEnd:
		return start + available - extent, extent
	case edgeCenter:
		return start + (available-extent)/2, extent
	default:
		return start, extent
	}
}
