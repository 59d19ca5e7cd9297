package flexui

import (
	"fmt"
	"strings"
)

// InvalidateFlags records which refresh passes an element needs.
type InvalidateFlags uint32

const (
	InvalidateNone    InvalidateFlags = 0
	InvalidateStyle   InvalidateFlags = 1 << 1
	InvalidateLayout  InvalidateFlags = 1 << 2
	InvalidateVisual  InvalidateFlags = 1 << 3
	InvalidateOpening InvalidateFlags = 1 << 4
	InvalidateAll     InvalidateFlags = 0xFFFF
)

var flagNames = []struct {
	flag InvalidateFlags
	name string
}{
	{InvalidateStyle, "style"},
	{InvalidateLayout, "layout"},
	{InvalidateVisual, "visual"},
	{InvalidateOpening, "opening"},
}

// String lists the set flags, e.g. "style|layout".
func (f InvalidateFlags) String() string {
	if f == InvalidateNone {
		return "none"
	}
	if f == InvalidateAll {
		return "all"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// SetInvalidate ORs flags into e and every ancestor, so the frame loop can
// find invalid subtrees from the root. Propagation stops at the first
// ancestor that already carries all of flags.
func (e *Element) SetInvalidate(flags InvalidateFlags) {
	if e == nil {
		panic("flexui: nil element in SetInvalidate")
	}
	e.flags |= flags
	for p := e.parent; p != nil; p = p.parent {
		if p.flags&flags == flags {
			return
		}
		p.flags |= flags
	}
}

// UnsetInvalidate clears flags on e only. Descendants and ancestors keep
// whatever they carry.
func (e *Element) UnsetInvalidate(flags InvalidateFlags) {
	e.flags &^= flags
}

// IsInvalidate reports whether any of flags is set on e.
func (e *Element) IsInvalidate(flags InvalidateFlags) bool {
	return e.flags&flags != 0
}

// Flags returns the element's current invalidation flags.
func (e *Element) Flags() InvalidateFlags {
	return e.flags
}
