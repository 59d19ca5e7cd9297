// Package headless provides an off-screen host for flexui scenes: a fixed
// surface and windows that record what the scene pushes to them.
package headless

import (
	"sort"

	flexui "github.com/grindlemire/go-flexui"
)

// Surface is a fixed-size render surface.
type Surface struct {
	Width, Height float64
}

// Bounds implements flexui.Surface.
func (s Surface) Bounds() flexui.Rect {
	return flexui.NewRect(0, 0, s.Width, s.Height)
}

// Window is a selectable host window. Its command lines are stacked rows
// of a fixed height across the content box of the bound element.
type Window struct {
	class      string
	lineHeight float64
	element    *flexui.Element

	rect    flexui.Rect
	style   flexui.ActualStyle
	updates int
}

var _ flexui.Selectable = (*Window)(nil)

// NewWindow creates a window for class.
func NewWindow(class string, lineHeight float64) *Window {
	return &Window{class: class, lineHeight: lineHeight, style: flexui.DefaultActualStyle()}
}

// ClassName implements flexui.HostWindow.
func (w *Window) ClassName() string { return w.class }

// SetRect implements flexui.HostWindow.
func (w *Window) SetRect(r flexui.Rect) {
	w.rect = r
	w.updates++
}

// ApplyStyle implements flexui.HostWindow.
func (w *Window) ApplyStyle(s flexui.ActualStyle) { w.style = s }

// ItemLineRect returns the rect of command line index in window-local
// space. The width is the content width the bound element was measured
// with, so it is valid during the layout pass that arranges the lines.
func (w *Window) ItemLineRect(index int) flexui.Rect {
	var left, top, width float64
	if w.element != nil {
		s := w.element.ActualStyle()
		left, top = s.Padding.Left, s.Padding.Top
		width = w.element.Constraint().Width
		if w.element.ExplicitWidth() {
			width = min(width, s.Width-s.Padding.Horizontal())
		}
	}
	return flexui.NewRect(left, top+float64(index)*w.lineHeight, max(width, 0), w.lineHeight)
}

// Rect returns the last screen rect pushed by the scene.
func (w *Window) Rect() flexui.Rect { return w.rect }

// Style returns the last style pushed by the scene.
func (w *Window) Style() flexui.ActualStyle { return w.style }

// Updates returns how many times the scene pushed a rect.
func (w *Window) Updates() int { return w.updates }

// Host owns the surface and the windows of one scene.
type Host struct {
	surface    Surface
	lineHeight float64
	windows    map[string]*Window
}

// NewHost creates a host with a width x height surface.
func NewHost(width, height, lineHeight float64) *Host {
	return &Host{
		surface:    Surface{Width: width, Height: height},
		lineHeight: lineHeight,
		windows:    make(map[string]*Window),
	}
}

// Surface returns the host surface.
func (h *Host) Surface() Surface { return h.surface }

// Attach binds the surface to s and opens a window for every listed class.
// With no classes, every window element of the scene gets one. It returns
// the classes that had no matching element.
func (h *Host) Attach(s *flexui.Scene, classes ...string) []string {
	s.AttachSurface(h.surface)

	if len(classes) == 0 {
		s.Root().Walk(func(e *flexui.Element) bool {
			if e.Kind() == flexui.KindWindow && e.Class() != "" {
				classes = append(classes, e.Class())
			}
			return true
		})
	}

	var missing []string
	for _, class := range classes {
		if _, ok := h.windows[class]; ok {
			continue
		}
		w := NewWindow(class, h.lineHeight)
		w.element = s.Find(class)
		if !s.AttachWindow(w) {
			missing = append(missing, class)
			continue
		}
		h.windows[class] = w
	}
	return missing
}

// Window returns the window opened for class.
func (h *Host) Window(class string) (*Window, bool) {
	w, ok := h.windows[class]
	return w, ok
}

// Classes returns the classes with open windows, sorted.
func (h *Host) Classes() []string {
	out := make([]string, 0, len(h.windows))
	for c := range h.windows {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
