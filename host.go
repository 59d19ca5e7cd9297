package flexui

// Surface is the renderable area a scene draws on. Its bounds are the root
// layout constraint. Without a surface, property changes are applied
// immediately instead of animating.
type Surface interface {
	Bounds() Rect
}

// HostWindow is a window created and drawn by the host. The scene binds it
// to the element with the same class and pushes geometry and surface
// properties to it.
type HostWindow interface {
	ClassName() string
	SetRect(r Rect)
	ApplyStyle(s ActualStyle)
}

// Selectable is a host window that lays out command lines.
type Selectable interface {
	HostWindow
	ItemLineRect(index int) Rect
}

// PushRectToHost sends the element's screen rect and style to its bound
// host window. It does nothing when no window is bound.
func (e *Element) PushRectToHost() {
	if e.window == nil {
		return
	}
	e.window.SetRect(e.ScreenRect())
	e.window.ApplyStyle(e.style)
}

// BindWindow attaches w to e. Passing nil detaches the current window.
func (e *Element) BindWindow(w HostWindow) {
	e.window = w
	e.SetInvalidate(InvalidateLayout | InvalidateVisual)
}
