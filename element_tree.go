package flexui

// Children returns the child elements, destroyed ones included.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root returns the topmost ancestor.
func (e *Element) Root() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Find returns the first element in depth-first order whose design class
// is class, or nil.
func (e *Element) Find(class string) *Element {
	if e.design.Class == class {
		return e
	}
	for _, child := range e.children {
		if found := child.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits e and its descendants depth-first. Returning false from fn
// skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// Destroy tears down e and its descendants. Their transitions stop without
// firing again, they leave the scene and no longer take part in layout.
// Destroy is idempotent.
func (e *Element) Destroy() {
	if e.destroyed {
		return
	}
	for _, child := range e.children {
		child.Destroy()
	}
	e.destroyed = true
	e.scheduler().CancelOwner(e.id)
	if e.scene != nil {
		e.scene.unregister(e)
	}
	e.window = nil
	if e.parent != nil && !e.parent.destroyed {
		e.parent.SetInvalidate(InvalidateLayout)
	}
}

// FindRenderableSurface returns the surface property changes animate on,
// or nil when the element is not part of a scene with an attached surface.
func (e *Element) FindRenderableSurface() Surface {
	if e.scene == nil || e.destroyed {
		return nil
	}
	return e.scene.surface
}
