package flexui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/go-flexui/internal/anim"
	"github.com/grindlemire/go-flexui/internal/debug"
	"github.com/grindlemire/go-flexui/internal/design"
)

// Scene owns one visual tree built from a linked design, the context its
// passes run with and the lookup table transitions write through.
// A Scene is driven by a single goroutine.
type Scene struct {
	root      *Element
	elements  map[uint64]*Element
	ctx       *Context
	scheduler *anim.Scheduler
	surface   Surface
	bounds    Rect
	policies  map[string]Policy
	logger    *slog.Logger
	frames    uint64
	closed    bool
}

// NewScene links a copy of d against reg and builds its visual tree.
// reg may be nil when d contains no Parts. Resolution and validation
// errors are returned wrapped.
func NewScene(d *design.Node, reg design.Resolver, opts ...SceneOption) (*Scene, error) {
	if d == nil {
		return nil, fmt.Errorf("flexui: nil scene design")
	}
	s := &Scene{
		elements:  make(map[uint64]*Element),
		ctx:       NewContext(nil),
		scheduler: anim.Default(),
		policies:  make(map[string]Policy),
		logger:    debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("flexui: scene option: %w", err)
		}
	}

	tree := d.Clone()
	if tree.IsPart() {
		if reg == nil {
			return nil, fmt.Errorf("flexui: link scene: %w", &design.ResolutionError{Class: tree.Class, Err: design.ErrUnknownClass})
		}
		var err error
		if tree, err = design.Resolve(tree.Class, reg); err != nil {
			return nil, fmt.Errorf("flexui: link scene: %w", err)
		}
	} else if tree.HasParts() {
		if reg == nil {
			reg = emptyResolver{}
		}
		if err := design.Link(tree, reg); err != nil {
			return nil, fmt.Errorf("flexui: link scene: %w", err)
		}
	}
	if err := design.Validate(tree); err != nil {
		return nil, fmt.Errorf("flexui: validate scene: %w", err)
	}

	s.root = build(tree, nil, s, s.policies)
	s.updateScreenVars()
	s.logger.Debug("scene built", "class", tree.Class, "elements", len(s.elements))
	return s, nil
}

type emptyResolver struct{}

func (emptyResolver) Resolve(string) (*design.Node, bool) { return nil, false }

// Root returns the root element.
func (s *Scene) Root() *Element {
	return s.root
}

// Context returns the context the scene's passes run with.
func (s *Scene) Context() *Context {
	return s.ctx
}

// Scheduler returns the scheduler driving the scene's transitions.
func (s *Scene) Scheduler() *anim.Scheduler {
	return s.scheduler
}

// Element returns the live element with id, or nil once it is destroyed.
func (s *Scene) Element(id uint64) *Element {
	if s == nil {
		return nil
	}
	return s.elements[id]
}

// Find returns the first element whose design class is class.
func (s *Scene) Find(class string) *Element {
	return s.root.Find(class)
}

// Len returns the number of live elements.
func (s *Scene) Len() int {
	return len(s.elements)
}

// Frames returns how many times Update has run.
func (s *Scene) Frames() uint64 {
	return s.frames
}

func (s *Scene) register(e *Element) {
	s.elements[e.id] = e
}

func (s *Scene) unregister(e *Element) {
	delete(s.elements, e.id)
}

// AttachSurface sets the renderable surface. Passing nil detaches it, after
// which property changes apply immediately.
func (s *Scene) AttachSurface(surface Surface) {
	s.surface = surface
	s.updateScreenVars()
	s.root.SetInvalidate(InvalidateLayout)
	s.logger.Debug("surface attached", "bounds", fmt.Sprint(s.Bounds()))
}

// Surface returns the attached surface, or nil.
func (s *Scene) Surface() Surface {
	return s.surface
}

// Bounds returns the root layout area: the surface bounds, or the
// configured bounds while no surface is attached.
func (s *Scene) Bounds() Rect {
	if s.surface != nil {
		return s.surface.Bounds()
	}
	return s.bounds
}

func (s *Scene) updateScreenVars() {
	b := s.Bounds()
	s.ctx.SetVar(VarScreenWidth, b.Width)
	s.ctx.SetVar(VarScreenHeight, b.Height)
}

// AttachWindow binds w to the element whose class matches w.ClassName().
// It reports whether such an element exists.
func (s *Scene) AttachWindow(w HostWindow) bool {
	e := s.root.Find(w.ClassName())
	if e == nil || e.destroyed {
		s.logger.Debug("no element for host window", "class", w.ClassName())
		return false
	}
	e.BindWindow(w)
	s.logger.Debug("host window attached", "class", w.ClassName(), "id", e.id)
	return true
}

// InitialRect returns the last arranged screen rect of the element with
// class, for constructing its host window.
func (s *Scene) InitialRect(class string) (Rect, bool) {
	e := s.root.Find(class)
	if e == nil || !e.arranged {
		return Rect{}, false
	}
	return e.ScreenRect(), true
}

// Update advances the scene one frame of length dt: the style pass, the
// layout pass when the tree needs it, the visual pass, and finally the
// scheduler.
func (s *Scene) Update(dt time.Duration) {
	if s.closed {
		return
	}
	s.frames++
	s.updateScreenVars()

	s.stylePass(s.root)
	if s.root.IsInvalidate(InvalidateLayout) {
		s.layoutPass()
	}
	s.visualPass(s.root)
	s.scheduler.Advance(dt)
}

// stylePass visits style-invalid subtrees top-down.
func (s *Scene) stylePass(e *Element) {
	if e.destroyed || !e.IsInvalidate(InvalidateStyle) {
		return
	}
	e.UpdateStyle(s.ctx)
	for _, child := range e.children {
		s.stylePass(child)
	}
}

// layoutPass measures and arranges the whole tree over the scene bounds.
// Every element it reaches is left visual-invalid so the host sees the new
// geometry.
func (s *Scene) layoutPass() {
	b := s.Bounds()
	s.root.Measure(s.ctx, b.Size())
	s.root.Arrange(s.ctx, b)
	s.root.Walk(func(e *Element) bool {
		e.flags = e.flags&^InvalidateLayout | InvalidateVisual
		return true
	})
}

// visualPass pushes visual-invalid elements to their host windows.
func (s *Scene) visualPass(e *Element) {
	if e.destroyed || !e.IsInvalidate(InvalidateVisual) {
		return
	}
	e.UnsetInvalidate(InvalidateVisual)
	e.PushRectToHost()
	for _, child := range e.children {
		s.visualPass(child)
	}
}

// Close destroys the visual tree. Pending transitions never fire again.
// Close is idempotent.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.root.Destroy()
	s.logger.Debug("scene closed", "frames", s.frames)
}
