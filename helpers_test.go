package flexui

import (
	"time"

	"github.com/grindlemire/go-flexui/internal/anim"
	"github.com/grindlemire/go-flexui/internal/design"
)

// testSurface is a fixed-size renderable surface.
type testSurface struct {
	bounds Rect
}

func (s testSurface) Bounds() Rect { return s.bounds }

// testWindow records what the scene pushes to it.
type testWindow struct {
	class  string
	rects  []Rect
	styles []ActualStyle
}

func (w *testWindow) ClassName() string { return w.class }
func (w *testWindow) SetRect(r Rect) { w.rects = append(w.rects, r) }
func (w *testWindow) ApplyStyle(s ActualStyle) { w.styles = append(w.styles, s) }
func (w *testWindow) lastRect() Rect { return w.rects[len(w.rects)-1] }
func (w *testWindow) lastStyle() ActualStyle { return w.styles[len(w.styles)-1] }

// testSelectable is a host window with fixed-height command lines.
type testSelectable struct {
	testWindow
	lineHeight float64
	lineWidth  float64
}

func (w *testSelectable) ItemLineRect(index int) Rect {
	return NewRect(4, 4+float64(index)*w.lineHeight, w.lineWidth, w.lineHeight)
}

var screen = NewRect(0, 0, 816, 624)

const frame = 50 * time.Millisecond

func sized(w, h float64) *design.Node {
	n := &design.Node{}
	if w > 0 {
		n.Style.Width = design.Lit(w)
	}
	if h > 0 {
		n.Style.Height = design.Lit(h)
	}
	return n
}

func node(kind design.Kind, children ...*design.Node) *design.Node {
	return (&design.Node{Kind: kind}).Append(children...)
}

// applyStyles runs the style pass over a standalone tree.
func applyStyles(ctx *Context, root *Element) {
	root.Walk(func(e *Element) bool {
		e.UpdateStyle(ctx)
		return true
	})
}

// layoutAt measures and arranges a standalone tree over area.
func layoutAt(ctx *Context, root *Element, area Rect) {
	applyStyles(ctx, root)
	root.Measure(ctx, area.Size())
	root.Arrange(ctx, area)
}

// newTestScene builds a scene on a private scheduler and a screen-sized
// surface.
func newTestScene(t interface{ Fatalf(string, ...any) }, d *design.Node, reg design.Resolver, opts ...SceneOption) (*Scene, *anim.Scheduler) {
	sched := anim.New()
	opts = append([]SceneOption{WithScheduler(sched), WithSurface(testSurface{bounds: screen})}, opts...)
	s, err := NewScene(d, reg, opts...)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	return s, sched
}
