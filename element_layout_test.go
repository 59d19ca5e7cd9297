package flexui

import (
	"testing"

	"github.com/grindlemire/go-flexui/internal/design"
)

func stackDesign(o Orientation) *design.Node {
	n := node(design.KindStack, sized(5, 10), sized(8, 20), sized(6, 30))
	n.Orientation = o
	return n
}

func rects(e *Element) []Rect {
	out := make([]Rect, len(e.Children()))
	for i, c := range e.Children() {
		out[i] = c.ActualRect()
	}
	return out
}

func equalRects(a, b []Rect) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestElement_StackMeasure(t *testing.T) {
	type tc struct {
		orientation Orientation
		want        Size
	}

	tests := map[string]tc{
		"vertical":           {orientation: Vertical, want: Size{Width: 8, Height: 60}},
		"reverse vertical":   {orientation: ReverseVertical, want: Size{Width: 8, Height: 60}},
		"horizontal":         {orientation: Horizontal, want: Size{Width: 19, Height: 30}},
		"reverse horizontal": {orientation: ReverseHorizontal, want: Size{Width: 19, Height: 30}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(nil)
			root := NewElement(stackDesign(tt.orientation))
			applyStyles(ctx, root)
			root.Measure(ctx, Size{Width: 100, Height: 100})
			if got := root.DesiredSize(); got != tt.want {
				t.Errorf("DesiredSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestElement_StackArrange(t *testing.T) {
	type tc struct {
		orientation Orientation
		want        []Rect
	}

	tests := map[string]tc{
		"vertical": {
			orientation: Vertical,
			want:        []Rect{NewRect(0, 0, 5, 10), NewRect(0, 10, 8, 20), NewRect(0, 30, 6, 30)},
		},
		"reverse vertical packs from the bottom": {
			orientation: ReverseVertical,
			want:        []Rect{NewRect(0, 90, 5, 10), NewRect(0, 70, 8, 20), NewRect(0, 40, 6, 30)},
		},
		"horizontal": {
			orientation: Horizontal,
			want:        []Rect{NewRect(0, 0, 5, 10), NewRect(5, 0, 8, 20), NewRect(13, 0, 6, 30)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(nil)
			root := NewElement(stackDesign(tt.orientation))
			layoutAt(ctx, root, NewRect(0, 0, 100, 100))
			if got := rects(root); !equalRects(got, tt.want) {
				t.Errorf("child rects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElement_DisabledChildrenSkipped(t *testing.T) {
	ctx := NewContext(nil)
	root := NewElement(stackDesign(Vertical))
	root.Children()[1].SetLayoutEnabled(false)

	layoutAt(ctx, root, NewRect(0, 0, 100, 100))

	if got, want := root.DesiredSize(), (Size{Width: 6, Height: 40}); got != want {
		t.Errorf("DesiredSize() = %+v, want %+v", got, want)
	}
	if got, want := root.Children()[2].ActualRect(), NewRect(0, 10, 6, 30); got != want {
		t.Errorf("third child rect = %+v, want %+v", got, want)
	}
	if root.Children()[1].Arranged() {
		t.Error("disabled child was arranged")
	}
}

func TestElement_LayoutFilter(t *testing.T) {
	ctx := NewContext(nil)
	d := stackDesign(Vertical)
	d.Children[0].Class = "Hidden"
	root := NewElement(d)
	ctx.SetLayoutFilter(func(e *Element) bool { return e.Class() != "Hidden" })

	layoutAt(ctx, root, NewRect(0, 0, 100, 100))

	if got, want := root.DesiredSize(), (Size{Width: 8, Height: 50}); got != want {
		t.Errorf("DesiredSize() = %+v, want %+v", got, want)
	}
	if got, want := root.Children()[1].ActualRect(), NewRect(0, 0, 8, 20); got != want {
		t.Errorf("second child rect = %+v, want %+v", got, want)
	}
}

func TestElement_Accordion(t *testing.T) {
	ctx := NewContext(nil)
	d := node(design.KindAccordion, sized(15, 0), sized(0, 0), sized(25, 0))
	d.Orientation = Horizontal
	root := NewElement(d)

	layoutAt(ctx, root, NewRect(0, 0, 60, 10))

	want := []Rect{NewRect(0, 0, 15, 10), NewRect(15, 0, 20, 10), NewRect(35, 0, 25, 10)}
	if got := rects(root); !equalRects(got, want) {
		t.Errorf("child rects = %v, want %v", got, want)
	}
}

func TestElement_AccordionInvalidOrientationPanics(t *testing.T) {
	ctx := NewContext(nil)
	root := NewElement(node(design.KindWindow, sized(10, 10)))
	root.SetPolicy(Accordion{Orientation: ReverseHorizontal})
	applyStyles(ctx, root)

	defer func() {
		if recover() == nil {
			t.Error("Measure() with a reverse accordion did not panic")
		}
	}()
	root.Measure(ctx, Size{Width: 100, Height: 100})
}

func TestElement_MarginPaddingAndScreenRect(t *testing.T) {
	ctx := NewContext(nil)
	d := node(design.KindWindow, node(design.KindText))
	d.Style.MarginTop, d.Style.MarginRight, d.Style.MarginBottom, d.Style.MarginLeft = design.Lit(2), design.Lit(2), design.Lit(2), design.Lit(2)
	d.Style.PaddingTop, d.Style.PaddingRight, d.Style.PaddingBottom, d.Style.PaddingLeft = design.Lit(4), design.Lit(4), design.Lit(4), design.Lit(4)
	root := NewElement(d)

	layoutAt(ctx, root, NewRect(0, 0, 100, 50))

	if got, want := root.ActualRect(), NewRect(2, 2, 96, 46); got != want {
		t.Errorf("root rect = %+v, want %+v", got, want)
	}
	text := root.Children()[0]
	if got, want := text.ActualRect(), NewRect(4, 4, 88, 38); got != want {
		t.Errorf("text rect = %+v, want %+v", got, want)
	}
	if got, want := text.ScreenRect(), NewRect(6, 6, 88, 38); got != want {
		t.Errorf("text ScreenRect() = %+v, want %+v", got, want)
	}
	if got, want := text.Constraint(), (Size{Width: 88, Height: 38}); got != want {
		t.Errorf("leaf constraint = %+v, want %+v", got, want)
	}
	if got, want := root.DesiredSize(), (Size{Width: 12, Height: 12}); got != want {
		t.Errorf("root DesiredSize() = %+v, want %+v", got, want)
	}
}

func TestElement_ExplicitSizeAndOffset(t *testing.T) {
	type tc struct {
		align    Alignment
		wantRect Rect
	}

	tests := map[string]tc{
		"stretch keeps the slot origin": {align: AlignStretch, wantRect: NewRect(10, 20, 40, 30)},
		"center":                        {align: AlignCenter, wantRect: NewRect(40, 55, 40, 30)},
		"bottom right":                  {align: AlignBottomRight, wantRect: NewRect(70, 90, 40, 30)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(nil)
			child := sized(40, 30)
			child.Alignment = tt.align
			child.Style.X = design.Lit(10)
			child.Style.Y = design.Lit(20)
			root := NewElement(node(design.KindWindow, child))

			layoutAt(ctx, root, NewRect(0, 0, 100, 100))

			if got := root.Children()[0].ActualRect(); got != tt.wantRect {
				t.Errorf("child rect = %+v, want %+v", got, tt.wantRect)
			}
		})
	}
}

func TestElement_ComputedSize(t *testing.T) {
	ctx := NewContext(map[string]float64{VarScreenWidth: 816})
	d := node(design.KindWindow)
	d.Style.Width = design.Ref(VarScreenWidth, -40)
	root := NewElement(node(design.KindScene, d))

	layoutAt(ctx, root, NewRect(0, 0, 816, 624))

	if got := root.Children()[0].ActualRect().Width; got != 776 {
		t.Errorf("width = %v, want 776", got)
	}
}

func TestElement_ListItemUsesHostLineRect(t *testing.T) {
	ctx := NewContext(nil)
	items := node(design.KindStack,
		&design.Node{Kind: design.KindListItem, Text: "New Game", ItemIndex: 0},
		&design.Node{Kind: design.KindListItem, Text: "Continue", ItemIndex: 1},
	)
	win := node(design.KindWindow, items)
	win.Class = "Window_TitleCommand"
	win.Style.X = design.Lit(100)
	win.Style.Y = design.Lit(50)
	root := NewElement(node(design.KindScene, win))

	host := &testSelectable{testWindow: testWindow{class: "Window_TitleCommand"}, lineHeight: 36, lineWidth: 200}
	root.Find("Window_TitleCommand").BindWindow(host)

	layoutAt(ctx, root, NewRect(0, 0, 816, 624))

	item := root.Find("Window_TitleCommand").Children()[0].Children()[1]
	label := item.Children()[0]
	if label.Kind() != KindText || label.Text() != "Continue" {
		t.Fatalf("synthesized child = %v %q, want text Continue", label.Kind(), label.Text())
	}
	if got, want := label.ActualRect(), NewRect(4, 40, 200, 36); got != want {
		t.Errorf("label rect = %+v, want %+v", got, want)
	}
	if got, want := label.ScreenRect(), NewRect(104, 90, 200, 36); got != want {
		t.Errorf("label ScreenRect() = %+v, want %+v", got, want)
	}
	if got, want := item.ActualRect(), NewRect(4, 40, 200, 36); got != want {
		t.Errorf("item rect = %+v, want %+v", got, want)
	}
	if got, want := item.ScreenRect(), NewRect(104, 90, 200, 36); got != want {
		t.Errorf("item ScreenRect() = %+v, want %+v", got, want)
	}
	first := item.Parent().Children()[0]
	if got, want := first.ScreenRect(), NewRect(104, 54, 200, 36); got != want {
		t.Errorf("first item ScreenRect() = %+v, want %+v", got, want)
	}
}

func TestElement_ListItemWithoutSelectablePanics(t *testing.T) {
	type tc struct {
		host HostWindow
	}

	tests := map[string]tc{
		"no window":    {host: nil},
		"plain window": {host: &testWindow{class: "W"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(nil)
			win := node(design.KindWindow, &design.Node{Kind: design.KindListItem, Text: "x"})
			root := NewElement(win)
			if tt.host != nil {
				root.BindWindow(tt.host)
			}
			applyStyles(ctx, root)
			root.Measure(ctx, Size{Width: 100, Height: 100})

			defer func() {
				if recover() == nil {
					t.Error("Arrange() did not panic")
				}
			}()
			root.Arrange(ctx, NewRect(0, 0, 100, 100))
		})
	}
}
