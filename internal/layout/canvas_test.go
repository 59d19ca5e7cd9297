package layout

import "testing"

func TestMeasureCanvas(t *testing.T) {
	a := newTestNode(10, 40)
	b := newTestNode(30, 20)
	hidden := newTestNode(500, 500)
	hidden.disabled = true

	got := MeasureCanvas(nodes(a, b, hidden), Size{Width: 100, Height: 100})
	if want := (Size{Width: 30, Height: 40}); got != want {
		t.Errorf("MeasureCanvas() = %+v, want %+v", got, want)
	}
	if hidden.measured != 0 {
		t.Errorf("disabled child measured %d times, want 0", hidden.measured)
	}
}

func TestArrangeCanvas(t *testing.T) {
	fill := newTestNode(10, 10)
	corner := newTestNode(20, 10)
	corner.align = AlignBottomLeft

	ArrangeCanvas(nodes(fill, corner), NewRect(0, 0, 200, 100))

	if got := fill.last(); got != NewRect(0, 0, 200, 100) {
		t.Errorf("stretch child = %+v, want full content box", got)
	}
	if got := corner.last(); got != NewRect(0, 90, 20, 10) {
		t.Errorf("bottom-left child = %+v, want {0 90 20 10}", got)
	}
}
