package layout

// testNode is a minimal Node implementation for policy tests.
type testNode struct {
	desired    Size
	disabled   bool
	align      Alignment
	measured   int
	constraint Size
	arranged   []Rect
}

func newTestNode(width, height float64) *testNode {
	return &testNode{desired: Size{Width: width, Height: height}}
}

func (n *testNode) Measure(constraint Size) {
	n.measured++
	n.constraint = constraint
}

func (n *testNode) DesiredSize() Size { return n.desired }

func (n *testNode) Arrange(area Rect) Rect {
	n.arranged = append(n.arranged, area)
	return area
}

func (n *testNode) LayoutEnabled() bool { return !n.disabled }

func (n *testNode) Alignment() Alignment { return n.align }

// last returns the most recent arranged rect.
func (n *testNode) last() Rect {
	if len(n.arranged) == 0 {
		return Rect{}
	}
	return n.arranged[len(n.arranged)-1]
}

func nodes(ns ...*testNode) []Node {
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}
