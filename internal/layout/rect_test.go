package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() = %+v, want {5 10 20 15}", r)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_AreaAndEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		area  float64
		empty bool
	}

	tests := map[string]tc{
		"standard rect":   {rect: NewRect(0, 0, 10, 5), area: 50},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"negative height": {rect: NewRect(0, 0, 10, -5), empty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y float64
		want bool
	}

	tests := map[string]tc{
		"inside":           {x: 15, y: 15, want: true},
		"top-left corner":  {x: 10, y: 10, want: true},
		"right edge":       {x: 30, y: 15, want: false},
		"bottom edge":      {x: 15, y: 30, want: false},
		"outside negative": {x: -1, y: 15, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.want {
				t.Errorf("Point.In() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	type tc struct {
		rect   Rect
		edges  Thickness
		inset  Rect
		outset Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:   NewRect(10, 10, 40, 30),
			edges:  ThicknessAll(5),
			inset:  NewRect(15, 15, 30, 20),
			outset: NewRect(5, 5, 50, 40),
		},
		"trbl": {
			rect:   NewRect(0, 0, 100, 50),
			edges:  ThicknessTRBL(1, 2, 3, 4),
			inset:  NewRect(4, 1, 94, 46),
			outset: NewRect(-4, -1, 106, 54),
		},
		"inset larger than rect clamps to zero": {
			rect:   NewRect(0, 0, 6, 4),
			edges:  ThicknessAll(5),
			inset:  NewRect(5, 5, 0, 0),
			outset: NewRect(-5, -5, 16, 14),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.inset {
				t.Errorf("Inset() = %+v, want %+v", got, tt.inset)
			}
			if got := tt.rect.Outset(tt.edges); got != tt.outset {
				t.Errorf("Outset() = %+v, want %+v", got, tt.outset)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	got := NewRect(10, 20, 30, 40).Translate(-5, 15)
	want := NewRect(5, 35, 30, 40)
	if got != want {
		t.Errorf("Translate(-5, 15) = %+v, want %+v", got, want)
	}
}

func TestSize_DeflateInflate(t *testing.T) {
	s := Size{Width: 20, Height: 10}
	pad := ThicknessSymmetric(2, 3)

	if got := s.Deflate(pad); got != (Size{Width: 14, Height: 6}) {
		t.Errorf("Deflate() = %+v, want {14 6}", got)
	}
	if got := s.Inflate(pad); got != (Size{Width: 26, Height: 14}) {
		t.Errorf("Inflate() = %+v, want {26 14}", got)
	}
	if got := s.Deflate(ThicknessAll(50)); !got.IsZero() {
		t.Errorf("Deflate() past zero = %+v, want zero size", got)
	}
}
