package collision

import "testing"

func TestBoundingBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b *BoundingBox
		want bool
	}{
		{"overlapping", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(5, 5, 10, 10), true},
		{"separate", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(20, 0, 10, 10), false},
		{"edge touching", NewBoundingBox(0, 0, 10, 10), NewBoundingBox(10, 0, 10, 10), false},
		{"contained", NewBoundingBox(0, 0, 100, 100), NewBoundingBox(3, 3, 2, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsBox(t *testing.T) {
	arena := NewRect(100, 100, 400, 240)
	if !arena.ContainsBox(NewBoundingBox(300, 220, 10, 10)) {
		t.Error("centre box should be contained")
	}
	if arena.ContainsBox(NewBoundingBox(102, 220, 10, 10)) {
		t.Error("box straddling the left edge should not be contained")
	}
}

func TestRectExpandAndCorners(t *testing.T) {
	r := NewRect(0, 0, 10, 20).Expand(5)
	if r.Left != -5 || r.Top != -5 || r.Right() != 15 || r.Bottom() != 25 {
		t.Errorf("Expand produced %+v", r)
	}
	corners := NewRect(0, 0, 10, 20).Corners()
	if len(corners) != 4 || corners[3] != (Point{X: 10, Y: 20}) {
		t.Errorf("Corners = %v", corners)
	}
}

func TestRectClampCenter(t *testing.T) {
	arena := NewRect(0, 0, 100, 100)
	x, y := arena.ClampCenter(-50, 150, 8, 8)
	if x != 8 || y != 92 {
		t.Errorf("ClampCenter = (%v, %v), want (8, 92)", x, y)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(800, 600, 400, 240, 40)
	if r.Left != 200 || r.Top != 140 {
		t.Errorf("CenteredRect = %+v", r)
	}
	if r.MaxDimension() != 400 {
		t.Errorf("MaxDimension = %v", r.MaxDimension())
	}
}
