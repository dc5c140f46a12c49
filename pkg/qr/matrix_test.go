package qr

import "testing"

func TestGrid(t *testing.T) {
	g := NewGrid(3).Set(1, 2, true).Set(5, 5, true)

	if g.Size() != 3 {
		t.Errorf("Size() = %d, want 3", g.Size())
	}
	if !g.Module(1, 2) {
		t.Error("Module(1, 2) = false, want true")
	}
	if g.Module(2, 1) {
		t.Error("Module(2, 1) = true, want false")
	}
	if g.Module(-1, 0) || g.Module(0, 3) {
		t.Error("out-of-range Module should be false")
	}
	if Count(g) != 1 {
		t.Errorf("Count() = %d, want 1", Count(g))
	}
}

func TestBitmapBounds(t *testing.T) {
	b := Bitmap{
		{true, false},
		{false, true},
	}
	if b.Size() != 2 {
		t.Errorf("Size() = %d, want 2", b.Size())
	}
	if !b.Module(1, 1) || b.Module(1, 0) {
		t.Error("Module returned wrong values")
	}
	if b.Module(2, 0) || b.Module(0, -1) {
		t.Error("out-of-range Module should be false")
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{20, 20}, true},
		{Point{21, 0}, false},
		{Point{0, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.p.In(21); got != tt.want {
			t.Errorf("%v.In(21) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
