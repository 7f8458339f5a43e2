package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false},
		{Point{5, 5}, false},
		{Point{1, 3}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v)=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 4, 4}
	c := Rect{4, 0, 2, 2}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c only touch edges and should not intersect")
	}
}

func TestClampInside(t *testing.T) {
	view := Rect{0, 0, 80, 24}
	cases := []struct {
		name string
		in   Rect
		want Point
	}{
		{"inside unchanged", Rect{10, 5, 20, 10}, Point{10, 5}},
		{"past right edge", Rect{70, 5, 20, 10}, Point{60, 5}},
		{"past bottom edge", Rect{10, 20, 20, 10}, Point{10, 14}},
		{"negative origin", Rect{-5, -3, 20, 10}, Point{0, 0}},
		{"wider than view", Rect{10, 0, 100, 10}, Point{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.ClampInside(view).Min()
			if got != tc.want {
				t.Errorf("ClampInside = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestPointDistSq(t *testing.T) {
	if d := (Point{1, 1}).DistSq(Point{4, 5}); d != 25 {
		t.Fatalf("expected 25, got %d", d)
	}
}
