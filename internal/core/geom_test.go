package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Normalized length should be 1, got %v", v.Length())
	}

	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Zero vector should normalize to itself, got %v", got)
	}
}

func TestRotate(t *testing.T) {
	up := Vec2{X: 0, Y: -1}

	if got := up.Rotate(90); !vecAlmostEqual(got, Vec2{X: 1, Y: 0}) {
		t.Errorf("90 degrees from up should point right, got %v", got)
	}
	if got := up.Rotate(180); !vecAlmostEqual(got, Vec2{X: 0, Y: 1}) {
		t.Errorf("180 degrees from up should point down, got %v", got)
	}
	if got := up.Rotate(-90); !vecAlmostEqual(got, Vec2{X: -1, Y: 0}) {
		t.Errorf("-90 degrees from up should point left, got %v", got)
	}
	if got := up.Rotate(360); !vecAlmostEqual(got, up) {
		t.Errorf("Full rotation should be identity, got %v", got)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec2{X: 3, Y: 7}
	for _, deg := range []float64{13, 90, 181, 270, 359.5} {
		if got := v.Rotate(deg).Length(); !almostEqual(got, v.Length()) {
			t.Errorf("Rotation by %v changed length: %v vs %v", deg, got, v.Length())
		}
	}
}

func TestForward(t *testing.T) {
	if got := Forward(0); !vecAlmostEqual(got, Vec2{X: 0, Y: -1}) {
		t.Errorf("Rotation 0 should face up, got %v", got)
	}
	if got := Forward(90); !vecAlmostEqual(got, Vec2{X: 1, Y: 0}) {
		t.Errorf("Rotation 90 should face right, got %v", got)
	}
	if got := Forward(270); !vecAlmostEqual(got, Vec2{X: -1, Y: 0}) {
		t.Errorf("Rotation 270 should face left, got %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{370, 10},
		{-20, 340},
		{-360, 0},
		{725, 5},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); !almostEqual(got, c.want) {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestWrap(t *testing.T) {
	const w, h, r = 80, 24, 2

	// In-bounds positions are untouched.
	p := Vec2{X: 40, Y: 12}
	if got := Wrap(p, w, h, r); got != p {
		t.Errorf("In-bounds position should not move, got %v", got)
	}

	// Past each edge by more than the radius relocates to the far side.
	if got := Wrap(Vec2{X: -3, Y: 12}, w, h, r); got.X != w+r {
		t.Errorf("Left exit should wrap to right, got %v", got)
	}
	if got := Wrap(Vec2{X: 83, Y: 12}, w, h, r); got.X != -r {
		t.Errorf("Right exit should wrap to left, got %v", got)
	}
	if got := Wrap(Vec2{X: 40, Y: -3}, w, h, r); got.Y != h+r {
		t.Errorf("Top exit should wrap to bottom, got %v", got)
	}
	if got := Wrap(Vec2{X: 40, Y: 27}, w, h, r); got.Y != -r {
		t.Errorf("Bottom exit should wrap to top, got %v", got)
	}

	// Partially off-screen within the radius margin stays put.
	edge := Vec2{X: -1, Y: 12}
	if got := Wrap(edge, w, h, r); got != edge {
		t.Errorf("Position within radius margin should not wrap, got %v", got)
	}
}

func TestWrapIdempotent(t *testing.T) {
	const w, h, r = 80, 24, 2
	once := Wrap(Vec2{X: -5, Y: 30}, w, h, r)
	twice := Wrap(once, w, h, r)
	if once != twice {
		t.Errorf("Wrapping a wrapped position should be stable: %v vs %v", once, twice)
	}
}

func TestCirclesOverlap(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 5, Y: 0}

	if !CirclesOverlap(a, 3, b, 3) {
		t.Error("Intersecting circles should overlap")
	}
	if !CirclesOverlap(a, 2, b, 3) {
		t.Error("Exactly touching circles should overlap")
	}
	if CirclesOverlap(a, 2, b, 2) {
		t.Error("Separated circles should not overlap")
	}

	// Symmetry.
	if CirclesOverlap(a, 3, b, 3) != CirclesOverlap(b, 3, a, 3) {
		t.Error("Overlap should be symmetric")
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("In-range value should pass through, got %v", got)
	}
	if got := ClampF(-5, 0, 10); got != 0 {
		t.Errorf("Below-range value should clamp to min, got %v", got)
	}
	if got := ClampF(15, 0, 10); got != 10 {
		t.Errorf("Above-range value should clamp to max, got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp midpoint: got %v", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp start: got %v", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp end: got %v", got)
	}
}
