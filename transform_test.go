package emblem

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func testStage() *Stage {
	return NewStage(FixedHost{W: 800, H: 600})
}

// --- Affine helpers ---

func TestLocalAffineIdentity(t *testing.T) {
	got := localAffine(Vec2{}, 1)
	assertMatrix(t, "identity", got, identityTransform)
}

func TestLocalAffineTranslateScale(t *testing.T) {
	got := localAffine(Vec2{X: 10, Y: 20}, 0.5)
	assertMatrix(t, "translate+scale", got, [6]float64{0.5, 0, 0, 0.5, 10, 20})
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, identityTransform), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := localAffine(Vec2{X: 10, Y: 20}, 0.5)
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestTransformRectScalesAndMoves(t *testing.T) {
	m := localAffine(Vec2{X: 100, Y: 50}, 2)
	got := transformRect(m, Rect{X: 10, Y: 10, Width: 20, Height: 30})
	assertNear(t, "x", got.X, 120)
	assertNear(t, "y", got.Y, 70)
	assertNear(t, "w", got.Width, 40)
	assertNear(t, "h", got.Height, 60)
}

// --- Transform store ---

func TestOffsetRoundTrip(t *testing.T) {
	s := testStage()
	e := NewElement("a", KindRect)
	s.root.AddChild(e)

	s.SetOffset(e, 12.5, -4)
	got := s.Offset(e)
	if got != (Vec2{X: 12.5, Y: -4}) {
		t.Errorf("Offset = %v, want {12.5 -4}", got)
	}
}

func TestOffsetDefaultsToZero(t *testing.T) {
	s := testStage()
	e := NewElement("a", KindRect)
	if s.Offset(e) != (Vec2{}) {
		t.Errorf("unwritten offset = %v, want zero", s.Offset(e))
	}
}

func TestNudgeOffsetAssociative(t *testing.T) {
	s := testStage()
	a := NewElement("a", KindRect)
	b := NewElement("b", KindRect)

	s.NudgeOffset(a, 3, 4)
	s.NudgeOffset(a, -1, 2.5)
	s.NudgeOffset(b, 2, 6.5)

	if s.Offset(a) != s.Offset(b) {
		t.Errorf("two nudges %v != one combined nudge %v", s.Offset(a), s.Offset(b))
	}
	if a.Transform != b.Transform {
		t.Errorf("transform strings diverge: %q vs %q", a.Transform, b.Transform)
	}
}

func TestSetOffsetComposesScale(t *testing.T) {
	s := testStage()
	e := NewElement("a", KindRect)
	s.SetScale(e, 0.5)
	s.SetOffset(e, 10, 20)
	want := "translate(10 20) scale(0.5)"
	if e.Transform != want {
		t.Errorf("Transform = %q, want %q", e.Transform, want)
	}
}

func TestTransformOmitsUnitScale(t *testing.T) {
	s := testStage()
	e := NewElement("a", KindRect)
	s.SetOffset(e, 1, 2)
	want := "translate(1 2)"
	if e.Transform != want {
		t.Errorf("Transform = %q, want %q", e.Transform, want)
	}
}

func TestNilElementNoOps(t *testing.T) {
	s := testStage()
	s.SetOffset(nil, 1, 2)
	s.NudgeOffset(nil, 1, 2)
	s.SetScale(nil, 2)
	if s.Offset(nil) != (Vec2{}) {
		t.Error("nil element offset should be zero")
	}
}

// --- Measurement ---

func TestBBoxNested(t *testing.T) {
	s := testStage()
	g := NewElement("g", KindGroup)
	s.root.AddChild(g)
	e := NewElement("e", KindRect)
	e.Base = Rect{Width: 100, Height: 50}
	g.AddChild(e)

	s.SetOffset(g, 10, 20)
	s.SetScale(g, 0.5)
	s.SetOffset(e, 4, 4)

	box := s.BBox(e)
	assertNear(t, "x", box.X, 12)
	assertNear(t, "y", box.Y, 22)
	assertNear(t, "w", box.Width, 50)
	assertNear(t, "h", box.Height, 25)
}

func TestRootToLocalInvertsLocalToRoot(t *testing.T) {
	s := testStage()
	g := NewElement("g", KindGroup)
	s.root.AddChild(g)
	s.SetOffset(g, 33, -7)
	s.SetScale(g, 2)

	rx, ry := s.LocalToRoot(g, 5, 9)
	lx, ly := s.RootToLocal(g, rx, ry)
	assertNear(t, "lx", lx, 5)
	assertNear(t, "ly", ly, 9)
}

func TestGroupBBoxIsChildUnion(t *testing.T) {
	s := testStage()
	g := NewElement("g", KindGroup)
	s.root.AddChild(g)
	a := NewElement("a", KindRect)
	a.Base = Rect{Width: 10, Height: 10}
	b := NewElement("b", KindRect)
	b.Base = Rect{X: 30, Y: 40, Width: 10, Height: 10}
	g.AddChild(a)
	g.AddChild(b)

	box := s.BBox(g)
	assertNear(t, "x", box.X, 0)
	assertNear(t, "y", box.Y, 0)
	assertNear(t, "w", box.Width, 40)
	assertNear(t, "h", box.Height, 50)
}
