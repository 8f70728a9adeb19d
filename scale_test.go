package emblem

import (
	"math"
	"testing"
	"time"
)

// scaleFixture builds a stage with three simple groups for controller tests.
func scaleFixture() (*Stage, *Scheduler, *ScaleController, []*Group) {
	stage := testStage()
	sched := NewScheduler()

	var groups []*Group
	for i := 0; i < groupCount; i++ {
		root := NewElement("g", KindGroup)
		stage.root.AddChild(root)
		body := NewElement("body", KindRect)
		body.Base = Rect{Width: 100, Height: 100}
		root.AddChild(body)
		stage.SetOffset(root, float64(100+i*200), 150)
		groups = append(groups, &Group{ID: GroupID(i), Root: root, Body: body})
	}

	return stage, sched, NewScaleController(stage, sched, groups), groups
}

func centers(stage *Stage, groups []*Group) [groupCount]Vec2 {
	var out [groupCount]Vec2
	for i, g := range groups {
		out[i] = stage.Center(g.Root)
	}
	return out
}

func TestApplyScalePreservesCenters(t *testing.T) {
	stage, _, ctrl, groups := scaleFixture()

	before := centers(stage, groups)
	ctrl.ApplyScale(CompactScale)
	after := centers(stage, groups)

	for i := range before {
		assertNear(t, "center.X", after[i].X, before[i].X)
		assertNear(t, "center.Y", after[i].Y, before[i].Y)
	}
	for _, g := range groups {
		if g.Root.Scale() != CompactScale {
			t.Errorf("group scale = %v, want %v", g.Root.Scale(), CompactScale)
		}
	}
	if ctrl.Scale() != CompactScale {
		t.Errorf("committed scale = %v, want %v", ctrl.Scale(), CompactScale)
	}
}

func TestApplyScaleShrinksBox(t *testing.T) {
	stage, _, ctrl, groups := scaleFixture()

	ctrl.ApplyScale(0.5)
	box := stage.BBox(groups[0].Root)
	assertNear(t, "width", box.Width, 50)
	assertNear(t, "height", box.Height, 50)
}

func TestApplyScaleNoOpWithinEpsilon(t *testing.T) {
	stage, _, ctrl, groups := scaleFixture()
	ctrl.ApplyScale(0.5)
	transform := groups[0].Root.Transform

	ctrl.ApplyScale(0.5 + ScaleEpsilon/2)
	if groups[0].Root.Transform != transform {
		t.Error("scale within epsilon must not rewrite the transform")
	}
	_ = stage
}

func TestAnimateScaleCancellation(t *testing.T) {
	stage, sched, ctrl, groups := scaleFixture()

	// Slow animation A toward 0.5...
	futA := ctrl.AnimateScale(0.5, TweenOpts{Duration: time.Second})
	sched.StepFrames(6, 1.0/60)
	if futA.Done() {
		t.Fatal("A resolved prematurely")
	}

	// ...superseded by fast animation B toward 0.8.
	futB := ctrl.AnimateScale(0.8, TweenOpts{Duration: 50 * time.Millisecond})
	if !futA.Done() {
		t.Fatal("cancelled animation's future must resolve, not hang")
	}

	sched.StepFrames(10, 1.0/60)
	if !futB.Done() {
		t.Fatal("B did not resolve")
	}
	if ctrl.Scale() != 0.8 {
		t.Errorf("committed scale = %v, want B's target 0.8", ctrl.Scale())
	}
	for _, g := range groups {
		if math.Abs(g.Root.Scale()-0.8) > epsilon {
			t.Errorf("applied scale = %v, want 0.8", g.Root.Scale())
		}
	}
	_ = stage
}

func TestAnimateScalePreservesCentersMidFlight(t *testing.T) {
	stage, sched, ctrl, groups := scaleFixture()
	before := centers(stage, groups)

	ctrl.AnimateScale(0.5, TweenOpts{Duration: 200 * time.Millisecond})
	sched.StepFrames(5, 1.0/60)

	// Intermediate frames must compensate too, not just the endpoints.
	mid := centers(stage, groups)
	for i := range before {
		assertNear(t, "mid center.X", mid[i].X, before[i].X)
		assertNear(t, "mid center.Y", mid[i].Y, before[i].Y)
	}
	if groups[0].Root.Scale() == 1 || groups[0].Root.Scale() == 0.5 {
		t.Fatalf("expected an intermediate scale, got %v", groups[0].Root.Scale())
	}
}

func TestAnimateScaleCompletes(t *testing.T) {
	stage, sched, ctrl, groups := scaleFixture()
	before := centers(stage, groups)

	fut := ctrl.AnimateScale(0.5, TweenOpts{Duration: 100 * time.Millisecond})
	sched.StepFrames(30, 1.0/60)

	if !fut.Done() {
		t.Fatal("scale animation did not resolve")
	}
	after := centers(stage, groups)
	for i := range before {
		assertNear(t, "center.X", after[i].X, before[i].X)
		assertNear(t, "center.Y", after[i].Y, before[i].Y)
	}
	if ctrl.Scale() != 0.5 {
		t.Errorf("committed scale = %v, want 0.5", ctrl.Scale())
	}
}

func TestApplyScaleDuringAnimationWins(t *testing.T) {
	_, sched, ctrl, groups := scaleFixture()

	fut := ctrl.AnimateScale(0.5, TweenOpts{Duration: time.Second})
	sched.StepFrames(3, 1.0/60)
	ctrl.ApplyScale(1)

	if !fut.Done() {
		t.Fatal("superseded animation must resolve")
	}
	sched.StepFrames(10, 1.0/60)
	if ctrl.Scale() != 1 {
		t.Errorf("committed scale = %v, want immediate target 1", ctrl.Scale())
	}
	if groups[0].Root.Scale() != 1 {
		t.Errorf("applied scale = %v, want 1", groups[0].Root.Scale())
	}
}
