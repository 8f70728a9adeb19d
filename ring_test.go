package emblem

import (
	"math"
	"testing"
)

func ringCenter(r *Ring, i int) Vec2 {
	return Vec2{
		X: r.Offsets[i].X + r.Sizes[i]/2,
		Y: r.Offsets[i].Y + r.Sizes[i]/2,
	}
}

func TestRingAdjacentTangency(t *testing.T) {
	for _, base := range []float64{-90, 0, 37.5, 180} {
		cfg := DefaultConfig().Ring
		cfg.BaseAngleDeg = base
		r := NewRing(cfg)
		r.UpdateSizes(1600, 2000) // ratio 1: exact desktop sizes
		r.UpdateGeometry()

		for i := 0; i < ringSatellites-1; i++ {
			a := ringCenter(r, i)
			b := ringCenter(r, i+1)
			dist := math.Hypot(b.X-a.X, b.Y-a.Y)
			want := r.Sizes[i]/2 + r.Sizes[i+1]/2 - cfg.Kiss
			assertNear(t, "tangency distance", dist, want)
		}
	}
}

func TestRingSatelliteRadii(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)
	r.UpdateSizes(1600, 2000)
	r.UpdateGeometry()

	for i := range r.Radii {
		want := cfg.CenterMax/2 + r.Sizes[i]/2 - cfg.Kiss
		assertNear(t, "radius", r.Radii[i], want)
	}
}

func TestRingExactSizesAtThresholds(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)

	r.UpdateSizes(cfg.MaxWidth+500, 5000)
	assertNear(t, "center at max", r.CenterSize, cfg.CenterMax)
	for i := range r.Sizes {
		assertNear(t, "satellite at max", r.Sizes[i], cfg.SatelliteMax[i])
	}

	r.UpdateSizes(cfg.MinWidth-100, 5000)
	assertNear(t, "center at min", r.CenterSize, cfg.CenterMin)
	for i := range r.Sizes {
		assertNear(t, "satellite at min", r.Sizes[i], cfg.SatelliteMin[i])
	}
}

func TestRingLinearInterpolationBetweenThresholds(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)

	mid := (cfg.MinWidth + cfg.MaxWidth) / 2
	r.UpdateSizes(mid, 5000)
	assertNear(t, "center midpoint", r.CenterSize, (cfg.CenterMin+cfg.CenterMax)/2)
	for i := range r.Sizes {
		assertNear(t, "satellite midpoint", r.Sizes[i], (cfg.SatelliteMin[i]+cfg.SatelliteMax[i])/2)
	}
}

func TestRingUpdateSizesIdempotent(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)

	if !r.UpdateSizes(800, 900) {
		t.Fatal("first update should report a change")
	}
	sizes := r.Sizes
	center := r.CenterSize
	offsets := r.Offsets

	if r.UpdateSizes(800, 900) {
		t.Fatal("unchanged viewport should be a no-op")
	}
	if r.Sizes != sizes || r.CenterSize != center || r.Offsets != offsets {
		t.Error("no-op update altered written values")
	}
}

func TestRingHeightCapsEffectiveWidth(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)

	// A wide but very short viewport: height*factor governs.
	r.UpdateSizes(5000, 400)
	want := lerp(cfg.CenterMin, cfg.CenterMax,
		(400*cfg.HeightFactor-cfg.MinWidth)/(cfg.MaxWidth-cfg.MinWidth))
	assertNear(t, "height-capped center", r.CenterSize, want)
}

func TestRingAnglesAccumulateFromBase(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)
	r.UpdateSizes(1600, 2000)
	r.UpdateGeometry()

	assertNear(t, "first angle", r.Angles[0], cfg.BaseAngle())
	for i := 1; i < ringSatellites; i++ {
		if r.Angles[i] <= r.Angles[i-1] {
			t.Errorf("angles must strictly increase: a[%d]=%v <= a[%d]=%v",
				i, r.Angles[i], i-1, r.Angles[i-1])
		}
	}
}

func TestRingSpringConvergesToTargets(t *testing.T) {
	cfg := DefaultConfig().Ring
	r := NewRing(cfg)
	r.EnableSpringSmoothing(60, 6.0, 1.0)

	r.UpdateSizes(cfg.MinWidth, 5000)
	if r.CenterSize == cfg.CenterMin {
		t.Fatal("spring mode should not snap sizes immediately")
	}

	for i := 0; i < 600; i++ {
		if !r.StepSpring() {
			break
		}
	}
	assertNear(t, "spring-settled center", r.CenterSize, cfg.CenterMin)
	for i := range r.Sizes {
		assertNear(t, "spring-settled satellite", r.Sizes[i], cfg.SatelliteMin[i])
	}
}

func TestRingWritesAttachedElements(t *testing.T) {
	stage := testStage()
	ringRoot := NewElement("ring", KindGroup)
	stage.root.AddChild(ringRoot)
	center := NewElement("c", KindCircle)
	ringRoot.AddChild(center)
	var sats [ringSatellites]*Element
	for i := range sats {
		sats[i] = NewElement("s", KindCircle)
		ringRoot.AddChild(sats[i])
	}

	cfg := DefaultConfig().Ring
	r := NewRing(cfg)
	r.Attach(stage, center, sats)
	r.UpdateSizes(1600, 2000)

	assertNear(t, "center base width", center.Base.Width, cfg.CenterMax)
	for i, sat := range sats {
		assertNear(t, "satellite base width", sat.Base.Width, cfg.SatelliteMax[i])
		off := stage.Offset(sat)
		assertNear(t, "satellite offset.X", off.X, r.Offsets[i].X)
		assertNear(t, "satellite offset.Y", off.Y, r.Offsets[i].Y)
	}
}
