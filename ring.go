package emblem

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// ringSatellites is the fixed number of satellite buttons around the center.
const ringSatellites = 6

// Ring lays out the radial action-button ring: one center element and six
// satellites whose diameters interpolate with viewport size and whose
// angular positions keep adjacent satellites tangent at the configured kiss
// clearance.
//
// Size updates are idempotent: recomputing at an unchanged effective
// viewport leaves every written value untouched (guarded by the stored last
// interpolation ratio). Live resizes can optionally glide through a spring
// instead of snapping.
type Ring struct {
	cfg RingConfig

	// Optional element binding. When attached, geometry updates write the
	// elements' base boxes and offsets.
	stage  *Stage
	center *Element
	sats   [ringSatellites]*Element

	// lastRatio guards idempotence; -1 until the first update.
	lastRatio float64

	// CenterSize and Sizes are the displayed diameters. With spring
	// smoothing enabled they trail the interpolation targets.
	CenterSize float64
	Sizes      [ringSatellites]float64

	targetCenter float64
	targetSizes  [ringSatellites]float64

	// Placement outputs, valid after UpdateGeometry.
	Radii   [ringSatellites]float64
	Angles  [ringSatellites]float64
	Offsets [ringSatellites]Vec2

	springOn  bool
	spring    harmonica.Spring
	springVel [ringSatellites + 1]float64
}

// NewRing creates a ring solver with the given configuration. Sizes start
// at the desktop maximums.
func NewRing(cfg RingConfig) *Ring {
	r := &Ring{cfg: cfg, lastRatio: -1}
	r.CenterSize = cfg.CenterMax
	r.Sizes = cfg.SatelliteMax
	r.targetCenter = cfg.CenterMax
	r.targetSizes = cfg.SatelliteMax
	return r
}

// Attach binds the ring to stage elements: geometry updates then write each
// element's base box and translate offset. The ring group's local origin is
// the ring center.
func (r *Ring) Attach(stage *Stage, center *Element, sats [ringSatellites]*Element) {
	r.stage = stage
	r.center = center
	r.sats = sats
}

// EnableSpringSmoothing routes size changes through a spring so live
// resizes glide instead of popping. fps is the step rate (the game TPS).
func (r *Ring) EnableSpringSmoothing(fps int, frequency, damping float64) {
	r.springOn = true
	r.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
}

// ratio maps the viewport to the size interpolation factor in [0, 1]:
// 0 at or below MinWidth, 1 at or above MaxWidth, linear between. The
// effective width is capped by height*HeightFactor so short viewports don't
// get oversized rings.
func (r *Ring) ratio(w, h float64) float64 {
	effective := w
	if r.cfg.HeightFactor > 0 && h*r.cfg.HeightFactor < effective {
		effective = h * r.cfg.HeightFactor
	}
	span := r.cfg.MaxWidth - r.cfg.MinWidth
	if span < geomEpsilon {
		return 1
	}
	t := (effective - r.cfg.MinWidth) / span
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// UpdateSizes recomputes the target diameters for the given viewport.
// Returns false without touching anything when the effective ratio is
// unchanged. Without spring smoothing the displayed sizes snap to the
// targets and geometry is recomputed immediately.
func (r *Ring) UpdateSizes(w, h float64) bool {
	t := r.ratio(w, h)
	if t == r.lastRatio {
		return false
	}
	r.lastRatio = t

	r.targetCenter = lerp(r.cfg.CenterMin, r.cfg.CenterMax, t)
	for i := range r.targetSizes {
		r.targetSizes[i] = lerp(r.cfg.SatelliteMin[i], r.cfg.SatelliteMax[i], t)
	}

	if !r.springOn {
		r.CenterSize = r.targetCenter
		r.Sizes = r.targetSizes
		r.UpdateGeometry()
	}
	return true
}

// StepSpring advances the displayed sizes one frame toward the targets and
// refreshes geometry. Returns true while still converging. A no-op (always
// false) when spring smoothing is disabled.
func (r *Ring) StepSpring() bool {
	if !r.springOn {
		return false
	}
	const restThreshold = 1e-3
	moving := false

	step := func(idx int, pos, target float64) float64 {
		p, v := r.spring.Update(pos, r.springVel[idx], target)
		r.springVel[idx] = v
		if math.Abs(p-target) > restThreshold || math.Abs(v) > restThreshold {
			moving = true
		} else {
			p = target
			r.springVel[idx] = 0
		}
		return p
	}

	r.CenterSize = step(0, r.CenterSize, r.targetCenter)
	for i := range r.Sizes {
		r.Sizes[i] = step(i+1, r.Sizes[i], r.targetSizes[i])
	}
	r.UpdateGeometry()
	return moving
}

// UpdateGeometry places the satellites from the current sizes.
//
// Per satellite: radius from the ring center R_i = cr + b_i − kiss, pairwise
// tangency distance D_i = b_i + b_{i+1} − kiss, and the angular delta to the
// next satellite from the law of cosines over the triangle (ring center,
// satellite i, satellite i+1). The acos argument is clamped to [-1, 1] to
// absorb floating-point overshoot. Angles accumulate from the base angle;
// offsets are corner positions aligned by each satellite's own center.
func (r *Ring) UpdateGeometry() {
	cr := r.CenterSize / 2
	kiss := r.cfg.Kiss

	for i := range r.Radii {
		r.Radii[i] = cr + r.Sizes[i]/2 - kiss
	}

	angle := r.cfg.BaseAngle()
	for i := range r.Angles {
		r.Angles[i] = angle
		if i+1 < ringSatellites {
			ri := r.Radii[i]
			rn := r.Radii[i+1]
			di := r.Sizes[i]/2 + r.Sizes[i+1]/2 - kiss
			denom := 2 * ri * rn
			if denom < geomEpsilon {
				denom = geomEpsilon
			}
			cos := (ri*ri + rn*rn - di*di) / denom
			if cos > 1 {
				cos = 1
			} else if cos < -1 {
				cos = -1
			}
			angle += math.Acos(cos)
		}
	}

	for i := range r.Offsets {
		r.Offsets[i] = Vec2{
			X: r.Radii[i]*math.Cos(r.Angles[i]) - r.Sizes[i]/2,
			Y: r.Radii[i]*math.Sin(r.Angles[i]) - r.Sizes[i]/2,
		}
	}

	r.writeElements()
}

// writeElements pushes sizes and offsets to the bound stage elements.
func (r *Ring) writeElements() {
	if r.stage == nil {
		return
	}
	if r.center != nil {
		cs := r.CenterSize
		r.center.Base = Rect{X: -cs / 2, Y: -cs / 2, Width: cs, Height: cs}
	}
	for i, sat := range r.sats {
		if sat == nil {
			continue
		}
		sat.Base = Rect{Width: r.Sizes[i], Height: r.Sizes[i]}
		r.stage.SetOffset(sat, r.Offsets[i].X, r.Offsets[i].Y)
	}
}
