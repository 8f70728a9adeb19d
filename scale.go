package emblem

import (
	"math"

	"github.com/tanema/gween"
)

// ScaleController applies and animates the single uniform scale state shared
// by the three logo groups. Scaling happens about each group's local origin,
// which shifts the group's bounding box; the controller measures the box
// center before and after every scale write and adjusts the translate
// offset so the visual center stays fixed.
//
// At most one scale animation is in flight. Starting a new one cancels the
// old one: its frame hook stops, its future resolves (never rejects), and
// the committed scale is decided by the new animation alone. A token counter
// guards the commit so a stale animation that somehow finishes after a newer
// one cannot clobber the newer result.
type ScaleController struct {
	stage  *Stage
	sched  *Scheduler
	groups []*Group

	// current is the last committed scale state; applied tracks the scale
	// actually on screen, which differs mid-animation.
	current float64
	applied float64

	counter int
	active  *scaleAnim
}

type scaleAnim struct {
	token     int
	cancelled bool
	fut       *Future
}

// NewScaleController creates a controller over the given groups at scale 1.
func NewScaleController(stage *Stage, sched *Scheduler, groups []*Group) *ScaleController {
	return &ScaleController{
		stage:   stage,
		sched:   sched,
		groups:  groups,
		current: 1,
		applied: 1,
	}
}

// Scale returns the last committed scale state.
func (c *ScaleController) Scale() float64 {
	return c.current
}

// applyStep writes scale s to every group root with center compensation.
// Called both for immediate application and per animation frame, since
// intermediate scales shift bounding-box geometry just like final ones.
func (c *ScaleController) applyStep(s float64) {
	for _, g := range c.groups {
		if g == nil || g.Root == nil {
			continue
		}
		before := c.stage.Center(g.Root)
		c.stage.SetScale(g.Root, s)
		after := c.stage.Center(g.Root)
		if before != after {
			c.stage.NudgeOffset(g.Root, before.X-after.X, before.Y-after.Y)
		}
	}
	c.applied = s
}

// cancelActive stops the in-flight animation, if any, and resolves its
// future. The applied (on-screen) scale is left wherever the cancelled
// animation last put it.
func (c *ScaleController) cancelActive() {
	if c.active == nil {
		return
	}
	c.active.cancelled = true
	c.active.fut.Resolve()
	c.active = nil
}

// ApplyScale sets the scale state immediately, with center preservation.
// A target within ScaleEpsilon of the committed state is a no-op unless an
// animation is in flight, in which case the animation is cancelled and the
// target is pinned.
func (c *ScaleController) ApplyScale(target float64) {
	if c.active == nil && math.Abs(target-c.current) <= ScaleEpsilon {
		return
	}
	c.cancelActive()
	c.counter++
	if math.Abs(target-c.applied) > ScaleEpsilon {
		c.applyStep(target)
	}
	c.applied = target
	c.current = target
}

// AnimateScale tweens the scale state to target. The returned future
// resolves on completion, or immediately if the animation is superseded.
// Per-frame the same center-preservation as ApplyScale runs at the
// interpolated value.
func (c *ScaleController) AnimateScale(target float64, opts TweenOpts) *Future {
	c.cancelActive()
	c.counter++

	if opts.Duration <= 0 || math.Abs(target-c.applied) <= ScaleEpsilon {
		c.applyStep(target)
		c.current = target
		if opts.OnComplete != nil {
			opts.OnComplete()
		}
		return Resolved()
	}

	anim := &scaleAnim{token: c.counter, fut: NewFuture()}
	c.active = anim

	tw := gween.New(float32(c.applied), float32(target), float32(opts.Duration.Seconds()), opts.easeOrDefault())
	c.sched.OnFrame(func(dt float64) bool {
		if anim.cancelled {
			return false
		}
		v, done := tw.Update(float32(dt))
		if done {
			c.applyStep(target)
			// Only the newest animation may commit its target.
			if anim.token == c.counter {
				c.current = target
				c.active = nil
			}
			if opts.OnUpdate != nil {
				opts.OnUpdate()
			}
			if opts.OnComplete != nil {
				opts.OnComplete()
			}
			anim.fut.Resolve()
			return false
		}
		c.applyStep(float64(v))
		if opts.OnUpdate != nil {
			opts.OnUpdate()
		}
		return true
	})
	return anim.fut
}
