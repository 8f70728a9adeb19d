package emblem

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenOpts configures one tween: duration, easing, and per-frame /
// completion callbacks. A nil Ease uses the cubic in-out default; a
// non-positive Duration applies the final value immediately.
type TweenOpts struct {
	Duration   time.Duration
	Ease       ease.TweenFunc
	OnUpdate   func()
	OnComplete func()
}

func (o TweenOpts) easeOrDefault() ease.TweenFunc {
	if o.Ease != nil {
		return o.Ease
	}
	return ease.InOutCubic
}

// Animator is the frame-driven translate tween engine. It owns no
// cancellation of its own — callers needing cancellation (the scale
// controller) layer a token protocol on top. Tweens always run to
// completion and their futures always resolve.
type Animator struct {
	stage *Stage
	sched *Scheduler
}

// NewAnimator creates an animator over the given stage and scheduler.
func NewAnimator(stage *Stage, sched *Scheduler) *Animator {
	return &Animator{stage: stage, sched: sched}
}

// AnimateOffset tweens the element's translate offset by (dx, dy) relative
// to its offset at call time. The start offset is captured once; each frame
// applies start + delta*ease(t) and invokes OnUpdate; the final frame snaps
// exactly to start + delta before OnComplete fires and the future resolves,
// so repeated tweens accumulate no floating-point drift.
//
// A nil element resolves immediately (missing targets are expected in
// headless contexts and must not stall a sequence).
func (a *Animator) AnimateOffset(e *Element, dx, dy float64, opts TweenOpts) *Future {
	if e == nil {
		if opts.OnComplete != nil {
			opts.OnComplete()
		}
		return Resolved()
	}

	start := a.stage.Offset(e)

	if opts.Duration <= 0 {
		a.stage.SetOffset(e, start.X+dx, start.Y+dy)
		if opts.OnUpdate != nil {
			opts.OnUpdate()
		}
		if opts.OnComplete != nil {
			opts.OnComplete()
		}
		return Resolved()
	}

	fn := opts.easeOrDefault()
	dur := float32(opts.Duration.Seconds())
	tx := gween.New(0, float32(dx), dur, fn)
	ty := gween.New(0, float32(dy), dur, fn)

	fut := NewFuture()
	a.sched.OnFrame(func(dt float64) bool {
		vx, doneX := tx.Update(float32(dt))
		vy, doneY := ty.Update(float32(dt))
		if doneX && doneY {
			// Snap exactly to the target, eliminating float32 drift.
			a.stage.SetOffset(e, start.X+dx, start.Y+dy)
			if opts.OnUpdate != nil {
				opts.OnUpdate()
			}
			if opts.OnComplete != nil {
				opts.OnComplete()
			}
			fut.Resolve()
			return false
		}
		a.stage.SetOffset(e, start.X+float64(vx), start.Y+float64(vy))
		if opts.OnUpdate != nil {
			opts.OnUpdate()
		}
		return true
	})
	return fut
}

// AnimateOffsetTo tweens the element's translate offset to an absolute
// offset value. Convenience over AnimateOffset.
func (a *Animator) AnimateOffsetTo(e *Element, x, y float64, opts TweenOpts) *Future {
	if e == nil {
		if opts.OnComplete != nil {
			opts.OnComplete()
		}
		return Resolved()
	}
	start := a.stage.Offset(e)
	return a.AnimateOffset(e, x-start.X, y-start.Y, opts)
}
