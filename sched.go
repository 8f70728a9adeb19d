package emblem

import "time"

// Future is a resolve-once completion value for frame-driven work. It stands
// in for a promise: both normal completion and cancellation resolve it, and
// the second resolution is a no-op (never a double fire, never a rejection).
//
// Emblem is single-threaded; Future carries no locking.
type Future struct {
	resolved bool
	fns      []func()
}

// NewFuture creates an unresolved future.
func NewFuture() *Future {
	return &Future{}
}

// Resolved returns an already-resolved future.
func Resolved() *Future {
	return &Future{resolved: true}
}

// Done reports whether the future has resolved.
func (f *Future) Done() bool {
	return f.resolved
}

// Resolve marks the future complete and fires pending callbacks in
// registration order. Subsequent calls are no-ops.
func (f *Future) Resolve() {
	if f.resolved {
		return
	}
	f.resolved = true
	fns := f.fns
	f.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// OnResolve registers a callback. If the future has already resolved, the
// callback fires immediately.
func (f *Future) OnResolve(fn func()) {
	if f.resolved {
		fn()
		return
	}
	f.fns = append(f.fns, fn)
}

// WhenAll returns a future that resolves once every given future has
// resolved (fan-in). With no arguments it is already resolved.
func WhenAll(futures ...*Future) *Future {
	out := NewFuture()
	remaining := len(futures)
	if remaining == 0 {
		out.Resolve()
		return out
	}
	for _, f := range futures {
		f.OnResolve(func() {
			remaining--
			if remaining == 0 {
				out.Resolve()
			}
		})
	}
	return out
}

// frameHook is a per-frame callback. Returning false unhooks it.
type frameHook struct {
	fn      func(dt float64) bool
	removed bool
}

// timer resolves a future once the scheduler clock passes its deadline.
type timer struct {
	deadline float64
	fut      *Future
}

// Scheduler is the cooperative frame clock. Everything that suspends —
// tweens, settle waits, hold delays — registers here and is advanced by
// Step, which the game loop calls once per rendering frame. Tests drive
// Step manually for deterministic animation.
type Scheduler struct {
	now    float64
	hooks  []*frameHook
	timers []*timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// OnFrame registers a callback invoked every Step with the frame's dt.
// The callback is unhooked when it returns false.
func (s *Scheduler) OnFrame(fn func(dt float64) bool) {
	s.hooks = append(s.hooks, &frameHook{fn: fn})
}

// NextFrame returns a future that resolves on the next Step.
func (s *Scheduler) NextFrame() *Future {
	return s.AfterFrames(1)
}

// AfterFrames returns a future that resolves after n Steps. n <= 0 resolves
// immediately.
func (s *Scheduler) AfterFrames(n int) *Future {
	if n <= 0 {
		return Resolved()
	}
	fut := NewFuture()
	remaining := n
	s.OnFrame(func(float64) bool {
		remaining--
		if remaining <= 0 {
			fut.Resolve()
			return false
		}
		return true
	})
	return fut
}

// After returns a future that resolves once the clock has advanced by d.
// Non-positive durations resolve on the next Step (a zero-delay still waits
// one frame, like a zero timeout).
func (s *Scheduler) After(d time.Duration) *Future {
	fut := NewFuture()
	s.timers = append(s.timers, &timer{deadline: s.now + d.Seconds(), fut: fut})
	return fut
}

// Step advances the clock by dt seconds, fires due timers, then runs frame
// hooks. Hooks registered during Step run from the following Step, so a
// tween chained off a completion callback starts cleanly on the next frame.
func (s *Scheduler) Step(dt float64) {
	s.now += dt

	// Timers first: a hold delay expiring this frame may start animations,
	// whose hooks then advance with this frame's dt below. Partition before
	// resolving: resolution callbacks may schedule new timers, which must
	// survive into the next Step.
	if len(s.timers) > 0 {
		var due []*timer
		remaining := make([]*timer, 0, len(s.timers))
		for _, t := range s.timers {
			if t.deadline <= s.now {
				due = append(due, t)
			} else {
				remaining = append(remaining, t)
			}
		}
		s.timers = remaining
		for _, t := range due {
			t.fut.Resolve()
		}
	}

	hooks := s.hooks
	n := len(hooks)
	for i := 0; i < n; i++ {
		h := hooks[i]
		if h.removed {
			continue
		}
		if !h.fn(dt) {
			h.removed = true
		}
	}

	// Compact removed hooks, preserving any registered during this Step.
	kept := s.hooks[:0]
	for _, h := range s.hooks {
		if !h.removed {
			kept = append(kept, h)
		}
	}
	s.hooks = kept
}

// StepFrames advances the scheduler n frames at the given frame duration.
// Test convenience mirroring a fixed-TPS game loop.
func (s *Scheduler) StepFrames(n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Step(dt)
	}
}
