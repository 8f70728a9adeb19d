package emblem

import (
	"testing"
	"time"
)

func TestFutureResolvesOnce(t *testing.T) {
	f := NewFuture()
	count := 0
	f.OnResolve(func() { count++ })

	f.Resolve()
	f.Resolve()
	if count != 1 {
		t.Errorf("callback fired %d times, want 1", count)
	}
	if !f.Done() {
		t.Error("future should be done")
	}
}

func TestFutureLateSubscriberFiresImmediately(t *testing.T) {
	f := Resolved()
	fired := false
	f.OnResolve(func() { fired = true })
	if !fired {
		t.Error("late subscriber should fire immediately")
	}
}

func TestWhenAllWaitsForLast(t *testing.T) {
	a, b, c := NewFuture(), NewFuture(), NewFuture()
	all := WhenAll(a, b, c)

	a.Resolve()
	c.Resolve()
	if all.Done() {
		t.Fatal("WhenAll resolved before last member")
	}
	b.Resolve()
	if !all.Done() {
		t.Fatal("WhenAll did not resolve after last member")
	}
}

func TestWhenAllEmpty(t *testing.T) {
	if !WhenAll().Done() {
		t.Error("WhenAll with no futures should be resolved")
	}
}

func TestAfterResolvesOnDeadline(t *testing.T) {
	s := NewScheduler()
	f := s.After(100 * time.Millisecond)

	s.Step(0.05)
	if f.Done() {
		t.Fatal("resolved before deadline")
	}
	s.Step(0.06)
	if !f.Done() {
		t.Fatal("not resolved after deadline")
	}
}

func TestAfterFrames(t *testing.T) {
	s := NewScheduler()
	f := s.AfterFrames(2)

	s.Step(0.016)
	if f.Done() {
		t.Fatal("resolved after one frame, want two")
	}
	s.Step(0.016)
	if !f.Done() {
		t.Fatal("not resolved after two frames")
	}
}

func TestOnFrameUnhooksOnFalse(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.OnFrame(func(float64) bool {
		count++
		return count < 3
	})

	s.StepFrames(10, 0.016)
	if count != 3 {
		t.Errorf("hook ran %d times, want 3", count)
	}
}

func TestHookRegisteredDuringStepRunsNextFrame(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.OnFrame(func(float64) bool {
		s.OnFrame(func(float64) bool {
			inner++
			return false
		})
		return false
	})

	s.Step(0.016)
	if inner != 0 {
		t.Fatal("inner hook ran in the same frame it was registered")
	}
	s.Step(0.016)
	if inner != 1 {
		t.Fatalf("inner hook ran %d times after second frame, want 1", inner)
	}
}

func TestSchedulerClockAccumulates(t *testing.T) {
	s := NewScheduler()
	s.StepFrames(3, 0.5)
	assertNear(t, "now", s.Now(), 1.5)
}
