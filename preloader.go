package emblem

// PreloadState is the preloader's position in the scripted sequence.
type PreloadState uint8

const (
	PreloadIdle PreloadState = iota
	PreloadPacked
	PreloadWiggled
	PreloadPose3
	PreloadPose4
	PreloadAnchored // terminal
)

// String returns the state name for logging and tests.
func (s PreloadState) String() string {
	switch s {
	case PreloadIdle:
		return "idle"
	case PreloadPacked:
		return "packed"
	case PreloadWiggled:
		return "wiggled"
	case PreloadPose3:
		return "pose3"
	case PreloadPose4:
		return "pose4"
	case PreloadAnchored:
		return "anchored"
	default:
		return "unknown"
	}
}

// Preloader orchestrates the fixed pose sequence
// Idle → Packed → Wiggled → Pose3 → Pose4 → Anchored. Transitions are
// strictly sequential: each is triggered only by completion of the prior
// step's three concurrent group tweens, followed by a two-frame settle (so
// layout stabilizes before the next step measures) and a fixed hold delay.
//
// Side effects: dragging is disabled for the whole sequence and re-enabled
// at Anchored; the midway signal fires once after the Pose3 transition
// completes; the reveal callback is scheduled a fixed lead time before the
// final tween completes rather than after it; the loader-done marker is set
// on the stage root at Anchored.
//
// Under a reduced-motion preference the sequence collapses to a single
// immediate Idle → Anchored placement with the same side effects.
type Preloader struct {
	stage *Stage
	sched *Scheduler
	anim  *Animator
	drag  *DragController
	trail *TrailSolver

	cfg    AnimConfig
	poses  PoseConfig
	groups []*Group

	state       PreloadState
	running     bool
	done        *Future
	midway      []func()
	midwayFired bool
	reveal      func()
}

// NewPreloader wires the preloader over the shared controllers.
func NewPreloader(stage *Stage, sched *Scheduler, anim *Animator, drag *DragController, trail *TrailSolver, cfg AnimConfig, poses PoseConfig, groups []*Group) *Preloader {
	return &Preloader{
		stage:  stage,
		sched:  sched,
		anim:   anim,
		drag:   drag,
		trail:  trail,
		cfg:    cfg,
		poses:  poses,
		groups: groups,
		state:  PreloadIdle,
	}
}

// State returns the current preloader state.
func (p *Preloader) State() PreloadState {
	return p.state
}

// OnMidway registers a callback for the midway signal. Collaborators use it
// to know when injecting further content is safe. Fires once; registering
// after the fact fires immediately.
func (p *Preloader) OnMidway(fn func()) {
	if p.midwayFired {
		fn()
		return
	}
	p.midway = append(p.midway, fn)
}

// SetRevealFunc sets the callback that performs the full visual reveal.
func (p *Preloader) SetRevealFunc(fn func()) {
	p.reveal = fn
}

// Run starts the sequence and returns a future resolving at Anchored.
// Calling Run while the sequence is in flight returns the in-flight future;
// calling it after completion returns a resolved one. The sequence itself is
// not cancellable: it always reaches Anchored (possibly via the
// reduced-motion shortcut).
func (p *Preloader) Run() *Future {
	if p.running {
		return p.done
	}
	if p.state != PreloadIdle {
		return Resolved()
	}

	p.running = true
	p.done = NewFuture()
	p.drag.SetEnabled(false)

	if p.stage.ReducedMotion() {
		p.placeAnchoredImmediate()
		return p.done
	}

	// Keep the connectors glued to the groups for the whole sequence.
	p.sched.OnFrame(func(float64) bool {
		p.trail.UpdateTrail()
		return p.running
	})

	p.advance(PreloadPacked, p.poses.Packed, func() {
		p.advance(PreloadWiggled, p.poses.Wiggled, func() {
			p.advance(PreloadPose3, p.poses.Pose3, func() {
				p.advance(PreloadPose4, p.poses.Pose4, func() {
					p.finalStep()
				})
			})
		})
	})
	return p.done
}

// advance tweens all three groups concurrently to the pose, marks the state
// when the last tween resolves, then settles and holds before invoking next.
func (p *Preloader) advance(state PreloadState, pose Pose, next func()) {
	futs := p.tweenToPose(pose)
	WhenAll(futs...).OnResolve(func() {
		p.state = state
		if state == PreloadPose3 {
			p.fireMidway()
		}
		p.sched.AfterFrames(settleFrames).OnResolve(func() {
			p.sched.After(p.cfg.HoldDelay.D()).OnResolve(next)
		})
	})
}

// tweenToPose starts one tween per group toward the pose's fractional
// coordinates resolved against the current viewport. The step is complete
// only when all three resolve.
func (p *Preloader) tweenToPose(pose Pose) []*Future {
	w, h := p.stage.Size()
	opts := TweenOpts{Duration: p.cfg.StepDuration.D(), Ease: p.cfg.EaseFunc()}

	futs := make([]*Future, 0, groupCount)
	for i, g := range p.groups[:groupCount] {
		futs = append(futs, p.tweenCenterTo(g, pose[i].X*w, pose[i].Y*h, opts))
	}
	return futs
}

// tweenCenterTo moves a group so its bounding-box center lands on the
// target point.
func (p *Preloader) tweenCenterTo(g *Group, x, y float64, opts TweenOpts) *Future {
	if g == nil || g.Root == nil {
		return Resolved()
	}
	c := p.stage.Center(g.Root)
	return p.anim.AnimateOffset(g.Root, x-c.X, y-c.Y, opts)
}

// finalStep anchors the groups. The reveal is scheduled RevealLead before
// the tween completes — an externally observable early reveal, not an
// after-effect.
func (p *Preloader) finalStep() {
	targets := p.trail.AnchorTargets()
	opts := TweenOpts{Duration: p.cfg.StepDuration.D(), Ease: p.cfg.EaseFunc()}

	lead := p.cfg.StepDuration.D() - p.cfg.RevealLead.D()
	if lead < 0 {
		lead = 0
	}
	p.sched.After(lead).OnResolve(p.fireReveal)

	futs := make([]*Future, 0, groupCount)
	for i, g := range p.groups[:groupCount] {
		futs = append(futs, p.tweenCenterTo(g, targets[i].X, targets[i].Y, opts))
	}
	WhenAll(futs...).OnResolve(func() {
		p.state = PreloadAnchored
		p.finish()
	})
}

// placeAnchoredImmediate is the reduced-motion shortcut: a single
// non-animated placement at the anchors with the full set of side effects.
// Note the intermediate mobile horizontal pack never happens on this path;
// the final positions are the anchor targets either way.
func (p *Preloader) placeAnchoredImmediate() {
	targets := p.trail.AnchorTargets()
	for i, g := range p.groups[:groupCount] {
		if g == nil || g.Root == nil {
			continue
		}
		c := p.stage.Center(g.Root)
		p.stage.NudgeOffset(g.Root, targets[i].X-c.X, targets[i].Y-c.Y)
	}
	p.state = PreloadAnchored
	p.fireMidway()
	p.fireReveal()
	p.finish()
}

func (p *Preloader) finish() {
	p.trail.UpdateTrail()
	p.stage.Root().SetAttr(MarkerLoaderDone, "done")
	p.drag.SetEnabled(true)
	p.running = false
	p.done.Resolve()
}

func (p *Preloader) fireMidway() {
	if p.midwayFired {
		return
	}
	p.midwayFired = true
	fns := p.midway
	p.midway = nil
	for _, fn := range fns {
		fn()
	}
}

func (p *Preloader) fireReveal() {
	if p.reveal != nil {
		p.reveal()
	}
}
