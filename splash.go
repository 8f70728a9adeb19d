package emblem

// Logo group intrinsic geometry, in local units before any transform. v2 is
// the larger middle mark; v1 and v3 flank it.
var groupBodySizes = [groupCount]float64{100, 120, 100}

const (
	groupHandleHeight = 22
	groupLabelHeight  = 14
	trailStrokeWidth  = 4
)

// Splash is the composition root: it builds the element tree and constructs
// every controller over one stage and one scheduler. Nothing in the package
// self-instantiates; ownership of the whole lifecycle sits here.
type Splash struct {
	cfg   Config
	stage *Stage
	sched *Scheduler
	anim  *Animator
	scale *ScaleController
	drag  *DragController
	trail *TrailSolver
	pre   *Preloader
	ring  *Ring

	groups    []*Group
	logoRoot  *Element
	ringRoot  *Element
	trailEls  [2]*Element
	revealed  bool
	injectQue []PointerEvent
}

// NewSplash builds the splash scene for the given host. The groups start at
// the packed pose; the ring is sized for the initial viewport.
func NewSplash(cfg Config, host Host) *Splash {
	s := &Splash{
		cfg:   cfg,
		stage: NewStage(host),
		sched: NewScheduler(),
	}
	s.buildTree()

	s.anim = NewAnimator(s.stage, s.sched)
	s.scale = NewScaleController(s.stage, s.sched, s.groups)
	s.drag = NewDragController(s.stage, cfg.Drag, s.groups)
	s.trail = NewTrailSolver(s.stage, cfg.Anchor, s.groups, s.trailEls)
	s.pre = NewPreloader(s.stage, s.sched, s.anim, s.drag, s.trail, cfg.Anim, cfg.Poses, s.groups)

	s.ring = NewRing(cfg.Ring)
	var sats [ringSatellites]*Element
	for i := range sats {
		sats[i] = s.findRingSatellite(i)
	}
	s.ring.Attach(s.stage, s.findRingCenter(), sats)

	s.stage.OnResize(s.handleResize)
	s.layoutInitial()
	return s
}

// buildTree constructs the fixed element set: three groups (body, handle,
// label), two trail paths, and the ring (center plus six satellites).
func (s *Splash) buildTree() {
	root := s.stage.Root()

	s.logoRoot = NewElement("logo", KindGroup)
	root.AddChild(s.logoRoot)

	names := [groupCount]string{"v1", "v2", "v3"}
	for i := 0; i < groupCount; i++ {
		size := groupBodySizes[i]
		g := &Group{ID: GroupID(i)}

		g.Root = NewElement(names[i], KindGroup)
		s.logoRoot.AddChild(g.Root)

		g.Body = NewElement(names[i]+"-body", KindCircle)
		g.Body.Base = Rect{Width: size, Height: size}
		g.Root.AddChild(g.Body)

		g.Handle = NewElement(names[i]+"-handle", KindRect)
		g.Handle.Base = Rect{
			X:      size * 0.25,
			Y:      size - groupHandleHeight*0.5,
			Width:  size * 0.5,
			Height: groupHandleHeight,
		}
		g.Handle.Visible = false
		g.Handle.Interactive = true
		g.Root.AddChild(g.Handle)

		g.Label = NewElement(names[i]+"-label", KindRect)
		g.Label.Base = Rect{
			X:      size * 0.2,
			Y:      size + 8,
			Width:  size * 0.6,
			Height: groupLabelHeight,
		}
		g.Root.AddChild(g.Label)

		s.groups = append(s.groups, g)
	}

	for i := range s.trailEls {
		t := NewElement("trail", KindPath)
		t.StrokeWidth = trailStrokeWidth
		t.NonScalingStroke = true
		s.logoRoot.AddChild(t)
		s.trailEls[i] = t
	}

	s.ringRoot = NewElement("ring", KindGroup)
	root.AddChild(s.ringRoot)

	center := NewElement("ring-center", KindCircle)
	s.ringRoot.AddChild(center)
	for i := 0; i < ringSatellites; i++ {
		sat := NewElement("ring-sat", KindCircle)
		s.ringRoot.AddChild(sat)
	}
}

func (s *Splash) findRingCenter() *Element {
	for _, c := range s.ringRoot.Children() {
		if c.Name == "ring-center" {
			return c
		}
	}
	return nil
}

func (s *Splash) findRingSatellite(i int) *Element {
	n := 0
	for _, c := range s.ringRoot.Children() {
		if c.Name == "ring-sat" {
			if n == i {
				return c
			}
			n++
		}
	}
	return nil
}

// layoutInitial places the groups at the packed pose, sizes the ring for
// the current viewport, and draws the connectors once.
func (s *Splash) layoutInitial() {
	w, h := s.stage.Size()
	for i, g := range s.groups {
		p := s.cfg.Poses.Packed[i]
		c := s.stage.Center(g.Root)
		s.stage.NudgeOffset(g.Root, p.X*w-c.X, p.Y*h-c.Y)
	}
	s.stage.SetOffset(s.ringRoot, w/2, h/2)
	s.ring.UpdateSizes(w, h)
	s.trail.UpdateTrail()
}

// handleResize runs once per frame at most (Stage.Resize is called from
// Step): re-centers the ring, re-interpolates its sizes, clamps groups into
// the new safe area, and refreshes the connectors.
func (s *Splash) handleResize() {
	w, h := s.stage.Size()
	s.stage.SetOffset(s.ringRoot, w/2, h/2)
	s.ring.UpdateSizes(w, h)
	s.drag.ClampAll()
	s.trail.UpdateTrail()
}

// Step advances the splash one frame: viewport refresh (debounced here to
// one check per rendering frame), queued synthetic pointer events, ring
// spring smoothing, then the scheduler.
func (s *Splash) Step(dt float64) {
	s.stage.Resize()
	if len(s.injectQue) > 0 {
		ev := s.injectQue[0]
		s.injectQue = s.injectQue[1:]
		s.drag.HandlePointer(ev)
	}
	s.ring.StepSpring()
	s.sched.Step(dt)
}

// HandlePointer forwards a live pointer sample to the drag controller.
func (s *Splash) HandlePointer(ev PointerEvent) {
	s.drag.HandlePointer(ev)
}

// InjectPress queues a synthetic pointer press at root coordinates,
// consumed one event per Step. Used by tests and scripted demos.
func (s *Splash) InjectPress(x, y float64) {
	s.injectQue = append(s.injectQue, PointerEvent{X: x, Y: y, Pressed: true})
}

// InjectMove queues a synthetic pointer move with the button held.
func (s *Splash) InjectMove(x, y float64) {
	s.injectQue = append(s.injectQue, PointerEvent{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a synthetic pointer release.
func (s *Splash) InjectRelease(x, y float64) {
	s.injectQue = append(s.injectQue, PointerEvent{X: x, Y: y, Pressed: false})
}

// --- External API surface ---

// Stage returns the element tree and offset store.
func (s *Splash) Stage() *Stage { return s.stage }

// Scheduler returns the frame clock driving all animation.
func (s *Splash) Scheduler() *Scheduler { return s.sched }

// Ring returns the radial ring solver.
func (s *Splash) Ring() *Ring { return s.ring }

// Drag returns the drag controller.
func (s *Splash) Drag() *DragController { return s.drag }

// Preloader returns the preload state machine.
func (s *Splash) Preloader() *Preloader { return s.pre }

// Groups returns the three logo groups indexed by GroupID.
func (s *Splash) Groups() []*Group { return s.groups }

// RunPreload starts the preload sequence.
func (s *Splash) RunPreload() *Future {
	return s.pre.Run()
}

// OnMidway subscribes to the one-shot midway signal.
func (s *Splash) OnMidway(fn func()) {
	s.pre.OnMidway(fn)
}

// SetRevealFunc sets the full-reveal callback scheduled near the end of the
// preload sequence.
func (s *Splash) SetRevealFunc(fn func()) {
	s.pre.SetRevealFunc(fn)
}

// UpdateTrail recomputes the connector paths immediately.
func (s *Splash) UpdateTrail() {
	s.trail.UpdateTrail()
}

// Compact reports whether compact mode is the committed scale state.
func (s *Splash) Compact() bool {
	return s.scale.Scale() == CompactScale
}

// SetCompact toggles compact mode (0.5× scale on all three groups, centers
// preserved). With animate false the change is immediate; otherwise it
// tweens over the configured scale duration. The returned future resolves
// when the state is applied.
func (s *Splash) SetCompact(compact, animate bool) *Future {
	target := 1.0
	if compact {
		target = CompactScale
	}
	if !animate {
		s.scale.ApplyScale(target)
		s.trail.UpdateTrail()
		return Resolved()
	}
	return s.scale.AnimateScale(target, TweenOpts{
		Duration: s.cfg.Anim.ScaleDuration.D(),
		Ease:     s.cfg.Anim.EaseFunc(),
		OnUpdate: s.trail.UpdateTrail,
	})
}
