package emblem

// Host abstracts the rendering environment: viewport measurement and the
// reduced-motion preference. The Ebitengine game loop provides the real host
// (run.go); tests use FixedHost.
type Host interface {
	ViewportSize() (w, h float64)
	PrefersReducedMotion() bool
}

// FixedHost is a Host with constant viewport size and motion preference.
type FixedHost struct {
	W, H          float64
	ReducedMotion bool
}

// ViewportSize returns the fixed viewport dimensions.
func (h FixedHost) ViewportSize() (float64, float64) { return h.W, h.H }

// PrefersReducedMotion returns the fixed motion preference.
func (h FixedHost) PrefersReducedMotion() bool { return h.ReducedMotion }

// MarkerLoaderDone is set on the stage root when the preload sequence has
// reached its terminal state.
const MarkerLoaderDone = "data-loader"

// Stage owns the element tree, the per-element translate offset cache, and
// viewport state. All coordinate conversion and measurement goes through it.
//
// The offset cache is the authoritative translate store (identity-keyed by
// element ID, scoped to the stage); the Transform strings on elements are the
// rendered form and may be regenerated from the cache at any time.
type Stage struct {
	root    *Element
	host    Host
	offsets map[uint32]Vec2

	// Cached viewport, refreshed at most once per frame by Resize.
	width, height float64

	onResize []func()
}

// NewStage creates a stage bound to the given host with an empty root group.
func NewStage(host Host) *Stage {
	s := &Stage{
		root:    NewElement("root", KindGroup),
		host:    host,
		offsets: make(map[uint32]Vec2),
	}
	if host != nil {
		s.width, s.height = host.ViewportSize()
	}
	return s
}

// Root returns the stage's root group element.
func (s *Stage) Root() *Element {
	return s.root
}

// Size returns the cached viewport dimensions.
func (s *Stage) Size() (w, h float64) {
	return s.width, s.height
}

// Bounds returns the viewport as a rectangle at the origin.
func (s *Stage) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Resize re-reads the host viewport. Returns true if the size changed, in
// which case registered resize listeners are notified. Callers invoke this at
// most once per frame so listener work is coalesced per rendering frame.
func (s *Stage) Resize() bool {
	if s.host == nil {
		return false
	}
	w, h := s.host.ViewportSize()
	if w == s.width && h == s.height {
		return false
	}
	s.width, s.height = w, h
	for _, fn := range s.onResize {
		fn()
	}
	return true
}

// OnResize registers a listener invoked whenever Resize detects a change.
func (s *Stage) OnResize(fn func()) {
	s.onResize = append(s.onResize, fn)
}

// Breakpoint reports the active responsive mode from the cached viewport
// width. This doubles as the fallback when no media-query capability exists:
// the width heuristic is the only rule.
func (s *Stage) Breakpoint() Breakpoint {
	if s.width < MobileBreakpointWidth {
		return BreakpointMobile
	}
	return BreakpointDesktop
}

// ReducedMotion reports the host's reduced-motion preference. A nil host
// means no preference.
func (s *Stage) ReducedMotion() bool {
	return s.host != nil && s.host.PrefersReducedMotion()
}

// --- Transform store ---

// Offset returns the element's cached translate offset. Elements never
// written default to the zero offset; nil elements yield the zero offset.
func (s *Stage) Offset(e *Element) Vec2 {
	if e == nil {
		return Vec2{}
	}
	return s.offsets[e.id]
}

// SetOffset writes the element's translate offset: the rendered transform
// string is recomposed (preserving the element's scale factor), then the
// cache is updated. After return, cache and rendered value agree.
// Nil elements are a no-op.
func (s *Stage) SetOffset(e *Element, x, y float64) {
	if e == nil {
		return
	}
	off := Vec2{X: x, Y: y}
	e.Transform = composeTransform(off, e.scale)
	s.offsets[e.id] = off
}

// NudgeOffset adds (dx, dy) to the element's current offset. The read and
// write happen within one synchronous call; there is no frame boundary in
// between.
func (s *Stage) NudgeOffset(e *Element, dx, dy float64) {
	if e == nil {
		return
	}
	off := s.Offset(e)
	s.SetOffset(e, off.X+dx, off.Y+dy)
}

// SetScale writes the element's uniform scale factor, recomposing the
// rendered transform with the current translate offset.
func (s *Stage) SetScale(e *Element, scale float64) {
	if e == nil {
		return
	}
	e.scale = scale
	e.Transform = composeTransform(s.Offset(e), scale)
}

// --- Measurement ---

// worldAffine composes the element's transform chain up to the root.
func (s *Stage) worldAffine(e *Element) [6]float64 {
	if e == nil {
		return identityTransform
	}
	m := localAffine(s.Offset(e), e.scale)
	for p := e.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(localAffine(s.Offset(p), p.scale), m)
	}
	return m
}

// LocalToRoot converts a point in the element's local space to root space.
func (s *Stage) LocalToRoot(e *Element, x, y float64) (float64, float64) {
	return transformPoint(s.worldAffine(e), x, y)
}

// RootToLocal converts a point in root space to the element's local space.
func (s *Stage) RootToLocal(e *Element, x, y float64) (float64, float64) {
	return transformPoint(invertAffine(s.worldAffine(e)), x, y)
}

// BBox measures the element's bounding box in root space. Group elements
// yield the union of their children's boxes; a group with no measurable
// children yields a zero box at the group's own origin.
func (s *Stage) BBox(e *Element) Rect {
	if e == nil {
		return Rect{}
	}
	if e.Kind == KindGroup {
		var box Rect
		first := true
		for _, c := range e.children {
			cb := s.BBox(c)
			if first {
				box = cb
				first = false
			} else {
				box = box.Union(cb)
			}
		}
		if first {
			x, y := s.LocalToRoot(e, 0, 0)
			return Rect{X: x, Y: y}
		}
		return box
	}
	return transformRect(s.worldAffine(e), e.Base)
}

// Center returns the center of the element's root-space bounding box.
func (s *Stage) Center(e *Element) Vec2 {
	return s.BBox(e).Center()
}
