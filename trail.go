package emblem

// TrailSolver maintains the two connector paths between the logo groups
// (v1–v2 and v2–v3) and computes the groups' settle targets per breakpoint.
//
// Connector endpoints hang off each group's handle element: the handle's
// bottom-center point in local units, pulled inward by half the connector's
// effective stroke width, converted to root space. Both the path data and
// the matching gradient endpoint coordinates are written as attributes so
// the serialized form stays in sync with geometry.
type TrailSolver struct {
	stage  *Stage
	cfg    AnchorConfig
	groups []*Group
	trails [2]*Element
}

// NewTrailSolver creates a solver over the three groups and two trail path
// elements (v1–v2 first, v2–v3 second).
func NewTrailSolver(stage *Stage, cfg AnchorConfig, groups []*Group, trails [2]*Element) *TrailSolver {
	return &TrailSolver{stage: stage, cfg: cfg, groups: groups, trails: trails}
}

// endpoint returns the connector attachment point for a group in root space.
func (t *TrailSolver) endpoint(g *Group, trail *Element) (float64, float64, bool) {
	if g == nil || g.Handle == nil {
		return 0, 0, false
	}
	h := g.Handle

	// Half the stroke width, in the handle's local units. A non-scaling
	// stroke keeps its root-space width under ancestor scaling, so the
	// local inset must grow as the element shrinks.
	var inset float64
	if trail != nil && trail.StrokeWidth > 0 {
		inset = trail.StrokeWidth / 2
		if trail.NonScalingStroke {
			m := t.stage.worldAffine(h)
			scale := m[0]
			if scale < geomEpsilon {
				scale = geomEpsilon
			}
			inset = trail.StrokeWidth / 2 / scale
		}
	}

	lx := h.Base.X + h.Base.Width/2
	ly := h.Base.Y + h.Base.Height - inset
	rx, ry := t.stage.LocalToRoot(h, lx, ly)
	return rx, ry, true
}

// UpdateTrail recomputes both connector paths and their gradient endpoint
// coordinates. Missing groups or trail elements leave that connector
// untouched.
func (t *TrailSolver) UpdateTrail() {
	if len(t.groups) < groupCount {
		return
	}
	t.updateConnector(t.trails[0], t.groups[GroupV1], t.groups[GroupV2])
	t.updateConnector(t.trails[1], t.groups[GroupV2], t.groups[GroupV3])
}

func (t *TrailSolver) updateConnector(trail *Element, from, to *Group) {
	if trail == nil {
		return
	}
	x1, y1, ok1 := t.endpoint(from, trail)
	x2, y2, ok2 := t.endpoint(to, trail)
	if !ok1 || !ok2 {
		return
	}
	trail.SetAttr("d", "M "+ftoa(x1)+" "+ftoa(y1)+" L "+ftoa(x2)+" "+ftoa(y2))
	trail.SetAttr("x1", ftoa(x1))
	trail.SetAttr("y1", ftoa(y1))
	trail.SetAttr("x2", ftoa(x2))
	trail.SetAttr("y2", ftoa(y2))
}

// AnchorTargets returns the three groups' settle target centers in root
// space for the current breakpoint.
//
// Mobile packs the groups in a horizontal row along the bottom; the middle
// group sits at the midpoint between the outer two's facing edges, not the
// raw viewport midpoint, so uneven outer widths keep the middle visually
// centered in the gap. Desktop anchors the groups to three corners
// (bottom-left, bottom-right, top-right), each inset by the margin plus the
// group's own half-extent.
func (t *TrailSolver) AnchorTargets() [groupCount]Vec2 {
	var out [groupCount]Vec2
	if len(t.groups) < groupCount {
		return out
	}
	w, h := t.stage.Size()

	var hw, hh [groupCount]float64
	for i, g := range t.groups[:groupCount] {
		if g == nil || g.Root == nil {
			continue
		}
		box := t.stage.BBox(g.Root)
		hw[i] = box.Width / 2
		hh[i] = box.Height / 2
	}

	if t.stage.Breakpoint() == BreakpointMobile {
		m := t.cfg.MobileMargin
		left := Vec2{X: m + hw[GroupV1], Y: h - m - hh[GroupV1]}
		right := Vec2{X: w - m - hw[GroupV3], Y: h - m - hh[GroupV3]}
		// Facing edges: right edge of the left group, left edge of the
		// right group.
		midX := ((left.X + hw[GroupV1]) + (right.X - hw[GroupV3])) / 2
		out[GroupV1] = left
		out[GroupV2] = Vec2{X: midX, Y: h - m - hh[GroupV2]}
		out[GroupV3] = right
		return out
	}

	m := t.cfg.DesktopMargin
	out[GroupV1] = Vec2{X: m + hw[GroupV1], Y: h - m - hh[GroupV1]}
	out[GroupV2] = Vec2{X: w - m - hw[GroupV2], Y: h - m - hh[GroupV2]}
	out[GroupV3] = Vec2{X: w - m - hw[GroupV3], Y: m + hh[GroupV3]}
	return out
}
