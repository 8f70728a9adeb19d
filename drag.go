package emblem

// DragController moves logo groups with the pointer. On press over a group's
// handle it records the pointer start and the group's current offset as a
// base; while pressed, the offset follows base + pointer delta and the
// group's bounding box is clamped into the safe area. The controller is
// suspended for the whole preload sequence and during programmatic
// animations via SetEnabled.
type DragController struct {
	stage  *Stage
	cfg    DragConfig
	groups []*Group

	enabled bool
	pressed bool
	active  *Group
	startX  float64
	startY  float64
	base    Vec2
}

// NewDragController creates an enabled drag controller over the groups.
func NewDragController(stage *Stage, cfg DragConfig, groups []*Group) *DragController {
	return &DragController{stage: stage, cfg: cfg, groups: groups, enabled: true}
}

// SetEnabled toggles dragging for all groups. Disabling mid-drag releases
// the active group where it stands.
func (d *DragController) SetEnabled(enabled bool) {
	d.enabled = enabled
	if !enabled {
		d.active = nil
	}
}

// Enabled reports whether dragging is active.
func (d *DragController) Enabled() bool {
	return d.enabled
}

// Margin returns the safe-area inset for the current breakpoint: desktop
// keeps a fixed margin, mobile runs nearly flush.
func (d *DragController) Margin() float64 {
	if d.stage.Breakpoint() == BreakpointMobile {
		return d.cfg.MobileMargin
	}
	return d.cfg.DesktopMargin
}

// SafeRect returns the rectangle groups must stay inside.
func (d *DragController) SafeRect() Rect {
	return d.stage.Bounds().Inset(d.Margin())
}

// HandlePointer feeds one pointer sample through the drag state machine.
func (d *DragController) HandlePointer(ev PointerEvent) {
	switch {
	case ev.Pressed && !d.pressed:
		d.pressed = true
		if !d.enabled {
			return
		}
		if g := d.hitGroup(ev.X, ev.Y); g != nil {
			d.active = g
			d.startX, d.startY = ev.X, ev.Y
			d.base = d.stage.Offset(g.Root)
		}
	case ev.Pressed && d.pressed:
		if d.active == nil || !d.enabled {
			return
		}
		d.stage.SetOffset(d.active.Root, d.base.X+ev.X-d.startX, d.base.Y+ev.Y-d.startY)
		d.ClampGroup(d.active)
	default:
		d.pressed = false
		d.active = nil
	}
}

// hitGroup returns the topmost group whose handle contains the point.
func (d *DragController) hitGroup(x, y float64) *Group {
	for i := len(d.groups) - 1; i >= 0; i-- {
		g := d.groups[i]
		if g == nil || g.Handle == nil || !g.Handle.Interactive {
			continue
		}
		if d.stage.BBox(g.Handle).Contains(x, y) {
			return g
		}
	}
	return nil
}

// ClampGroup nudges the group's bounding box into the safe rectangle. The
// correction is purely additive — only the distance by which an edge exceeds
// the bound is applied — so a group already inside is untouched, down to the
// rendered transform string.
func (d *DragController) ClampGroup(g *Group) {
	if g == nil || g.Root == nil {
		return
	}
	box := d.stage.BBox(g.Root)
	safe := d.SafeRect()

	var dx, dy float64
	if box.X+box.Width > safe.X+safe.Width {
		dx = safe.X + safe.Width - (box.X + box.Width)
	}
	if box.X < safe.X {
		dx = safe.X - box.X
	}
	if box.Y+box.Height > safe.Y+safe.Height {
		dy = safe.Y + safe.Height - (box.Y + box.Height)
	}
	if box.Y < safe.Y {
		dy = safe.Y - box.Y
	}

	if dx != 0 || dy != 0 {
		d.stage.NudgeOffset(g.Root, dx, dy)
	}
}

// ClampAll clamps every group. Used after viewport resizes.
func (d *DragController) ClampAll() {
	for _, g := range d.groups {
		d.ClampGroup(g)
	}
}
