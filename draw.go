package emblem

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawStage renders the element tree with ebiten vector primitives. This is
// the immediate-mode counterpart of WriteSVG: same tree, same transforms,
// raster output.
func drawStage(dst *ebiten.Image, s *Stage) {
	drawElement(dst, s, s.root)
}

func drawElement(dst *ebiten.Image, s *Stage, e *Element) {
	if e == nil || !e.Visible {
		return
	}

	switch e.Kind {
	case KindGroup:
		for _, c := range e.children {
			drawElement(dst, s, c)
		}
	case KindRect:
		m := s.worldAffine(e)
		box := transformRect(m, e.Base)
		vector.DrawFilledRect(dst,
			float32(box.X), float32(box.Y),
			float32(box.Width), float32(box.Height),
			e.Fill.toRGBA(), true)
	case KindCircle:
		m := s.worldAffine(e)
		cx, cy := transformPoint(m, e.Base.X+e.Base.Width/2, e.Base.Y+e.Base.Height/2)
		r := e.Base.Width / 2 * m[0]
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), e.Fill.toRGBA(), true)
	case KindPath:
		// Connector paths are single segments; stroke the endpoint pair
		// the trail solver recorded.
		x1, ok1 := attrFloat(e, "x1")
		y1, ok2 := attrFloat(e, "y1")
		x2, ok3 := attrFloat(e, "x2")
		y2, ok4 := attrFloat(e, "y2")
		if !(ok1 && ok2 && ok3 && ok4) {
			return
		}
		vector.StrokeLine(dst,
			float32(x1), float32(y1), float32(x2), float32(y2),
			float32(e.StrokeWidth), e.Fill.toRGBA(), true)
	}
}

func attrFloat(e *Element, key string) (float64, bool) {
	v := e.Attr(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
