package emblem

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG serializes the stage to an SVG document: group elements become
// <g> with their rendered transform attribute strings, circles and rects
// render their base boxes, and path elements emit their "d" data stroked by
// a linear gradient whose endpoints are the connector coordinates the trail
// solver wrote. Invisible elements are skipped; serialized attributes
// (markers like the loader-done flag) are carried through verbatim.
func (s *Stage) WriteSVG(w io.Writer) {
	width, height := s.Size()
	canvas := svg.New(w)
	canvas.Start(int(width), int(height))

	gradients := map[*Element]string{}
	collectGradients(s.root, gradients)
	if len(gradients) > 0 {
		canvas.Def()
		// Stable output order for diffable snapshots.
		els := make([]*Element, 0, len(gradients))
		for e := range gradients {
			els = append(els, e)
		}
		sort.Slice(els, func(i, j int) bool { return els[i].id < els[j].id })
		for _, e := range els {
			fmt.Fprintf(canvas.Writer,
				`<linearGradient id=%q gradientUnits="userSpaceOnUse" x1=%q y1=%q x2=%q y2=%q>`,
				gradients[e], e.Attr("x1"), e.Attr("y1"), e.Attr("x2"), e.Attr("y2"))
			fmt.Fprintln(canvas.Writer)
			fmt.Fprintln(canvas.Writer, `<stop offset="0" stop-color="#7db9ff"/>`)
			fmt.Fprintln(canvas.Writer, `<stop offset="1" stop-color="#2f6fd0"/>`)
			fmt.Fprintln(canvas.Writer, `</linearGradient>`)
		}
		canvas.DefEnd()
	}

	s.writeSVGElement(canvas, s.root, gradients)
	canvas.End()
}

// collectGradients assigns a gradient id to every visible path that carries
// gradient endpoint coordinates.
func collectGradients(e *Element, out map[*Element]string) {
	if e == nil || !e.Visible {
		return
	}
	if e.Kind == KindPath && e.Attr("x1") != "" {
		out[e] = fmt.Sprintf("grad-%d", len(out))
	}
	for _, c := range e.children {
		collectGradients(c, out)
	}
}

func (s *Stage) writeSVGElement(canvas *svg.SVG, e *Element, gradients map[*Element]string) {
	if e == nil || !e.Visible {
		return
	}

	switch e.Kind {
	case KindGroup:
		canvas.Group(groupAttrs(e)...)
		for _, c := range e.children {
			s.writeSVGElement(canvas, c, gradients)
		}
		canvas.Gend()
	case KindRect:
		canvas.Rect(int(e.Base.X), int(e.Base.Y), int(e.Base.Width), int(e.Base.Height),
			fillAttr(e.Fill))
	case KindCircle:
		cx := e.Base.X + e.Base.Width/2
		cy := e.Base.Y + e.Base.Height/2
		canvas.Circle(int(cx), int(cy), int(e.Base.Width/2), fillAttr(e.Fill))
	case KindPath:
		d := e.Attr("d")
		if d == "" {
			return
		}
		stroke := fmt.Sprintf(`stroke-width="%s"`, ftoa(e.StrokeWidth))
		paint := `stroke="#2f6fd0"`
		if id, ok := gradients[e]; ok {
			paint = fmt.Sprintf(`stroke="url(#%s)"`, id)
		}
		canvas.Path(d, `fill="none"`, paint, stroke)
	}
}

// groupAttrs builds the attribute list for a group: name, transform, and
// any serialized marker attributes.
func groupAttrs(e *Element) []string {
	attrs := []string{fmt.Sprintf("data-name=%q", e.Name)}
	if e.Transform != "" {
		attrs = append(attrs, fmt.Sprintf("transform=%q", e.Transform))
	}
	if len(e.Attrs) > 0 {
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, fmt.Sprintf("%s=%q", k, e.Attrs[k]))
		}
	}
	return attrs
}

func fillAttr(c Color) string {
	return fmt.Sprintf(`fill="rgb(%d,%d,%d)" fill-opacity="%s"`,
		int(c.R*255), int(c.G*255), int(c.B*255), ftoa(c.A))
}
