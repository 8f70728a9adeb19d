package emblem

import "strconv"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localAffine computes an element's local affine matrix from its translate
// offset and uniform scale. Returns [a, b, c, d, tx, ty].
//
// Composition order: Scale -> Translate(offset). Scaling is about the local
// origin, matching the serialized "translate(...) scale(...)" attribute, so
// a scale change moves the element's visual center; the scale controller
// compensates for that drift explicitly.
func localAffine(offset Vec2, scale float64) [6]float64 {
	return [6]float64{scale, 0, 0, scale, offset.X, offset.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect applies an affine matrix to an axis-aligned rectangle.
// Valid for translate/scale matrices only (no rotation in this system).
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ftoa formats a coordinate for transform and path attributes. Shortest
// representation that round-trips, so recomposition of unchanged values
// produces byte-identical strings.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// composeTransform serializes a translate offset and uniform scale into a
// transform attribute string. The translate part is always present; the
// scale part is omitted at exactly 1 so untouched elements keep the shortest
// form.
func composeTransform(offset Vec2, scale float64) string {
	s := "translate(" + ftoa(offset.X) + " " + ftoa(offset.Y) + ")"
	if scale != 1 {
		s += " scale(" + ftoa(scale) + ")"
	}
	return s
}
