package scalar

import "math"

// Line is a float line stored as the implicit equation Ax + By + C = 0.
//
// Watch the construction convention: NewLineFromPoints derives the normal
// with the opposite sign from the geometry package (a = y1-y2 here, y2-y1
// there). Both triples describe the same point set, but coefficients are not
// interchangeable between the two packages.
type Line struct {
	A, B, C float64
}

func NewLine(a, b, c float64) Line {
	return Line{A: a, B: b, C: c}
}

// NewLineFromPoints gives the line through two points: a = y1-y2, b = x2-x1,
// c = x1*y2 - x2*y1.
func NewLineFromPoints(x1, y1, x2, y2 float64) Line {
	return Line{
		A: y1 - y2,
		B: x2 - x1,
		C: x1*y2 - x2*y1,
	}
}

// DirectionComponents reads a direction vector straight off the equation,
// (b, -a), except that a zero a stays a plain zero so callers never format a
// negative zero.
func (l Line) DirectionComponents() (dx, dy float64) {
	dx = l.B
	dy = -l.A
	if l.A == 0 {
		dy = l.A
	}
	return dx, dy
}

// IsParallel is the cross product of the two normals being zero.
func (l Line) IsParallel(m Line) bool {
	return l.A*m.B-l.B*m.A == 0
}

// IntersectionPoint solves the two equations by Cramer's rule. Check
// IsParallel first; handing in parallel lines divides by zero and returns
// the usual float infinities.
func (l Line) IntersectionPoint(m Line) (x, y float64) {
	xNum := l.C*m.B - l.B*m.C
	yNum := l.A*m.C - l.C*m.A
	den := -(l.A*m.B - l.B*m.A)
	return xNum / den, yNum / den
}

// ParallelDistance is the perpendicular distance between two parallel lines,
// |c2-c1| / sqrt(a^2+b^2). It assumes both equations are written at the same
// scale, meaning identical (a, b) pairs; rescale one of them first if not.
func (l Line) ParallelDistance(m Line) float64 {
	return math.Abs(m.C-l.C) / math.Sqrt(m.A*m.A+m.B*m.B)
}
