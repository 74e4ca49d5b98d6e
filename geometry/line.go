package geometry

import "fmt"

// Line is an infinite line stored as the implicit equation Ax + By + C = 0.
// (A, B) is a normal of the line, so a well-formed line never has both zero.
// The representation is not canonical: two triples denote the same line
// whenever one is a nonzero multiple of the other, which is what IsSame
// checks.
type Line struct {
	A, B, C int64
}

// NewLine builds a line straight from equation coefficients.
func NewLine(a, b, c int64) Line {
	if a == 0 && b == 0 {
		fatalf("line %d*x + %d*y + %d = 0 has a zero normal", a, b, c)
	}
	return Line{A: a, B: b, C: c}
}

// NewLineFromPoints gives the line through two distinct points.
func NewLineFromPoints(p, q Point) Line {
	if p.Equal(q) {
		fatalf("cannot build a line out of the single point %s", p.String())
	}
	return lineThrough(p, q)
}

// NewLineFromRay gives the supporting line of a ray with a real direction.
func NewLineFromRay(ray Ray) Line {
	if ray.Direction.IsZero() {
		fatalf("cannot build a line from a ray with zero direction")
	}
	return ray.supportingLine()
}

// lineThrough is the unchecked core of NewLineFromPoints: a and b come from
// the direction between the points, and c makes the equation vanish at both.
// The predicates use this raw form instead of the constructor because they
// must stay total on degenerate input: two coincident points yield the
// all-zero equation, whose sign tests then put every point "on the line",
// and that is what the containment formulas want.
func lineThrough(p, q Point) Line {
	return Line{
		A: q.Y - p.Y,
		B: p.X - q.X,
		C: q.X*p.Y - p.X*q.Y,
	}
}

// Eval plugs a point into the equation. Zero means the point is on the line;
// otherwise the sign tells which half plane the point is in.
func (line *Line) Eval(point Point) int64 {
	return line.A*point.X + line.B*point.Y + line.C
}

// IsParallel is the cross product of the two normals being zero. Opposite
// directions are still parallel.
func (line *Line) IsParallel(other Line) bool {
	return line.A*other.B == line.B*other.A
}

// IsSame reports whether the two equations denote the same point set, i.e.
// whether the triples agree up to a nonzero scalar multiple. With integer
// coefficients that is pairwise proportionality: all three 2x2 minors of the
// coefficient matrix vanish. The (a, c) minor is not redundant; without it,
// every pair of vertical lines would pass, since their b coefficients make
// the (b, c) minor vacuous.
func (line *Line) IsSame(other Line) bool {
	return line.IsParallel(other) &&
		line.C*other.B == line.B*other.C &&
		line.C*other.A == line.A*other.C
}

// WithinDistance reports whether the perpendicular distance between two
// parallel lines is at most radius, without ever leaving the integers:
// (c1-c2)^2 <= radius^2 * (a^2 + b^2). It assumes the two equations carry the
// identical (a, b) pair; Circle arranges that by building both lines from the
// same direction vector. A radius of zero reports false unconditionally.
func (line *Line) WithinDistance(other Line, radius int64) bool {
	if radius == 0 {
		return false
	}
	d := line.C - other.C
	return d*d <= radius*radius*(line.A*line.A+line.B*line.B)
}

// Move translates the line rigidly. Substituting x-v.X and y-v.Y into the
// equation only changes the constant term.
func (line *Line) Move(v Vector) Shape {
	line.C -= line.A*v.X + line.B*v.Y
	return line
}

func (line *Line) ContainsPoint(point Point) bool {
	return line.Eval(point) == 0
}

// CrossesSegment reports whether the line meets the closed segment: the two
// endpoint evaluations must not sit strictly on the same side. Each
// evaluation is already a product of coordinates, so we compare signs rather
// than multiply them into a possibly overflowing product.
func (line *Line) CrossesSegment(s Segment) bool {
	return productNonPositive(line.Eval(s.Begin), line.Eval(s.End))
}

func (line *Line) Clone() Shape {
	l := *line
	return &l
}

func (line *Line) String() string {
	return fmt.Sprintf("Line(%d, %d, %d)", line.A, line.B, line.C)
}
