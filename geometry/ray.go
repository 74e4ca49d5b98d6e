package geometry

import "fmt"

// Ray is a half line: Begin plus every point reachable from it along
// Direction. The direction is stored exactly as given, never normalized, and
// its magnitude does not matter to any predicate. A zero direction makes the
// ray degenerate; the formulas are left to run as they are, and they end up
// treating such a ray as containing everything.
type Ray struct {
	Begin     Point
	Direction Vector
}

func NewRay(begin Point, direction Vector) Ray {
	return Ray{Begin: begin, Direction: direction}
}

// NewRayFromPoints aims the ray from begin through a second point. The full
// displacement becomes the direction, unreduced.
func NewRayFromPoints(begin, through Point) Ray {
	return Ray{Begin: begin, Direction: through.Sub(begin)}
}

// supportingLine is the implicit equation of the line the ray lies on. This
// is a raw struct build rather than NewLineFromRay because the predicates
// must stay total: a zero-direction ray yields the all-zero equation here,
// and the sign tests downstream do the rest.
func (ray *Ray) supportingLine() Line {
	a := ray.Direction.Y
	b := -ray.Direction.X
	return Line{A: a, B: b, C: -a*ray.Begin.X - b*ray.Begin.Y}
}

// ContainsPoint reports whether the point lies on the ray: on the supporting
// line, and not behind Begin. The forward test is closed, so Begin itself
// counts.
func (ray *Ray) ContainsPoint(point Point) bool {
	line := ray.supportingLine()
	if !line.ContainsPoint(point) {
		return false
	}
	return point.Sub(ray.Begin).Dot(ray.Direction) >= 0
}

// CrossesSegment reports whether the ray meets the closed segment. The
// segment has to straddle the ray's supporting line at all. If the two
// supporting lines coincide, the question collapses to whether either
// endpoint lies on the ray. Otherwise the lines meet in a single point,
// found by Cramer's rule on the two equations, and the ray accepts it when
// it is not behind Begin. The intersection coordinates come out of plain
// integer division, truncated toward zero, and the forward test is defined
// on that truncated point.
func (ray *Ray) CrossesSegment(s Segment) bool {
	rayLine := ray.supportingLine()
	segLine := lineThrough(s.Begin, s.End)
	if !rayLine.CrossesSegment(s) {
		return false
	}
	if rayLine.IsSame(segLine) {
		return ray.ContainsPoint(s.Begin) || ray.ContainsPoint(s.End)
	}
	xNum := Determinant(Vector{X: rayLine.C, Y: rayLine.B}, Vector{X: segLine.C, Y: segLine.B})
	yNum := Determinant(Vector{X: rayLine.A, Y: rayLine.C}, Vector{X: segLine.A, Y: segLine.C})
	den := -Determinant(Vector{X: rayLine.A, Y: rayLine.B}, Vector{X: segLine.A, Y: segLine.B})
	// A zero den means parallel supporting lines, and every parallel case
	// that survives the gates above is degenerate and went through IsSame.
	// The guard only keeps the division total.
	var x, y int64
	if den != 0 {
		x = xNum / den
		y = yNum / den
	}
	toIntersection := Vector{X: x - ray.Begin.X, Y: y - ray.Begin.Y}
	return toIntersection.Dot(ray.Direction) >= 0
}

// Move slides Begin. The direction is position free and stays put.
func (ray *Ray) Move(v Vector) Shape {
	ray.Begin = ray.Begin.Translate(v)
	return ray
}

func (ray *Ray) Clone() Shape {
	r := *ray
	return &r
}

func (ray *Ray) String() string {
	return fmt.Sprintf("Ray(%s, %s)", ray.Begin.String(), ray.Direction.String())
}
