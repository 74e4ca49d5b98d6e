package geometry

import "fmt"

// Circle is a center with an integer radius. ContainsPoint means the closed
// disk; the perimeter test is exact equality of squared distances. A radius
// of zero degenerates the disk to its center point.
type Circle struct {
	Center Point
	Radius int64
}

func NewCircle(center Point, radius int64) Circle {
	if radius < 0 {
		fatalf("circle radius must not be negative: %d", radius)
	}
	return Circle{Center: center, Radius: radius}
}

func (c *Circle) ContainsPoint(point Point) bool {
	d := point.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// ContainsPointOnPerimeter is the exact boundary test: the squared distance
// must equal the squared radius, not merely stay within it.
func (c *Circle) ContainsPointOnPerimeter(point Point) bool {
	d := point.Sub(c.Center)
	return d.Dot(d) == c.Radius*c.Radius
}

// CrossesSegment reports whether the segment touches or crosses the circle
// itself, meaning the perimeter. A segment buried strictly inside the disk
// crosses nothing. The checks must run in this order; the distance arithmetic
// at the end assumes the degenerate arrangements were already dealt with.
func (c *Circle) CrossesSegment(s Segment) bool {
	// An endpoint sitting exactly on the perimeter settles it.
	if c.ContainsPointOnPerimeter(s.Begin) || c.ContainsPointOnPerimeter(s.End) {
		return true
	}
	// One endpoint strictly inside and the other strictly outside: the
	// segment has to exit through the perimeter somewhere.
	containsBegin := c.ContainsPoint(s.Begin)
	containsEnd := c.ContainsPoint(s.End)
	if containsBegin != containsEnd {
		return true
	}
	if !containsBegin && !containsEnd {
		// Both endpoints strictly outside. Compare the segment's supporting
		// line with the parallel line through the center; the two are built
		// from the same direction vector, so their a and b coefficients match
		// and WithinDistance applies.
		centerLine := lineThrough(c.Center, c.Center.Translate(VectorBetween(s.Begin, s.End)))
		segLine := lineThrough(s.Begin, s.End)
		if centerLine.IsSame(segLine) {
			// The segment's line runs through the center, so the segment
			// crosses the perimeter iff the center sits between the
			// endpoints.
			v1 := s.Begin.Sub(c.Center)
			v2 := s.End.Sub(c.Center)
			return v1.Dot(v2) < 0
		}
		if centerLine.WithinDistance(segLine, c.Radius) {
			return true
		}
	}
	return false
}

func (c *Circle) Move(v Vector) Shape {
	c.Center = c.Center.Translate(v)
	return c
}

func (c *Circle) Clone() Shape {
	circle := *c
	return &circle
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%s, %d)", c.Center.String(), c.Radius)
}
