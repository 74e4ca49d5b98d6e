package geometry

import "fmt"

// Point is a location on the integer grid. It is also the degenerate shape:
// it "contains" exactly one point (itself) and "crosses" exactly the segments
// that pass through it.
type Point struct {
	X, Y int64
}

func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Sub gives the displacement from point to p, as a vector. Note the order:
// a.Sub(b) points from b toward a, just like arithmetic a - b.
func (p *Point) Sub(point Point) Vector {
	return Vector{X: p.X - point.X, Y: p.Y - point.Y}
}

// Translate is the pure counterpart of Move: it leaves the receiver alone and
// hands back the shifted point.
func (p *Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p *Point) Equal(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// Move translates the point in place and returns it, so calls can chain.
func (p *Point) Move(v Vector) Shape {
	p.X += v.X
	p.Y += v.Y
	return p
}

func (p *Point) ContainsPoint(point Point) bool {
	return p.Equal(point)
}

// CrossesSegment is containment with the roles flipped: a point crosses a
// segment exactly when the segment passes through it. We delegate to the
// segment's own test so there is a single source of truth for
// point-on-segment.
func (p *Point) CrossesSegment(s Segment) bool {
	return s.ContainsPoint(*p)
}

func (p *Point) Clone() Shape {
	point := *p
	return &point
}

func (p *Point) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}
