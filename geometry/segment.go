package geometry

import "fmt"

// Segment is the closed segment between two endpoints. The endpoints are
// owned copies, never shared. A degenerate segment whose endpoints coincide
// behaves exactly like a point; none of the predicates special-case it.
type Segment struct {
	Begin, End Point
}

func NewSegment(begin, end Point) Segment {
	return Segment{Begin: begin, End: end}
}

// ContainsPoint reports whether the point lies on the segment, endpoints
// included. Let v1 and v2 run from the two endpoints to the point. The point
// is on the supporting line iff v1 and v2 are collinear (cross is zero), and
// between the endpoints iff they face opposite ways (dot <= 0; the dot hits
// zero exactly at an endpoint). A degenerate segment falls out of the same
// formulas: v1 equals v2, the dot is a squared length, and only the endpoint
// itself passes.
func (s *Segment) ContainsPoint(point Point) bool {
	v1 := point.Sub(s.Begin)
	v2 := point.Sub(s.End)
	return v1.Cross(v2) == 0 && v1.Dot(v2) <= 0
}

// CrossesSegment reports whether the two closed segments share at least one
// point. Touching at a single point counts.
//
// The straddle test runs first: each segment's supporting line has to cross
// the other segment. That alone is not enough for collinear segments, where
// every endpoint sits on both lines and the straddle test passes even when
// the segments are far apart, so when neither endpoint of other lies on the
// receiver we additionally require (other.Begin-Begin)·(other.End-End) <= 0,
// which rejects exactly the disjoint collinear arrangements. When an endpoint
// of other does lie on the receiver, that is already a shared point.
func (s *Segment) CrossesSegment(other Segment) bool {
	abLine := lineThrough(s.Begin, s.End)
	cdLine := lineThrough(other.Begin, other.End)
	if !abLine.CrossesSegment(other) || !cdLine.CrossesSegment(*s) {
		return false
	}
	if !s.ContainsPoint(other.Begin) && !s.ContainsPoint(other.End) {
		v1 := other.Begin.Sub(s.Begin)
		v2 := other.End.Sub(s.End)
		return v1.Dot(v2) <= 0
	}
	return true
}

// Move translates both endpoints by the same vector.
func (s *Segment) Move(v Vector) Shape {
	s.Begin = s.Begin.Translate(v)
	s.End = s.End.Translate(v)
	return s
}

func (s *Segment) Clone() Shape {
	seg := *s
	return &seg
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment(%s, %s)", s.Begin.String(), s.End.String())
}
