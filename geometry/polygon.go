package geometry

import (
	"strings"
)

// Polygon is an ordered vertex list. Edges are implied cyclically, vertex i
// to vertex i+1 with the last wrapping back to the first, and are built on
// demand; there is no stored edge list to fall out of sync. Vertices may
// wind either way. The predicates assume the outline does not self-intersect
// but nothing validates that.
type Polygon struct {
	Points []Point
}

// NewPolygon copies the vertices so the polygon owns its data. Any count is
// accepted, including zero; an empty polygon contains nothing and crosses
// nothing.
func NewPolygon(points []Point) Polygon {
	owned := make([]Point, len(points))
	copy(owned, points)
	return Polygon{Points: owned}
}

// Edge gives side i, running from vertex i to the cyclically next vertex.
func (poly *Polygon) Edge(i int) Segment {
	next := poly.Points[CircularIndex(i+1, len(poly.Points))]
	return Segment{Begin: poly.Points[i], End: next}
}

// ContainsPoint casts rays in two fixed directions and calls the point
// inside if either cast says so. A single cast direction can run straight
// along an edge or graze a chain of vertices, corrupting its parity count,
// but an arrangement that fools the horizontal direction and the (13, 2)
// direction at once would have to be contrived on purpose. Boundary points
// are always inside; each cast checks every edge for direct containment
// before counting anything.
func (poly *Polygon) ContainsPoint(point Point) bool {
	return poly.ContainsPointByRayCast(point, Vector{X: 1, Y: 0}) ||
		poly.ContainsPointByRayCast(point, Vector{X: 13, Y: 2})
}

// ContainsPointByRayCast is one even-odd pass with a caller-chosen cast
// direction: a point is inside when it sits on an edge, or when the ray from
// it crosses the outline an odd number of times.
func (poly *Polygon) ContainsPointByRayCast(point Point, direction Vector) bool {
	ray := Ray{Begin: point, Direction: direction}
	crossings := 0
	for i := range poly.Points {
		edge := poly.Edge(i)
		if edge.ContainsPoint(point) {
			return true
		}
		if ray.CrossesSegment(edge) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// CrossesSegment reports whether any edge of the outline crosses the
// segment. A segment strictly interior to the polygon touches no edge and
// does not cross.
func (poly *Polygon) CrossesSegment(s Segment) bool {
	for i := range poly.Points {
		edge := poly.Edge(i)
		if edge.CrossesSegment(s) {
			return true
		}
	}
	return false
}

// Move translates every vertex.
func (poly *Polygon) Move(v Vector) Shape {
	for i := range poly.Points {
		poly.Points[i] = poly.Points[i].Translate(v)
	}
	return poly
}

// Clone deep-copies the vertex slice, so the copy and the original can be
// moved independently.
func (poly *Polygon) Clone() Shape {
	points := make([]Point, len(poly.Points))
	copy(points, poly.Points)
	return &Polygon{Points: points}
}

func (poly *Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i := range poly.Points {
		parts[i] = poly.Points[i].String()
	}
	return "Polygon(" + strings.Join(parts, ", ") + ")"
}

// DoubledSignedArea is the shoelace sum over the cyclic vertex list: twice
// the enclosed area, positive for counterclockwise winding. Keeping the
// doubling keeps the value an exact integer.
func (poly *Polygon) DoubledSignedArea() int64 {
	var area int64
	for i := range poly.Points {
		vertex := poly.Points[i]
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.X*next.Y - next.X*vertex.Y
	}
	return area
}

func (poly *Polygon) IsCCW() bool {
	return poly.DoubledSignedArea() > 0
}

func (poly *Polygon) IsCW() bool {
	return poly.DoubledSignedArea() < 0
}

// Reverse gives a copy with the vertex order flipped, which negates the
// winding without changing the outline.
func (poly *Polygon) Reverse() Polygon {
	points := make([]Point, 0, len(poly.Points))
	for i := len(poly.Points) - 1; i >= 0; i-- {
		points = append(points, poly.Points[i])
	}
	return Polygon{Points: points}
}
