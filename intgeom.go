// An exact integer geometry package for Go.
//
// This package gives you 2D shapes on the integer grid (points, segments,
// rays, lines, circles, polygons) behind one polymorphic Shape contract, with
// containment, segment crossing, translation and cloning all computed in
// integer arithmetic only. No epsilons anywhere: a point is on a line or it
// is not.
package intgeom

import (
	"github.com/pkg/errors"

	"github.com/osuushi/intgeom/geometry"
)

type Shape = geometry.Shape
type Vector = geometry.Vector
type Point = geometry.Point
type Segment = geometry.Segment
type Ray = geometry.Ray
type Line = geometry.Line
type Circle = geometry.Circle
type Polygon = geometry.Polygon

// Parse builds a shape from a keyword and its flat integer parameters, the
// way the demo command reads them from stdin:
//
//	point x y
//	segment x1 y1 x2 y2
//	ray x1 y1 x2 y2      (begin, then a point the ray aims through)
//	line x1 y1 x2 y2     (two distinct points on it)
//	circle x y r
//	polygon x1 y1 ... xn yn
//
// Malformed shapes (a line from one point, a negative radius) come back as
// errors, converted from the geometry package's construction panics.
func Parse(kind string, params []int64) (shape Shape, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			shape = nil
			err = recoveredErr
		}
	}()
	switch kind {
	case "point":
		if err := wantParams(kind, params, 2); err != nil {
			return nil, err
		}
		p := geometry.NewPoint(params[0], params[1])
		return &p, nil
	case "segment":
		if err := wantParams(kind, params, 4); err != nil {
			return nil, err
		}
		s := geometry.NewSegment(geometry.NewPoint(params[0], params[1]), geometry.NewPoint(params[2], params[3]))
		return &s, nil
	case "ray":
		if err := wantParams(kind, params, 4); err != nil {
			return nil, err
		}
		r := geometry.NewRayFromPoints(geometry.NewPoint(params[0], params[1]), geometry.NewPoint(params[2], params[3]))
		return &r, nil
	case "line":
		if err := wantParams(kind, params, 4); err != nil {
			return nil, err
		}
		l := geometry.NewLineFromPoints(geometry.NewPoint(params[0], params[1]), geometry.NewPoint(params[2], params[3]))
		return &l, nil
	case "circle":
		if err := wantParams(kind, params, 3); err != nil {
			return nil, err
		}
		c := geometry.NewCircle(geometry.NewPoint(params[0], params[1]), params[2])
		return &c, nil
	case "polygon":
		if len(params)%2 != 0 {
			return nil, errors.Errorf("polygon takes x y pairs; got %d numbers", len(params))
		}
		points := make([]geometry.Point, len(params)/2)
		for i := range points {
			points[i] = geometry.NewPoint(params[2*i], params[2*i+1])
		}
		poly := geometry.NewPolygon(points)
		return &poly, nil
	default:
		return nil, errors.Errorf("unknown shape keyword %q", kind)
	}
}

func wantParams(kind string, params []int64, n int) error {
	if len(params) != n {
		return errors.Errorf("%s takes %d numbers; got %d", kind, n, len(params))
	}
	return nil
}
