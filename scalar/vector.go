// Package scalar holds the floating-point companions to the integer kernel:
// lengths, areas, and intersection coordinates that do not exist on the
// integer grid. Nothing here feeds back into the geometry package; exactness
// stays over there, measurement lives here.
package scalar

import "math"

// Vec is a free 2D vector over float64.
type Vec struct {
	X, Y float64
}

func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross follows the same orientation convention as the integer kernel:
// positive when w is counterclockwise from v.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Scale(n float64) Vec {
	return Vec{X: v.X * n, Y: v.Y * n}
}

// TriangleArea is half the absolute cross product: the area of the triangle
// the two vectors span.
func TriangleArea(v1, v2 Vec) float64 {
	return 0.5 * math.Abs(v1.Cross(v2))
}
