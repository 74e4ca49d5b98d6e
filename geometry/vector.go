package geometry

import "fmt"

// Vector is a free 2D vector: a displacement with no position. All components
// are int64, and every product we ever take of them fits in int64 as long as
// the inputs fit in 32 bits, which keeps the predicates exact without pulling
// in big integers.
type Vector struct {
	X, Y int64
}

func NewVector(x, y int64) Vector {
	return Vector{X: x, Y: y}
}

// VectorBetween gives the displacement carrying `from` onto `to`.
func VectorBetween(from, to Point) Vector {
	return Vector{X: to.X - from.X, Y: to.Y - from.Y}
}

// Dot is the scalar product. Its sign tells you whether two vectors point
// into the same half plane, which is how all the "between-ness" and "forward
// half" tests work.
func (v Vector) Dot(w Vector) int64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the 2D cross product (the z component of the 3D one), equal to
// twice the signed area of the triangle the vectors span. It is positive when
// w is counterclockwise from v. Every orientation test in the package leans
// on this exact sign convention, so: Cross(v, w) == -Cross(w, v), always.
func (v Vector) Cross(w Vector) int64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale multiplies both components by n. Note that this is a copy, not a
// mutation; vectors are plain values everywhere in this package.
func (v Vector) Scale(n int64) Vector {
	return Vector{X: v.X * n, Y: v.Y * n}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// IsZero reports a zero-length vector. A ray built on one of these is
// degenerate; see Ray.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%d, %d)", v.X, v.Y)
}

// Determinant of the 2x2 matrix with rows a and b. This is the same number as
// a.Cross(b); it exists as a free function because the Cramer's rule code in
// Ray reads much more naturally in terms of determinants of coefficient pairs
// than in terms of oriented areas.
func Determinant(a, b Vector) int64 {
	return a.Cross(b)
}
