package geometry

import "fmt"

// Shape is the one contract every kind of shape in this package satisfies:
// Point, Segment, Ray, Line, Circle and Polygon. Callers that hold a Shape
// can translate it, ask whether it contains a point or crosses a segment,
// clone it, and print it, without knowing which kind they have.
//
// Move mutates the receiver and returns it, so translations chain:
// shape.Clone().Move(v) is the idiom for "a moved copy". Clone always
// returns a fully independent shape; mutating the clone never touches the
// original.
//
// There is deliberately no shared default behavior and no fallback: each
// shape implements every operation itself.
type Shape interface {
	Move(v Vector) Shape
	ContainsPoint(p Point) bool
	CrossesSegment(s Segment) bool
	Clone() Shape
	fmt.Stringer

	// This is a dummy method that keeps the shape set closed. It is never
	// called; it is a hint to the type system that prevents some unrelated
	// type from accidentally satisfying Shape just by matching the method
	// names above.
	shapeTypeHint()
}

// The shape kinds enumerated here with the type hint
func (*Point) shapeTypeHint()   {}
func (*Segment) shapeTypeHint() {}
func (*Ray) shapeTypeHint()     {}
func (*Line) shapeTypeHint()    {}
func (*Circle) shapeTypeHint()  {}
func (*Polygon) shapeTypeHint() {}
