package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRayFromPoints(t *testing.T) {
	ray := NewRayFromPoints(NewPoint(1, 1), NewPoint(4, 3))
	assert.Equal(t, Ray{Point{1, 1}, Vector{3, 2}}, ray)
}

func TestRayContainsPoint(t *testing.T) {
	// A ray sitting on y = 1, pointing in the +x direction.
	ray := NewRay(NewPoint(1, 1), NewVector(2, 0))

	cases := []struct {
		name  string
		point Point
		want  bool
	}{
		{"ahead of begin", NewPoint(5, 1), true},
		{"begin itself", NewPoint(1, 1), true},
		{"behind begin", NewPoint(0, 1), false},
		{"off the line", NewPoint(5, 2), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ray.ContainsPoint(c.point))
		})
	}
}

func TestRayCrossesSegment(t *testing.T) {
	cases := []struct {
		name    string
		ray     Ray
		segment Segment
		want    bool
	}{
		{
			"crossing ahead",
			NewRay(NewPoint(0, 0), NewVector(1, 1)),
			NewSegment(NewPoint(5, 0), NewPoint(0, 5)),
			true,
		},
		{
			"crossing behind",
			NewRay(NewPoint(0, 0), NewVector(1, 1)),
			NewSegment(NewPoint(-5, 0), NewPoint(0, -5)),
			false,
		},
		{
			"segment never reaches the line",
			NewRay(NewPoint(0, 0), NewVector(1, 1)),
			NewSegment(NewPoint(3, 0), NewPoint(5, 1)),
			false,
		},
		{
			"vertical segment ahead",
			NewRay(NewPoint(1, 1), NewVector(2, 0)),
			NewSegment(NewPoint(4, 0), NewPoint(4, 3)),
			true,
		},
		{
			"vertical segment behind",
			NewRay(NewPoint(1, 1), NewVector(2, 0)),
			NewSegment(NewPoint(-2, 0), NewPoint(-2, 3)),
			false,
		},
		{
			// The true intersection is at x = 10/3. Truncation pulls it to
			// x = 3, still ahead of begin, so the answer is unchanged.
			"fractional intersection ahead",
			NewRay(NewPoint(0, 0), NewVector(1, 0)),
			NewSegment(NewPoint(3, -1), NewPoint(4, 2)),
			true,
		},
		{
			"fractional intersection behind",
			NewRay(NewPoint(0, 0), NewVector(-1, 0)),
			NewSegment(NewPoint(3, -1), NewPoint(4, 2)),
			false,
		},
		{
			"touches only at begin",
			NewRay(NewPoint(0, 0), NewVector(1, 0)),
			NewSegment(NewPoint(0, 0), NewPoint(0, 5)),
			true,
		},
		{
			"collinear ahead",
			NewRay(NewPoint(0, 0), NewVector(1, 0)),
			NewSegment(NewPoint(3, 0), NewPoint(7, 0)),
			true,
		},
		{
			"collinear behind",
			NewRay(NewPoint(0, 0), NewVector(1, 0)),
			NewSegment(NewPoint(-7, 0), NewPoint(-3, 0)),
			false,
		},
		{
			"collinear spanning begin",
			NewRay(NewPoint(0, 0), NewVector(1, 0)),
			NewSegment(NewPoint(-3, 0), NewPoint(2, 0)),
			true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.ray.CrossesSegment(c.segment))
		})
	}
}

func TestRayZeroDirection(t *testing.T) {
	// A zero direction leaves the supporting line equation all zero, which
	// every point satisfies, so the degenerate ray swallows everything.
	ray := NewRay(NewPoint(5, 5), NewVector(0, 0))

	assert.True(t, ray.ContainsPoint(NewPoint(0, 0)))
	assert.True(t, ray.ContainsPoint(NewPoint(100, -3)))
	assert.True(t, ray.CrossesSegment(NewSegment(NewPoint(1, 2), NewPoint(3, 4))))
}

func TestRayMove(t *testing.T) {
	ray := NewRay(NewPoint(1, 1), NewVector(2, 0))
	moved := ray.Move(NewVector(3, 4))

	assert.Same(t, &ray, moved)
	assert.Equal(t, Ray{Point{4, 5}, Vector{2, 0}}, ray, "the direction must not move")

	ray.Move(NewVector(-3, -4))
	assert.Equal(t, Ray{Point{1, 1}, Vector{2, 0}}, ray)
}

func TestRayClone(t *testing.T) {
	ray := NewRay(NewPoint(1, 1), NewVector(2, 0))
	clone := ray.Clone()

	clone.Move(NewVector(100, 100))
	assert.Equal(t, Ray{Point{1, 1}, Vector{2, 0}}, ray, "moving the clone must not touch the original")
}

func TestRayString(t *testing.T) {
	ray := NewRay(NewPoint(1, 1), NewVector(2, 0))
	assert.Equal(t, "Ray(Point(1, 1), Vector(2, 0))", ray.String())
}
