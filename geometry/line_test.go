package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineFromPoints(t *testing.T) {
	line := NewLineFromPoints(NewPoint(1, 1), NewPoint(3, 5))
	assert.Equal(t, Line{4, -2, -2}, line)

	// Both defining points satisfy the equation.
	assert.Equal(t, int64(0), line.Eval(NewPoint(1, 1)))
	assert.Equal(t, int64(0), line.Eval(NewPoint(3, 5)))

	t.Run("coincident points panic", func(t *testing.T) {
		require.Panics(t, func() {
			NewLineFromPoints(NewPoint(2, 2), NewPoint(2, 2))
		})
	})
}

func TestNewLine(t *testing.T) {
	line := NewLine(1, -2, 3)
	assert.Equal(t, Line{1, -2, 3}, line)

	t.Run("zero normal panics", func(t *testing.T) {
		require.Panics(t, func() {
			NewLine(0, 0, 5)
		})
	})
}

func TestLineEval(t *testing.T) {
	// The y axis, scaled by 5. Eval is positive to the right, negative to
	// the left, and zero on the line.
	yAxis := NewLineFromPoints(NewPoint(0, 0), NewPoint(0, 5))
	assert.Equal(t, Line{5, 0, 0}, yAxis)
	assert.Equal(t, int64(15), yAxis.Eval(NewPoint(3, 7)))
	assert.Equal(t, int64(-10), yAxis.Eval(NewPoint(-2, 1)))
	assert.Equal(t, int64(0), yAxis.Eval(NewPoint(0, 9)))
}

func TestLineContainsPoint(t *testing.T) {
	line := NewLineFromPoints(NewPoint(1, 1), NewPoint(3, 5))
	assert.True(t, line.ContainsPoint(NewPoint(2, 3)))
	assert.True(t, line.ContainsPoint(NewPoint(-1, -3)))
	assert.False(t, line.ContainsPoint(NewPoint(2, 4)))
}

func TestLineCrossesSegment(t *testing.T) {
	yAxis := NewLineFromPoints(NewPoint(0, 0), NewPoint(0, 5))

	cases := []struct {
		name    string
		segment Segment
		want    bool
	}{
		{"straddles the line", NewSegment(NewPoint(-1, 2), NewPoint(1, 2)), true},
		{"entirely to the right", NewSegment(NewPoint(1, 2), NewPoint(3, 4)), false},
		{"entirely to the left", NewSegment(NewPoint(-1, 2), NewPoint(-3, 4)), false},
		{"touches with an endpoint", NewSegment(NewPoint(0, 2), NewPoint(3, 2)), true},
		{"lies on the line", NewSegment(NewPoint(0, -1), NewPoint(0, 4)), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, yAxis.CrossesSegment(c.segment))
		})
	}
}

func TestLineIsParallel(t *testing.T) {
	line := NewLine(4, -2, -2)

	assert.True(t, line.IsParallel(NewLine(4, -2, 6)))
	assert.True(t, line.IsParallel(NewLine(-8, 4, 100)), "negative multiples are still parallel")
	assert.True(t, line.IsParallel(line))
	assert.False(t, line.IsParallel(NewLine(2, 4, 0)))
	vertical := NewLine(1, 0, 0)
	assert.False(t, vertical.IsParallel(NewLine(0, 1, 0)))
}

func TestLineIsSame(t *testing.T) {
	cases := []struct {
		name string
		a, b Line
		want bool
	}{
		{"identical coefficients", NewLine(4, -2, -2), NewLine(4, -2, -2), true},
		{"scaled coefficients", NewLine(4, -2, -2), NewLine(-8, 4, 4), true},
		{"parallel but offset", NewLine(4, -2, -2), NewLine(4, -2, 6), false},
		{"distinct vertical lines", NewLine(1, 0, 0), NewLine(1, 0, -10), false},
		{"distinct horizontal lines", NewLine(0, 1, 0), NewLine(0, 1, -3), false},
		{"not even parallel", NewLine(1, 0, 0), NewLine(0, 1, 0), false},
		{"same vertical line scaled", NewLine(1, 0, -3), NewLine(5, 0, -15), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.IsSame(c.b))
			assert.Equal(t, c.want, c.b.IsSame(c.a), "IsSame should not care about the order")
		})
	}
}

func TestLineWithinDistance(t *testing.T) {
	line := NewLine(1, 0, 0)
	other := NewLine(1, 0, -10) // ten units to the right

	assert.True(t, line.WithinDistance(other, 10))
	assert.True(t, line.WithinDistance(other, 11))
	assert.False(t, line.WithinDistance(other, 9))
	assert.False(t, line.WithinDistance(other, 0), "a zero radius never matches")
	assert.False(t, line.WithinDistance(line, 0), "not even for the line itself")
}

func TestLineMove(t *testing.T) {
	line := NewLine(1, 0, 0) // the y axis
	moved := line.Move(NewVector(3, 0))

	assert.Same(t, &line, moved)
	assert.Equal(t, Line{1, 0, -3}, line)
	assert.True(t, line.ContainsPoint(NewPoint(3, 5)))

	// Moving along the line itself changes nothing.
	line.Move(NewVector(0, 42))
	assert.Equal(t, Line{1, 0, -3}, line)

	line.Move(NewVector(-3, 0))
	assert.Equal(t, Line{1, 0, 0}, line)
}

func TestLineClone(t *testing.T) {
	line := NewLine(1, -2, 3)
	clone := line.Clone()

	clone.Move(NewVector(100, 100))
	assert.Equal(t, Line{1, -2, 3}, line, "moving the clone must not touch the original")
}

func TestLineString(t *testing.T) {
	line := NewLine(4, -2, -2)
	assert.Equal(t, "Line(4, -2, -2)", line.String())
}
