package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 4
	expectedIndexes := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}
	for i := -4; i < 8; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestProductNonPositive(t *testing.T) {
	cases := []struct {
		a, b int64
		want bool
	}{
		{3, 5, false},
		{-3, -5, false},
		{3, -5, true},
		{-3, 5, true},
		{0, 7, true},
		{7, 0, true},
		{0, 0, true},
		// The whole point of the helper: these would overflow if multiplied.
		{math.MaxInt64, math.MaxInt64, false},
		{math.MaxInt64, math.MinInt64, true},
		{math.MinInt64, math.MinInt64, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, productNonPositive(c.a, c.b), "productNonPositive(%d, %d)", c.a, c.b)
	}
}
