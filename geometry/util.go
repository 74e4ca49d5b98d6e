package geometry

// Often we want to treat a vertex slice as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// productNonPositive reports whether a*b <= 0 without forming the product.
// The callers hand us values that are themselves products of coordinates, so
// multiplying them again could overflow; comparing signs is the same test:
// a*b <= 0 is exactly "not both strictly positive and not both strictly
// negative".
func productNonPositive(a, b int64) bool {
	if a > 0 && b > 0 {
		return false
	}
	if a < 0 && b < 0 {
		return false
	}
	return true
}
