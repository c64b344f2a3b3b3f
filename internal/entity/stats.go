// Package entity provides the player profile and encounter enemies.
package entity

import "math"

// addSat adds b to a, saturating at the int bounds.
func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scale multiplies a base stat by m and rounds to the nearest integer,
// never going below floor.
func scale(base int, m float64, floor int) int {
	v := math.Round(float64(base) * m)
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if int(v) < floor {
		return floor
	}
	return int(v)
}
