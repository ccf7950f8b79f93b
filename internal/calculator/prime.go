package calculator

import "math"

// MaxExactInteger is the largest integer every float64 below it represents exactly
const MaxExactInteger = 1 << 53

// IsPrime reports whether n is prime using trial division by odd numbers.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// primeCandidate returns the integer value of r if r is eligible for a badge:
// finite, integral, greater than one, and exactly representable.
func primeCandidate(r float64) (int64, bool) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	if r <= 1 || r > MaxExactInteger {
		return 0, false
	}
	if r != math.Trunc(r) {
		return 0, false
	}
	return int64(r), true
}
