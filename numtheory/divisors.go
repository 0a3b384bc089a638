package numtheory

import (
	"errors"
	"fmt"
	"slices"
)

// ErrBadInput is returned when an argument is not a positive integer.
var ErrBadInput = errors.New("numtheory: argument must be positive")

// ProperDivisors returns every divisor of n strictly smaller than n, in
// ascending order. ProperDivisors(1) is empty. O(√n) time.
func ProperDivisors(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadInput, n)
	}

	divs := []int{}
	if n > 1 {
		divs = append(divs, 1)
	}
	// Pair each small divisor d with its cofactor n/d.
	for d := 2; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		divs = append(divs, d)
		if co := n / d; co != d && co != n {
			divs = append(divs, co)
		}
	}
	slices.Sort(divs)

	return divs, nil
}

// aliquotSum is the sum of the proper divisors of n (n >= 1 assumed checked).
func aliquotSum(n int) int {
	divs, _ := ProperDivisors(n)
	sum := 0
	for _, d := range divs {
		sum += d
	}

	return sum
}

// IsPerfect reports whether n equals the sum of its proper divisors.
// Returns ErrBadInput for n < 1.
func IsPerfect(n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: got %d", ErrBadInput, n)
	}

	return n > 1 && aliquotSum(n) == n, nil
}

// AreAmicable reports whether a and b form an amicable pair: each equals the
// proper-divisor sum of the other, and a != b. Returns ErrBadInput when
// either argument is below 1.
func AreAmicable(a, b int) (bool, error) {
	if a < 1 || b < 1 {
		return false, fmt.Errorf("%w: got (%d, %d)", ErrBadInput, a, b)
	}
	if a == b {
		return false, nil
	}

	return aliquotSum(a) == b && aliquotSum(b) == a, nil
}
