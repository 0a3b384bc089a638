package recurrence

import (
	"fmt"
	"math/big"
)

// Fibonacci returns the nth Fibonacci number (F(0)=0, F(1)=1) as a *big.Int.
// Negative n is rejected with ErrNegativeIndex before any work is done.
// The strategy defaults to Iterative; see WithStrategy.
func Fibonacci(n int, opts ...Option) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrNegativeIndex, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch o.Strategy {
	case Memoized:
		return fibMemo(n, make(map[int]*big.Int, n+1)), nil
	default:
		return fibIter(n), nil
	}
}

// fibIter walks the recurrence bottom-up, carrying only the last two terms.
func fibIter(n int) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return a
}

// fibMemo is the textbook top-down formulation: each index is computed once
// and cached in memo, so the call tree collapses to a chain of depth n.
func fibMemo(n int, memo map[int]*big.Int) *big.Int {
	if n <= 1 {
		return big.NewInt(int64(n))
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := new(big.Int).Add(fibMemo(n-1, memo), fibMemo(n-2, memo))
	memo[n] = v

	return v
}
