package recurrence_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/recurrence"
)

// TestFibonacci_BaseCases pins the two defined base cases for both strategies.
func TestFibonacci_BaseCases(t *testing.T) {
	for _, s := range []recurrence.Strategy{recurrence.Iterative, recurrence.Memoized} {
		f0, err := recurrence.Fibonacci(0, recurrence.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, "0", f0.String())

		f1, err := recurrence.Fibonacci(1, recurrence.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, "1", f1.String())
	}
}

// TestFibonacci_KnownTerms checks small terms against hand-verified values
// and confirms the two strategies agree.
func TestFibonacci_KnownTerms(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	for n, w := range want {
		iter, err := recurrence.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, w, iter.Int64(), "Fibonacci(%d)", n)

		memo, err := recurrence.Fibonacci(n, recurrence.WithStrategy(recurrence.Memoized))
		require.NoError(t, err)
		assert.Zero(t, iter.Cmp(memo), "strategies disagree at n=%d", n)
	}
}

// TestFibonacci_BeyondInt64 verifies that big.Int carries terms past the
// int64 range: F(93) is the first term that no longer fits.
func TestFibonacci_BeyondInt64(t *testing.T) {
	f93, err := recurrence.Fibonacci(93)
	require.NoError(t, err)
	assert.Equal(t, "12200160415121876738", f93.String())
	assert.False(t, f93.IsInt64(), "F(93) must exceed int64")

	// Recurrence check at full precision: F(200) = F(199) + F(198).
	f198, _ := recurrence.Fibonacci(198)
	f199, _ := recurrence.Fibonacci(199)
	f200, _ := recurrence.Fibonacci(200)
	assert.Zero(t, f200.Cmp(new(big.Int).Add(f199, f198)))
}

// TestFibonacci_NegativeIndex: fail fast, before any recursion.
func TestFibonacci_NegativeIndex(t *testing.T) {
	_, err := recurrence.Fibonacci(-1)
	assert.ErrorIs(t, err, recurrence.ErrNegativeIndex)

	_, err = recurrence.Fibonacci(-100, recurrence.WithStrategy(recurrence.Memoized))
	assert.ErrorIs(t, err, recurrence.ErrNegativeIndex)
}

// TestFibonacci_UnknownStrategy: bad options surface as ErrBadInput.
func TestFibonacci_UnknownStrategy(t *testing.T) {
	_, err := recurrence.Fibonacci(5, recurrence.WithStrategy(recurrence.Strategy(99)))
	assert.ErrorIs(t, err, recurrence.ErrBadInput)
}

// TestSize covers the nested-leaf count, including the mixed-depth scenario.
func TestSize(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 0},
		{name: "scalar leaf", in: 42, want: 1},
		{name: "string leaf", in: "abc", want: 1},
		{name: "flat slice", in: []any{1, 2, 3}, want: 3},
		{name: "typed slice", in: []int{1, 2, 3, 4}, want: 4},
		{name: "empty slice", in: []any{}, want: 0},
		{name: "mixed nesting", in: []any{1, []any{2, 3}, []any{4, []any{5}}}, want: 5},
		{name: "deep single", in: []any{[]any{[]any{[]any{7}}}}, want: 1},
		{name: "nil element", in: []any{1, nil, 2}, want: 2},
		{name: "array", in: [3]int{1, 2, 3}, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := recurrence.Size(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSize_UnsupportedKind: values without a meaningful count are rejected.
func TestSize_UnsupportedKind(t *testing.T) {
	_, err := recurrence.Size([]any{1, make(chan int)})
	assert.ErrorIs(t, err, recurrence.ErrBadInput)

	_, err = recurrence.Size(func() {})
	assert.ErrorIs(t, err, recurrence.ErrBadInput)
}

// TestDepth covers nesting depth over the same shapes as Size.
func TestDepth(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 0},
		{name: "leaf", in: 42, want: 0},
		{name: "flat slice", in: []any{1, 2, 3}, want: 1},
		{name: "empty slice", in: []any{}, want: 1},
		{name: "mixed nesting", in: []any{1, []any{2, 3}, []any{4, []any{5}}}, want: 3},
		{name: "deep single", in: []any{[]any{[]any{[]any{7}}}}, want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := recurrence.Depth(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
