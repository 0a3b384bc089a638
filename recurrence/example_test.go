package recurrence_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/recurrence"
)

// ExampleFibonacci computes a term far past the int64 range.
func ExampleFibonacci() {
	f10, _ := recurrence.Fibonacci(10)
	f100, _ := recurrence.Fibonacci(100)
	fmt.Println(f10)
	fmt.Println(f100)
	// Output:
	// 55
	// 354224848179261915075
}

// ExampleSize counts the leaves of a nested value.
func ExampleSize() {
	n, _ := recurrence.Size([]any{1, []any{2, 3}, []any{4, []any{5}}})
	fmt.Println(n)
	// Output:
	// 5
}
