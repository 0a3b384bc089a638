package recurrence

import (
	"fmt"
	"reflect"
)

// Size returns the number of leaf elements in v. Slices and arrays recurse;
// every other value counts as a single leaf. A nil value and an empty
// container both count zero. Values of kind chan, func, or unsafe pointer
// are rejected with ErrBadInput.
//
// Size([]any{1, []any{2, 3}, []any{4, []any{5}}}) == 5.
func Size(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		total := 0
		for i := 0; i < rv.Len(); i++ {
			n, err := Size(rv.Index(i).Interface())
			if err != nil {
				return 0, err
			}
			total += n
		}

		return total, nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return 0, fmt.Errorf("%w: cannot size value of kind %s", ErrBadInput, rv.Kind())
	default:
		return 1, nil
	}
}

// Depth returns the nesting depth of v: a leaf is 0, a slice of leaves is 1,
// and each additional level of nesting adds one. An empty container has
// depth 1 (the container itself). Same error contract as Size.
func Depth(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		deepest := 0
		for i := 0; i < rv.Len(); i++ {
			d, err := Depth(rv.Index(i).Interface())
			if err != nil {
				return 0, err
			}
			if d > deepest {
				deepest = d
			}
		}

		return deepest + 1, nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return 0, fmt.Errorf("%w: cannot measure value of kind %s", ErrBadInput, rv.Kind())
	default:
		return 0, nil
	}
}
