// Package sorting provides the comparator contract and error definitions
// shared by the sort implementations.
package sorting

import "errors"

// ErrNilComparator is returned by the *Func sorts when compare is nil.
var ErrNilComparator = errors.New("sorting: nil comparator")

// Comparator is a three-way ordering over T: negative if a sorts before b,
// zero if they are equal under the order, positive if a sorts after b.
// For correct results it must describe a consistent total order.
type Comparator[T any] func(a, b T) int
