// Package numtheory provides divisor-based classifications of positive
// integers: proper divisors, perfect numbers, and amicable pairs.
//
// What
//
//   - ProperDivisors: every divisor of n smaller than n, ascending.
//     Found in O(√n) by pairing each divisor d ≤ √n with n/d.
//   - IsPerfect:      n equals the sum of its proper divisors (6 = 1+2+3).
//   - AreAmicable:    the proper-divisor sum of each number equals the other,
//     and the numbers differ (220 ↔ 284). A perfect number is
//     not amicable with itself.
//
// Errors
//
//   - ErrBadInput — any argument below 1; raised before any division.
//
// All functions are pure and safe for concurrent use.
package numtheory
