// Package textcheck validates simple structural properties of text:
// palindromes and balanced bracket expressions.
//
// What
//
//   - IsPalindrome: reads the same forwards and backwards after dropping
//     every rune that is not a letter or digit and folding case.
//     Unicode-aware: comparison is rune-wise, case folding uses unicode.ToLower.
//   - BalancedBrackets: (), [] and {} open and close in matching, properly
//     nested order; every other rune is ignored. Explicit stack, O(n).
//
// Usage
//
//	textcheck.IsPalindrome("A man, a plan, a canal: Panama") // true
//	textcheck.BalancedBrackets("({[]})")                     // true
//	textcheck.BalancedBrackets("([)]")                       // false
//
// Both functions are total: every string is in-domain and no error is
// ever returned.
package textcheck
