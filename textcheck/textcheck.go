package textcheck

import "unicode"

// IsPalindrome reports whether s reads the same in both directions, ignoring
// case and every rune that is not a letter or digit. The empty string and
// strings with no significant runes are palindromes.
func IsPalindrome(s string) bool {
	significant := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			significant = append(significant, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(significant)-1; i < j; i, j = i+1, j-1 {
		if significant[i] != significant[j] {
			return false
		}
	}

	return true
}

// closerFor maps each opening bracket to its required closer.
var closerFor = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// BalancedBrackets reports whether every (, [ and { in s is closed by its
// matching counterpart in properly nested order. Runes other than the six
// bracket characters are ignored.
func BalancedBrackets(s string) bool {
	stack := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || closerFor[stack[len(stack)-1]] != r {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}
