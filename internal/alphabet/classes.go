package alphabet

import "unicode"

// HasAllClasses reports whether s contains at least one upper case letter,
// one lower case letter and one digit. Each rune counts towards the first
// class it matches, in that order.
func HasAllClasses(s string) bool {
	var upper, lower, digit bool

	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if upper && lower && digit {
			return true
		}
	}

	return false
}
