package service

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"pwgen/internal/alphabet"
)

// Structural rejection reasons.
var (
	ErrEdgeWhitespace = errors.New("leading or trailing whitespace")
	ErrAdjacentRepeat = errors.New("repeated adjacent character")
	ErrMissingClass   = errors.New("missing upper case, lower case or digit")
)

// Validate applies the structural rules to candidate. Diversity is only
// checked when requireDiversity is set.
func Validate(candidate string, requireDiversity bool) error {
	if hasEdgeWhitespace(candidate) {
		return ErrEdgeWhitespace
	}
	if hasAdjacentRepeat(candidate) {
		return ErrAdjacentRepeat
	}
	if requireDiversity && !alphabet.HasAllClasses(candidate) {
		return ErrMissingClass
	}
	return nil
}

func hasEdgeWhitespace(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

func hasAdjacentRepeat(s string) bool {
	prev := utf8.RuneError
	for i, r := range s {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}
	return false
}
