package alphabet

import (
	"fmt"
	"strings"

	"pwgen/internal/domain"
	"pwgen/internal/target"

	"github.com/sethvargo/go-password/password"
)

// MinSize is the minimum number of unique characters an Alphabet may hold.
const MinSize = 12

// punctuation is the full ASCII punctuation set. go-password leaves out the
// quote and semicolon.
const punctuation = password.Symbols + "';"

// Options describes where the characters of an Alphabet come from.
type Options struct {
	// Base is the starting character set. Empty means DefaultBase(true).
	Base string
	// Target names a preset that replaces Base entirely.
	Target string
	// Exclude lists characters removed from the active set.
	Exclude string
}

// Alphabet is an immutable set of unique characters. Characters keep the
// order of their first occurrence in the source set.
type Alphabet struct {
	runes []rune
}

// DefaultBase returns upper and lower case letters, digits and space, plus
// punctuation when requested.
func DefaultBase(withPunctuation bool) string {
	base := password.UpperLetters + password.LowerLetters + password.Digits
	if withPunctuation {
		base += punctuation
	}
	return base + " "
}

// Build produces the final Alphabet for opts, resolving Target against reg.
func Build(opts Options, reg target.Registry) (Alphabet, error) {
	source := opts.Base
	if source == "" {
		source = DefaultBase(true)
	}

	if opts.Target != "" {
		chars, ok := reg.Lookup(opts.Target)
		if !ok {
			return Alphabet{}, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, opts.Target)
		}
		source = chars
	}

	a := New(source, opts.Exclude)
	if a.Len() < MinSize {
		return Alphabet{}, fmt.Errorf("%w: %d unique characters, need at least %d",
			domain.ErrInsufficientAlphabet, a.Len(), MinSize)
	}

	return a, nil
}

// New returns the unique characters of chars that do not appear in exclude.
// It does not enforce MinSize; use Build for validated alphabets.
func New(chars, exclude string) Alphabet {
	seen := make(map[rune]struct{}, len(chars))
	runes := make([]rune, 0, len(chars))

	for _, r := range chars {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if strings.ContainsRune(exclude, r) {
			continue
		}
		runes = append(runes, r)
	}

	return Alphabet{runes: runes}
}

// Len returns the number of unique characters.
func (a Alphabet) Len() int {
	return len(a.runes)
}

// Runes returns a copy of the characters.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a.runes {
		if c == r {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string {
	return string(a.runes)
}
