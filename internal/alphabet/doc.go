// Package alphabet builds and validates the character set passwords are
// drawn from.
//
// An Alphabet is constructed once from the default character set or a named
// target preset, minus any excluded characters, and is immutable afterwards.
// Building fails with domain.ErrInsufficientAlphabet when fewer than MinSize
// unique characters remain, which keeps the brute-force search space large
// even for narrow presets.
package alphabet
