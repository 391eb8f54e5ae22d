// Package target holds named alphabet presets that match the password rules
// of specific external systems.
package target

import (
	"sort"

	"github.com/sethvargo/go-password/password"
)

const alnum = password.UpperLetters + password.LowerLetters + password.Digits

var builtin = map[string]string{
	"alnum":     alnum,
	"base32":    password.UpperLetters + "234567",
	"hex":       password.Digits + "abcdef",
	"urlsafe":   alnum + "-_",
	"shellsafe": alnum + "%+,-./:=@_",
	"printable": alnum + password.Symbols + "';",
}

// Registry is an immutable mapping from preset name to its character set.
type Registry struct {
	presets map[string]string
}

// New creates a Registry holding a copy of presets.
func New(presets map[string]string) Registry {
	m := make(map[string]string, len(presets))
	for name, chars := range presets {
		m[name] = chars
	}
	return Registry{presets: m}
}

// Default returns the built-in presets.
func Default() Registry {
	return New(builtin)
}

// Lookup returns the character set for name.
func (r Registry) Lookup(name string) (string, bool) {
	chars, ok := r.presets[name]
	return chars, ok
}

// Names returns all preset names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
