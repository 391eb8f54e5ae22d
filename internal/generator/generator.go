package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"pwgen/internal/alphabet"
)

// Generator draws candidate passwords uniformly from an alphabet.
type Generator struct {
	alphabet []rune
	reader   io.Reader
}

// New creates a Generator backed by crypto/rand.
func New(a alphabet.Alphabet) *Generator {
	return NewWithReader(a, rand.Reader)
}

// NewWithReader creates a Generator reading randomness from r (for testing).
func NewWithReader(a alphabet.Alphabet, r io.Reader) *Generator {
	return &Generator{
		alphabet: a.Runes(),
		reader:   r,
	}
}

// Generate returns length characters, each drawn independently from the
// alphabet.
func (g *Generator) Generate(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	size := big.NewInt(int64(len(g.alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.reader, size)
		if err != nil {
			return "", fmt.Errorf("reading random index: %w", err)
		}
		sb.WriteRune(g.alphabet[n.Int64()])
	}

	return sb.String(), nil
}
