package service

import (
	"context"
	"fmt"
	"log/slog"

	"pwgen/internal/alphabet"
	"pwgen/internal/domain"
)

// MaxAttempts is the number of candidates drawn before giving up. Every
// drawn candidate consumes one attempt, whether a structural rule or the
// breach checker rejects it.
const MaxAttempts = 10

// CandidateSource defines the interface for drawing raw candidates.
type CandidateSource interface {
	Generate(length int) (string, error)
}

// BreachChecker reports whether a candidate is known to be breached.
type BreachChecker interface {
	IsBreached(ctx context.Context, candidate string) (bool, error)
}

// PasswordService produces passwords that satisfy the strength rules.
type PasswordService struct {
	source           CandidateSource
	breach           BreachChecker
	requireDiversity bool
	maxAttempts      int
	logger           *slog.Logger
}

// Option configures a PasswordService.
type Option func(*PasswordService)

// WithBreachChecker enables the breach check. Without it no candidate is
// ever sent anywhere.
func WithBreachChecker(c BreachChecker) Option {
	return func(s *PasswordService) {
		s.breach = c
	}
}

// WithMaxAttempts overrides MaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(s *PasswordService) {
		s.maxAttempts = n
	}
}

// WithLogger sets the logger for rejection diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *PasswordService) {
		s.logger = l
	}
}

// NewPasswordService creates a PasswordService drawing from source. The
// diversity rule is enforced only if a itself contains upper case, lower
// case and digit characters.
func NewPasswordService(a alphabet.Alphabet, source CandidateSource, opts ...Option) *PasswordService {
	s := &PasswordService{
		source:           source,
		requireDiversity: alphabet.HasAllClasses(a.String()),
		maxAttempts:      MaxAttempts,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns a password of length characters. The length is assumed
// to be validated by the caller. Returns domain.ErrExhausted if no candidate
// qualifies within the attempt budget and domain.ErrBreachService if the
// breach check cannot be completed.
func (s *PasswordService) Generate(ctx context.Context, length int) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate, err := s.source.Generate(length)
		if err != nil {
			return "", fmt.Errorf("drawing candidate: %w", err)
		}

		if err := Validate(candidate, s.requireDiversity); err != nil {
			s.logger.Debug("candidate rejected", "attempt", attempt, "reason", err)
			continue
		}

		if s.breach != nil {
			breached, err := s.breach.IsBreached(ctx, candidate)
			if err != nil {
				return "", fmt.Errorf("checking breach corpus: %w", err)
			}
			if breached {
				s.logger.Debug("candidate rejected", "attempt", attempt, "reason", "found in breach corpus")
				continue
			}
		}

		return candidate, nil
	}

	return "", fmt.Errorf("%w (%d attempts)", domain.ErrExhausted, s.maxAttempts)
}
