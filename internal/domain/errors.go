package domain

import "errors"

var (
	// ErrLengthTooShort indicates the requested length is below MinLength.
	ErrLengthTooShort = errors.New("password length below minimum")

	// ErrUnknownTarget indicates the named target preset does not exist.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrInsufficientAlphabet indicates too few unique characters remain
	// after exclusions.
	ErrInsufficientAlphabet = errors.New("insufficient alphabet")

	// ErrExhausted indicates the attempt budget ran out.
	ErrExhausted = errors.New("unable to produce a qualifying password within attempt budget")

	// ErrBreachService indicates the breach check could not be completed.
	ErrBreachService = errors.New("breach service failure")
)

// MinLength is the shortest password the tool will generate.
const MinLength = 12

// Process exit codes.
const (
	ExitOK             = 0
	ExitLengthTooShort = 1
	ExitUnknownTarget  = 2
	ExitFailure        = 3
	ExitUsage          = 64
)

// ExitCode maps an error to the process exit code for its kind.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrLengthTooShort):
		return ExitLengthTooShort
	case errors.Is(err, ErrUnknownTarget):
		return ExitUnknownTarget
	default:
		return ExitFailure
	}
}
