// Package qrerr defines the typed error kinds surfaced by the encoding
// pipeline. Every public entry point that can fail returns one of these,
// wrapped with github.com/pkg/errors at the point of detection so callers
// get a stack trace alongside the sentinel kind.
package qrerr

import "github.com/pkg/errors"

// Sentinel kinds. Compare with errors.Is; the wrapping applied at the
// point of detection preserves these for unwrapping.
var (
	// ErrUnsupportedConfiguration marks an illegal (size, ECC) pair or a
	// version/mode combination the standard forbids (e.g. Byte mode on Micro(1)).
	ErrUnsupportedConfiguration = errors.New("qrerr: unsupported configuration")

	// ErrPayloadTooLarge marks an encoded bit count exceeding the symbol's
	// data-bit capacity.
	ErrPayloadTooLarge = errors.New("qrerr: payload too large for symbol capacity")

	// ErrIllegalCharacter marks a payload byte outside the current mode's alphabet.
	ErrIllegalCharacter = errors.New("qrerr: illegal character for mode")

	// ErrOddKanjiLength marks Kanji input with an odd number of bytes.
	ErrOddKanjiLength = errors.New("qrerr: kanji payload has odd byte length")

	// ErrInternalInvariantViolated marks an assertion-class failure: these
	// indicate a bug in this package, never bad user input, and callers
	// should treat them as unreachable under validated inputs.
	ErrInternalInvariantViolated = errors.New("qrerr: internal invariant violated")
)

// Wrap attaches msg as context to the given sentinel kind, preserving it
// for errors.Is while adding a stack trace at the call site.
func Wrap(kind error, msg string) error {
	return errors.Wrap(kind, msg)
}

// Wrapf is Wrap with printf-style formatting.
func Wrapf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}
