package chinaid

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrLengthMismatch is returned when the number is not long enough for the requested field.
	ErrLengthMismatch = errors.New("chinaid: length mismatch")

	// ErrNotADigit is returned when a position that must hold a digit holds something else.
	ErrNotADigit = errors.New("chinaid: not a digit")

	// ErrChecksumMismatch is returned when the 18th character differs from the computed check character.
	ErrChecksumMismatch = errors.New("chinaid: checksum mismatch")

	// ErrInvalidBirthDate is returned when the embedded birth date is not a calendar date.
	ErrInvalidBirthDate = errors.New("chinaid: invalid birth date")
)

// LengthError reports the observed character count.
// Exact is set when the operation needs exactly Want characters rather than at least Want.
type LengthError struct {
	Length int
	Want   int
	Exact  bool
}

func (e *LengthError) Error() string {
	if e.Exact {
		return fmt.Sprintf("chinaid: length must be %d, got %d", e.Want, e.Length)
	}
	return fmt.Sprintf("chinaid: length must be at least %d, got %d", e.Want, e.Length)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// DigitError reports a non-digit character and its zero-based position.
type DigitError struct {
	Char     rune
	Position int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("chinaid: %q at position %d is not a digit", e.Char, e.Position)
}

func (e *DigitError) Unwrap() error { return ErrNotADigit }

// ChecksumError reports the expected and the actual check character.
type ChecksumError struct {
	Expected rune
	Actual   rune
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("chinaid: check character must be %q, got %q", e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// BirthDateError reports the date substring that failed to parse.
// Err holds the underlying parse failure, if any.
type BirthDateError struct {
	Text string
	Err  error
}

func (e *BirthDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chinaid: invalid birth date %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("chinaid: invalid birth date %q", e.Text)
}

func (e *BirthDateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidBirthDate}
	}
	return []error{ErrInvalidBirthDate, e.Err}
}

// Kind returns the sentinel error that err wraps, or nil when err does not come from this package.
func Kind(err error) error {
	for _, kind := range []error{ErrLengthMismatch, ErrNotADigit, ErrChecksumMismatch, ErrInvalidBirthDate} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
