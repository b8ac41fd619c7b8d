package chinaid

import (
	"strings"
	"time"
)

const (
	adminCodeEnd   = 6
	birthDateStart = 6
	birthDateEnd   = 14
	genderPos      = 16

	birthDateLayout = "20060102"
)

// ID is a candidate resident identity number.
// The zero value is an empty, invalid number.
type ID struct {
	raw string
}

// New upper-cases raw and wraps it without any validation.
func New(raw string) ID {
	return ID{raw: strings.ToUpper(raw)}
}

// Parse builds an ID and validates it.
func Parse(raw string) (ID, error) {
	id := New(raw)
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// MustParse is like Parse but panics when the number is invalid.
// Intended for constants in tests and fixtures.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the normalized number.
func (id ID) String() string {
	return id.raw
}

// Len returns the number of characters, not bytes.
func (id ID) Len() int {
	return len([]rune(id.raw))
}

// Validate reports the first failing check, in order: length, digits, checksum, birth date.
func (id ID) Validate() error {
	runes := []rune(id.raw)
	if len(runes) != Length {
		return &LengthError{Length: len(runes), Want: Length, Exact: true}
	}

	expected, err := checksum(runes)
	if err != nil {
		return err
	}
	if actual := runes[Length-1]; actual != expected {
		return &ChecksumError{Expected: expected, Actual: actual}
	}

	// A matching checksum says nothing about the date.
	if _, err := parseBirthDate(runes); err != nil {
		return err
	}
	return nil
}

// IsValid reports whether Validate succeeds.
func (id ID) IsValid() bool {
	return id.Validate() == nil
}

// AdministrativeCode returns the first six characters verbatim.
// The code is not checked against any registry.
func (id ID) AdministrativeCode() (string, error) {
	runes := []rune(id.raw)
	if len(runes) < adminCodeEnd {
		return "", &LengthError{Length: len(runes), Want: adminCodeEnd}
	}
	return string(runes[:adminCodeEnd]), nil
}

// BirthDateText returns the eight characters holding the birth date without parsing them.
func (id ID) BirthDateText() (string, error) {
	runes := []rune(id.raw)
	if len(runes) < birthDateEnd {
		return "", &LengthError{Length: len(runes), Want: birthDateEnd}
	}
	return string(runes[birthDateStart:birthDateEnd]), nil
}

// BirthDate parses characters 7-14 as YYYYMMDD. The result is midnight UTC.
func (id ID) BirthDate() (time.Time, error) {
	runes := []rune(id.raw)
	if len(runes) < birthDateEnd {
		return time.Time{}, &LengthError{Length: len(runes), Want: birthDateEnd}
	}
	return parseBirthDate(runes)
}

func parseBirthDate(runes []rune) (time.Time, error) {
	text := string(runes[birthDateStart:birthDateEnd])
	// time.Parse accepts a sign in the year field, so digits are checked first.
	for _, r := range runes[birthDateStart:birthDateEnd] {
		if !isDigit(r) {
			return time.Time{}, &BirthDateError{Text: text}
		}
	}
	date, err := time.Parse(birthDateLayout, text)
	if err != nil {
		return time.Time{}, &BirthDateError{Text: text, Err: err}
	}
	return date, nil
}

// Gender decodes the 17th character: odd is Male, even is Female.
// A missing or non-digit character yields Male; use DecodeGender to detect that case.
func (id ID) Gender() Gender {
	g, err := id.DecodeGender()
	if err != nil {
		return Male
	}
	return g
}

// DecodeGender is the strict form of Gender.
func (id ID) DecodeGender() (Gender, error) {
	runes := []rune(id.raw)
	if len(runes) <= genderPos {
		return Male, &LengthError{Length: len(runes), Want: genderPos + 1}
	}
	r := runes[genderPos]
	if !isDigit(r) {
		return Male, &DigitError{Char: r, Position: genderPos}
	}
	if (r-'0')%2 == 0 {
		return Female, nil
	}
	return Male, nil
}

// Male reports whether Gender is Male, including the fallback case.
func (id ID) Male() bool {
	return id.Gender() == Male
}

// Female reports whether Gender is Female.
func (id ID) Female() bool {
	return id.Gender() == Female
}

// Masked hides the birth date so the number can be written to logs.
// Inputs too short to contain a full birth date are masked from position 6 onwards.
func (id ID) Masked() string {
	runes := []rune(id.raw)
	end := min(len(runes), birthDateEnd)
	for i := birthDateStart; i < end; i++ {
		runes[i] = '*'
	}
	return string(runes)
}
