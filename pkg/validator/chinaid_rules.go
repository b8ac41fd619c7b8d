package validator

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/chinaid/pkg/chinaid"
)

// ValidChineseID validates an 18-character resident identity number.
// The error carries a translation key specific to the failed check.
func ValidChineseID(field, value string) Rule {
	// Validated up front: Rule.Error is static and depends on which check failed.
	err := chinaid.New(value).Validate()
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: chineseIDError(field, err),
	}
}

func chineseIDError(field string, err error) ValidationError {
	ve := ValidationError{
		Field:          field,
		Message:        "must be a valid Chinese resident identity number",
		TranslationKey: "validation.chinaid.invalid",
		TranslationValues: map[string]any{
			"field": field,
		},
	}

	var (
		lengthErr   *chinaid.LengthError
		digitErr    *chinaid.DigitError
		checksumErr *chinaid.ChecksumError
		dateErr     *chinaid.BirthDateError
	)
	switch {
	case errors.As(err, &lengthErr):
		ve.Message = "identity number must be 18 characters long"
		ve.TranslationKey = "validation.chinaid.length"
		ve.TranslationValues["length"] = lengthErr.Length
		ve.TranslationValues["want"] = lengthErr.Want
	case errors.As(err, &digitErr):
		ve.Message = "identity number must contain only digits before the check character"
		ve.TranslationKey = "validation.chinaid.digit"
		ve.TranslationValues["char"] = string(digitErr.Char)
		ve.TranslationValues["position"] = digitErr.Position + 1
	case errors.As(err, &checksumErr):
		ve.Message = "identity number check character does not match"
		ve.TranslationKey = "validation.chinaid.checksum"
		ve.TranslationValues["expected"] = string(checksumErr.Expected)
		ve.TranslationValues["actual"] = string(checksumErr.Actual)
	case errors.As(err, &dateErr):
		ve.Message = "identity number contains an invalid birth date"
		ve.TranslationKey = "validation.chinaid.birth_date"
		ve.TranslationValues["text"] = dateErr.Text
	}
	return ve
}

// ChineseIDGender checks the gender encoded in the number. Invalid numbers fail.
func ChineseIDGender(field, value string, want chinaid.Gender) Rule {
	return Rule{
		Check: func() bool {
			id := chinaid.New(value)
			return id.IsValid() && id.Gender() == want
		},
		Error: ValidationError{
			Field:          field,
			Message:        "identity number does not match the required gender",
			TranslationKey: "validation.chinaid.gender",
			TranslationValues: map[string]any{
				"field":  field,
				"gender": want.String(),
			},
		},
	}
}

// ChineseIDRegion requires the administrative code to start with one of prefixes,
// e.g. "11" for Beijing or "3101" for Shanghai's urban districts. Invalid numbers fail.
func ChineseIDRegion(field, value string, prefixes ...string) Rule {
	return Rule{
		Check: func() bool {
			id := chinaid.New(value)
			if !id.IsValid() {
				return false
			}
			code, err := id.AdministrativeCode()
			if err != nil {
				return false
			}
			for _, p := range prefixes {
				if p != "" && strings.HasPrefix(code, p) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "identity number is not issued in an allowed region",
			TranslationKey: "validation.chinaid.region",
			TranslationValues: map[string]any{
				"field":   field,
				"regions": strings.Join(prefixes, ", "),
			},
		},
	}
}
