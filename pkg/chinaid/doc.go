// Package chinaid validates and decodes 18-character resident identity numbers
// of the People's Republic of China.
//
// A number is laid out as follows:
//
//	431022 20200101 133 X
//	│      │        │   └─ check character (0-9 or X), weighted checksum mod 11
//	│      │        └───── sequence code, the last digit encodes gender (odd = male)
//	│      └────────────── birth date, YYYYMMDD
//	└───────────────────── administrative division code
//
// # Construction and validation
//
// New never fails: it upper-cases the input (so a trailing "x" becomes "X") and
// keeps it verbatim. Validation is an explicit, repeatable step:
//
//	id := chinaid.New("43102220200101133x")
//	if err := id.Validate(); err != nil {
//		var lerr *chinaid.LengthError
//		switch {
//		case errors.As(err, &lerr):
//			// wrong number of characters
//		case errors.Is(err, chinaid.ErrChecksumMismatch):
//			// typo somewhere in the number
//		}
//	}
//
// Validate checks, in order: the length (exactly 18 characters), that the first
// 17 characters are ASCII digits, the check character, and finally the embedded
// birth date. The first failing check is reported.
//
// # Accessors
//
// AdministrativeCode, BirthDate and DecodeGender may be called on numbers that
// were never validated. They verify that the positions they read exist and
// return a *LengthError otherwise. Gender is total: it falls back to Male when
// the gender digit is missing or is not a digit.
//
// All positions are counted in characters (runes), never bytes, so malformed
// multi-byte input is reported instead of being sliced mid-rune.
//
// # Checker
//
// Checker wraps the same operations with structured logging and is configured
// from the environment through Config:
//
//	cfg, err := chinaid.LoadConfig()
//	if err != nil {
//		return err
//	}
//	checker, err := chinaid.NewCheckerFromConfig(cfg, os.Stderr)
//	if err != nil {
//		return err
//	}
//	identity, err := checker.Decode(ctx, "43102220200101133X")
//
// # Localization
//
// Gender labels and error messages are available in English and Chinese through
// NewTranslator, Gender.Label and Message.
package chinaid
