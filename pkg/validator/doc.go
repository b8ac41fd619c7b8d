// Package validator builds declarative validation rules for form and API input.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Apply evaluates rules and gathers every failure into ValidationErrors, which
// implements error and can be unpacked with ExtractValidationErrors.
//
//	err := validator.Apply(
//		validator.ValidChineseID("id_number", form.IDNumber),
//		validator.ChineseIDRegion("id_number", form.IDNumber, "11", "31"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		messages := verrs.Translate(func(key string, values map[string]any) string {
//			return translate(lang, key, values)
//		})
//	}
//
// Identity-number rules delegate to package chinaid and pick a translation key
// per failure kind (validation.chinaid.length, .digit, .checksum, .birth_date),
// so clients can render a precise message.
//
// Rules are plain values with no shared state; the package is goroutine-safe.
package validator
