package chinaid

import "github.com/dmitrymomot/chinaid/pkg/i18n"

// Gender is decoded from the parity of the 17th character.
type Gender uint8

const (
	Male Gender = iota + 1
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// Label returns the localized display name, e.g. "Male" in English or "男" in Chinese.
func (g Gender) Label(tr *i18n.Translator, lang string) string {
	return tr.T(lang, "chinaid.gender."+g.String())
}
