package smoothtext

import (
	"fmt"
	"strings"
)

// Language identifies a supported language, optionally narrowed to a
// regional variant. Variants share a family: EnglishGB and EnglishUS both
// belong to English. The variant selects syllabification data (for example
// GB vs US hyphenation overrides) while formulas are keyed by family.
type Language int

const (
	// Base languages.
	English Language = iota
	German
	Turkish

	// English variants.
	EnglishGB
	EnglishUS

	// German variants.
	GermanDE

	// Turkish variants.
	TurkishTR
)

// languageInfo holds the display name and ISO codes for a language.
type languageInfo struct {
	name   string
	alpha2 string
	alpha3 string
}

var languageInfos = map[Language]languageInfo{
	English:   {"English", "en", "eng"},
	EnglishGB: {"English (Great Britain)", "en-gb", "eng-gb"},
	EnglishUS: {"English (United States)", "en-us", "eng-us"},
	German:    {"German", "de", "deu"},
	GermanDE:  {"German (Germany)", "de-de", "deu-de"},
	Turkish:   {"Turkish", "tr", "tur"},
	TurkishTR: {"Turkish (Türkiye)", "tr-tr", "tur-tr"},
}

// defaultVariant maps each base language to the variant a bare family code
// resolves to. The English default is deliberately an explicit constant
// here rather than an implicit behavior: "en" means American English.
var defaultVariant = map[Language]Language{
	English: EnglishUS,
	German:  GermanDE,
	Turkish: TurkishTR,
}

// Languages returns all supported languages, base forms and variants.
func Languages() []Language {
	return []Language{English, EnglishGB, EnglishUS, German, GermanDE, Turkish, TurkishTR}
}

// Family returns the base language of a variant. Base languages return
// themselves.
func (l Language) Family() Language {
	switch l {
	case EnglishGB, EnglishUS:
		return English
	case GermanDE:
		return German
	case TurkishTR:
		return Turkish
	}
	return l
}

// Variants returns the regional variants belonging to the language family.
func (l Language) Variants() []Language {
	switch l.Family() {
	case English:
		return []Language{EnglishGB, EnglishUS}
	case German:
		return []Language{GermanDE}
	case Turkish:
		return []Language{TurkishTR}
	}
	return []Language{l}
}

// Alpha2 returns the ISO 639-1 code of the language family, or "" for a
// value outside the registry.
func (l Language) Alpha2() string {
	if info, ok := languageInfos[l]; ok {
		return info.alpha2[:2]
	}
	return ""
}

// Alpha3 returns the ISO 639-2 code of the language family, or "" for a
// value outside the registry.
func (l Language) Alpha3() string {
	if info, ok := languageInfos[l]; ok {
		return info.alpha3[:3]
	}
	return ""
}

// String returns the full display name, e.g. "English (United States)".
// Values outside the registry render as "Language(n)".
func (l Language) String() string {
	if info, ok := languageInfos[l]; ok {
		return info.name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Formulas returns the readability formulas validated for this language.
// The lookup is static data; it never fails and has no side effects.
func (l Language) Formulas() []ReadabilityFormula {
	switch l.Family() {
	case English:
		return []ReadabilityFormula{
			FleschReadingEase,
			FleschKincaidGrade,
			FleschKincaidGradeSimplified,
			GunningFogIndex,
			AutomatedReadabilityIndex,
		}
	case German:
		return []ReadabilityFormula{
			FleschReadingEase,
			Amstad,
			WienerSachtextformel,
			WienerSachtextformel1,
			WienerSachtextformel2,
			WienerSachtextformel3,
			WienerSachtextformel4,
		}
	case Turkish:
		return []ReadabilityFormula{
			Atesman,
			BezirciYilmaz,
		}
	}
	return nil
}

// ParseLanguage resolves a language identifier into a Language. Accepted
// forms are full display names ("English"), ISO 639-1 and 639-2 codes
// ("en", "eng") and codes with a variant tag separated by a hyphen or
// underscore ("en-US", "eng_gb"). Matching is case-insensitive. A bare
// family identifier resolves to the family's default variant.
func ParseLanguage(code string) (Language, error) {
	s := strings.ToLower(strings.TrimSpace(code))
	s = strings.ReplaceAll(s, "_", "-")

	for _, l := range Languages() {
		info := languageInfos[l]
		if s == strings.ToLower(info.name) || s == info.alpha2 || s == info.alpha3 {
			if l == l.Family() {
				return defaultVariant[l], nil
			}
			return l, nil
		}
	}

	return 0, UnsupportedLanguageError{Code: code}
}

// ParseLanguages resolves a comma-separated list of language identifiers,
// dropping entries that cannot be parsed. The result holds unique
// languages in input order.
func ParseLanguages(list string) []Language {
	var out []Language
	seen := make(map[Language]bool)

	for _, part := range strings.Split(list, ",") {
		l, err := ParseLanguage(part)
		if err != nil {
			continue
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}

	return out
}
