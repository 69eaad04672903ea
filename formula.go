package smoothtext

// ReadabilityFormula identifies a closed-form readability formula. Each
// formula is validated for a fixed set of languages; applying it elsewhere
// fails instead of silently approximating.
type ReadabilityFormula int

const (
	// Formulas for English.
	FleschReadingEase ReadabilityFormula = iota
	FleschKincaidGrade
	FleschKincaidGradeSimplified
	GunningFogIndex
	AutomatedReadabilityIndex

	// Formulas for German. Amstad is the German recalibration of Flesch
	// Reading Ease; both names select the same constants.
	Amstad
	WienerSachtextformel
	WienerSachtextformel1
	WienerSachtextformel2
	WienerSachtextformel3
	WienerSachtextformel4

	// Formulas for Turkish.
	Atesman
	BezirciYilmaz
)

var formulaNames = map[ReadabilityFormula]string{
	FleschReadingEase:            "Flesch Reading Ease",
	FleschKincaidGrade:           "Flesch-Kincaid Grade",
	FleschKincaidGradeSimplified: "Flesch-Kincaid Grade Simplified",
	GunningFogIndex:              "Gunning Fog Index",
	AutomatedReadabilityIndex:    "Automated Readability Index",
	Amstad:                       "Amstad",
	WienerSachtextformel:         "Wiener Sachtextformel",
	WienerSachtextformel1:        "Wiener Sachtextformel 1",
	WienerSachtextformel2:        "Wiener Sachtextformel 2",
	WienerSachtextformel3:        "Wiener Sachtextformel 3",
	WienerSachtextformel4:        "Wiener Sachtextformel 4",
	Atesman:                      "Ateşman",
	BezirciYilmaz:                "Bezirci-Yılmaz",
}

// String returns the formula's published name.
func (f ReadabilityFormula) String() string {
	return formulaNames[f]
}

// Formulas returns every formula known to the library.
func Formulas() []ReadabilityFormula {
	return []ReadabilityFormula{
		FleschReadingEase,
		FleschKincaidGrade,
		FleschKincaidGradeSimplified,
		GunningFogIndex,
		AutomatedReadabilityIndex,
		Amstad,
		WienerSachtextformel,
		WienerSachtextformel1,
		WienerSachtextformel2,
		WienerSachtextformel3,
		WienerSachtextformel4,
		Atesman,
		BezirciYilmaz,
	}
}

// Supports reports whether the formula is validated for the language.
func (f ReadabilityFormula) Supports(language Language) bool {
	for _, candidate := range language.Formulas() {
		if candidate == f {
			return true
		}
	}
	return false
}

// freConstants holds the per-family constant set for the Flesch Reading
// Ease family of formulas: base, sentence-length weight, syllable weight.
// The German row is the Amstad recalibration, the Turkish row Ateşman's.
type freConstants struct {
	base      float64
	sentence  float64
	syllables float64
}

var freByFamily = map[Language]freConstants{
	English: {206.835, 1.015, 84.6},
	German:  {180.0, 1.0, 58.5},
	Turkish: {198.825, 2.61, 40.175},
}

// Flesch-Kincaid grade constants. The simplified variant uses its own
// pre-rounded set; it is never derived from the exact one at runtime.
const (
	fkgSentenceWeight = 0.39
	fkgSyllableWeight = 11.8
	fkgOffset         = 15.9

	fkgsSentenceWeight = 0.4
	fkgsSyllableWeight = 12.0
	fkgsOffset         = 16.0
)

// Bezirci-Yılmaz weights for words of 3, 4, 5 and 6-or-more syllables.
var bezirciYilmazWeights = [4]float64{0.84, 1.5, 3.5, 26.25}
