package smoothtext

import (
	"math"
)

// Wiener Sachtextformel coefficients per version. Inputs are the
// percentage of three-or-more-syllable words (MS), the mean sentence
// length (SL), the percentage of words with at least six letters (IW)
// and the percentage of monosyllabic words (ES).
var wstfCoefficients = map[ReadabilityFormula][5]float64{
	WienerSachtextformel1: {0.1935, 0.1672, 0.1297, -0.0327, -0.875},
	WienerSachtextformel2: {0.2007, 0.1682, 0.1373, 0, -2.779},
	WienerSachtextformel3: {0.2963, 0.1905, 0, 0, -1.1144},
	WienerSachtextformel4: {0.2744, 0.2656, 0, 0, -1.693},
}

// Gunning Fog and Automated Readability Index constants.
const (
	fogWeight = 0.4

	ariLetterWeight   = 4.71
	ariSentenceWeight = 0.5
	ariOffset         = 21.43
)

// ComputeReadability scores the text with the formula. The formula must
// be validated for the configured language; scoring an empty or
// wordless text fails instead of returning zero.
func (st *SmoothText) ComputeReadability(text string, formula ReadabilityFormula) (float64, error) {
	if !formula.Supports(st.language) {
		return 0, UnsupportedFormulaError{Formula: formula, Language: st.language}
	}

	metrics := st.aggregate(text)
	if metrics.sentences == 0 || metrics.words == 0 {
		return 0, InsufficientTextError{Reason: "no sentences or words in input"}
	}

	words := float64(metrics.words)
	sentences := float64(metrics.sentences)
	avgSyllables := float64(metrics.syllables) / words
	avgSentenceLength := words / sentences

	switch formula {
	case FleschReadingEase, Amstad, Atesman:
		constants := freByFamily[st.language.Family()]
		return constants.base -
			constants.sentence*avgSentenceLength -
			constants.syllables*avgSyllables, nil

	case FleschKincaidGrade:
		return fkgSentenceWeight*avgSentenceLength +
			fkgSyllableWeight*avgSyllables - fkgOffset, nil

	case FleschKincaidGradeSimplified:
		return fkgsSentenceWeight*avgSentenceLength +
			fkgsSyllableWeight*avgSyllables - fkgsOffset, nil

	case GunningFogIndex:
		polyPercent := float64(metrics.polysyllables) / words * 100.0
		return fogWeight * (avgSentenceLength + polyPercent), nil

	case AutomatedReadabilityIndex:
		avgLetters := float64(metrics.letters) / words
		return ariLetterWeight*avgLetters +
			ariSentenceWeight*avgSentenceLength - ariOffset, nil

	case WienerSachtextformel, WienerSachtextformel1, WienerSachtextformel2,
		WienerSachtextformel3, WienerSachtextformel4:
		version := formula
		if formula == WienerSachtextformel {
			version = WienerSachtextformel3
		}
		c := wstfCoefficients[version]
		ms := float64(metrics.polysyllables) / words * 100.0
		iw := float64(metrics.longWords) / words * 100.0
		es := float64(metrics.monosyllables) / words * 100.0
		return c[0]*ms + c[1]*avgSentenceLength + c[2]*iw + c[3]*es + c[4], nil

	case BezirciYilmaz:
		score := 0.0
		for offset, weight := range bezirciYilmazWeights {
			score += float64(histogramBucket(metrics.histogram, 3+offset)) / sentences * weight
		}
		return math.Sqrt(avgSentenceLength * score), nil
	}

	return 0, UnsupportedFormulaError{Formula: formula, Language: st.language}
}

// histogramBucket reads the count of words with exactly the given
// syllable count, folding everything above six into the six bucket.
func histogramBucket(histogram map[int]int, syllables int) int {
	if syllables < 6 {
		return histogram[syllables]
	}
	total := 0
	for count, n := range histogram {
		if count >= 6 {
			total += n
		}
	}
	return total
}
