package smoothtext

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Statistics is a fully computed snapshot of the counts and frequency
// mappings for one input text. It is never partially filled: computation
// either succeeds as a whole or fails.
type Statistics struct {
	Sentences  int
	Words      int
	Syllables  int
	Letters    int
	Vowels     int
	Consonants int

	// SyllableFrequencies maps a syllable count to the number of words
	// with that count. Tokens without letters (count 0) are excluded.
	SyllableFrequencies map[int]int

	// WordFrequencies maps the lower-cased (optionally lemmatized) token
	// to its number of occurrences. Values always sum to Words.
	WordFrequencies map[string]int
}

// StatisticsOptions controls snapshot computation.
type StatisticsOptions struct {
	// Lemmatize reduces word-frequency keys to their snowball stem when
	// the configured language supports it (English, German). For other
	// languages the flag is a documented no-op, never an error.
	Lemmatize bool
}

// ComputeStatistics builds a Statistics snapshot for the text.
func (st *SmoothText) ComputeStatistics(text string, opts StatisticsOptions) (Statistics, error) {
	metrics := st.aggregate(text)
	if metrics.sentences == 0 || metrics.words == 0 {
		return Statistics{}, InsufficientTextError{Reason: "no sentences or words in input"}
	}

	stats := Statistics{
		Sentences:           metrics.sentences,
		Words:               metrics.words,
		Syllables:           metrics.syllables,
		Letters:             metrics.letters,
		SyllableFrequencies: metrics.histogram,
		WordFrequencies:     make(map[string]int),
	}
	stats.Vowels, stats.Consonants = st.countLetterClasses(text)

	lemmatize := opts.Lemmatize || st.lemmatizeByDefault
	for _, token := range st.Tokenize(text) {
		key := st.lowercase(token)
		if lemmatize {
			key = st.lemmatize(key)
		}
		stats.WordFrequencies[key]++
	}

	return stats, nil
}

// WordFrequencies returns the lower-cased token occurrence mapping.
func (st *SmoothText) WordFrequencies(text string) (map[string]int, error) {
	stats, err := st.ComputeStatistics(text, StatisticsOptions{})
	if err != nil {
		return nil, err
	}
	return stats.WordFrequencies, nil
}

// SyllableFrequencies maps syllable counts to the number of words having
// that count. Tokens without letters are excluded.
func (st *SmoothText) SyllableFrequencies(text string) map[int]int {
	frequencies := make(map[int]int)
	for _, token := range st.Tokenize(text) {
		if n := st.syllabifier.count(token); n > 0 {
			frequencies[n]++
		}
	}
	return frequencies
}

// CountVowels counts vowel letters using the language's classification
// table. Digits, punctuation and whitespace are excluded.
func (st *SmoothText) CountVowels(text string) int {
	vowels, _ := st.countLetterClasses(text)
	return vowels
}

// CountConsonants counts consonant letters using the language's
// classification table. Digits, punctuation and whitespace are excluded.
func (st *SmoothText) CountConsonants(text string) int {
	_, consonants := st.countLetterClasses(text)
	return consonants
}

// textMetrics is the shared aggregation every formula draws from. Numeric
// tokens count as words but contribute neither syllables nor letters;
// sentences with no word tokens are skipped entirely.
type textMetrics struct {
	sentences     int
	words         int
	syllables     int
	letters       int
	longWords     int // >= 6 letters
	monosyllables int
	polysyllables int // >= 3 syllables
	histogram     map[int]int
}

func (st *SmoothText) aggregate(text string) textMetrics {
	metrics := textMetrics{histogram: make(map[int]int)}

	for _, sentence := range st.TokenizeBySentence(text) {
		if len(sentence) == 0 {
			continue
		}
		metrics.sentences++
		metrics.words += len(sentence)

		for _, word := range sentence {
			syllables := st.syllabifier.count(word)
			if syllables == 0 {
				// Numeric or symbol-only word token.
				continue
			}

			letters := countLetters(word)
			metrics.syllables += syllables
			metrics.letters += letters
			metrics.histogram[syllables]++

			if letters >= 6 {
				metrics.longWords++
			}
			switch {
			case syllables == 1:
				metrics.monosyllables++
			case syllables >= 3:
				metrics.polysyllables++
			}
		}
	}

	return metrics
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// classVowels is the per-family vowel classification table for character
// counts, diacritic-aware (Turkish dotless ı is a vowel, German umlauts
// are vowels).
var classVowels = map[Language]string{
	English: "aeiou",
	German:  "aeiouäöü",
	Turkish: "aeıioöuü",
}

func (st *SmoothText) countLetterClasses(text string) (vowels, consonants int) {
	table := classVowels[st.language.Family()]
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		lower := st.lowercase(string(r))
		if strings.ContainsAny(lower, table) || strings.ContainsAny(asciify(lower), table) {
			vowels++
		} else {
			consonants++
		}
	}
	return vowels, consonants
}

// lowercase folds case with the language's casing rules; Turkish maps
// I to ı and İ to i.
func (st *SmoothText) lowercase(s string) string {
	if st.language.Family() == Turkish {
		return strings.ToLowerSpecial(unicode.TurkishCase, s)
	}
	return strings.ToLower(s)
}

var snowballLanguages = map[Language]string{
	English: "english",
	German:  "german",
}

// lemmatize reduces a word to its snowball stem. Unsupported languages
// and stemmer failures leave the word unchanged.
func (st *SmoothText) lemmatize(word string) string {
	name, ok := snowballLanguages[st.language.Family()]
	if !ok {
		return word
	}
	stemmed, err := snowball.Stem(word, name, true)
	if err != nil {
		return word
	}
	return stemmed
}
