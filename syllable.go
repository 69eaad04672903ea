package smoothtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Syllabification runs a per-language chain of strategies, tried in order;
// the first one that applies wins:
//
//  1. Closed-form rule. Turkish orthography maps one vowel to one
//     syllable, so counting needs no dictionary at all.
//  2. Curated dictionary. English words are looked up in an embedded
//     hyphenated dictionary (exact lowercase match only), with a small
//     override set for the GB variant.
//  3. Heuristic fallback. Vowel-group counting over a per-language vowel
//     table; always applicable, approximate.
//
// Every strategy is total for alphabetic input. A word-like token
// conventionally holds at least one syllable, so counts are floored at 1
// for any token containing a letter. Tokens without letters (digits,
// symbols) count 0 and never enter histograms.

// syllableStrategy yields syllable parts for a word, or reports that it
// does not apply so the next strategy in the chain is consulted.
type syllableStrategy struct {
	name  string
	apply func(word string) ([]string, bool)
}

type syllabifier struct {
	language Language
	chain    []syllableStrategy
}

func newSyllabifier(language Language) *syllabifier {
	s := &syllabifier{language: language}

	switch language.Family() {
	case Turkish:
		s.chain = []syllableStrategy{
			{name: "turkish-rule", apply: turkishRule},
		}
	case English:
		s.chain = []syllableStrategy{
			{name: "dictionary", apply: englishDictionaryLookup(language)},
			{name: "heuristic", apply: heuristicRule(language)},
		}
	default:
		s.chain = []syllableStrategy{
			{name: "heuristic", apply: heuristicRule(language)},
		}
	}

	return s
}

// syllabify returns the syllable parts of a single word token. Tokens
// without any letter have no syllables and yield nil. Hyphenated compounds
// are handled part by part.
func (s *syllabifier) syllabify(word string) []string {
	word = strings.TrimSpace(word)
	if !hasLetter(word) {
		return nil
	}

	if strings.Contains(word, "-") {
		var parts []string
		for _, part := range strings.Split(word, "-") {
			parts = append(parts, s.syllabify(part)...)
		}
		return parts
	}

	for _, strategy := range s.chain {
		if parts, ok := strategy.apply(word); ok {
			Logger.Trace().Str("word", word).Str("strategy", strategy.name).Int("syllables", len(parts)).Msg("syllabified")
			return parts
		}
	}

	// The heuristic is total for alphabetic input, so this is unreachable;
	// keep the floor anyway.
	return []string{word}
}

// count returns the syllable count of a single word token, floored at 1
// for any token containing a letter and 0 otherwise.
func (s *syllabifier) count(word string) int {
	word = strings.TrimSpace(word)
	if !hasLetter(word) {
		return 0
	}
	if n := len(s.syllabify(word)); n > 0 {
		return n
	}
	return 1
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// # # # # # # # #
// ASCII folding  #
// # # # # # # # #

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var foldReplacer = strings.NewReplacer(
	"ı", "i", "ß", "ss", "æ", "ae", "œ", "oe", "ð", "d", "þ", "th",
	"Æ", "AE", "Œ", "OE",
)

// asciify strips diacritics and expands the few Latin letters that do not
// decompose (ı, ß, ligatures).
func asciify(text string) string {
	folded, _, err := transform.String(foldMarks, text)
	if err != nil {
		folded = text
	}
	return foldReplacer.Replace(folded)
}

// # # # # # # # #
// Turkish rule   #
// # # # # # # # #

func isASCIIVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// turkishRule syllabifies by walking the word backwards, closing a
// syllable at each vowel and attaching the consonant before it. Every
// Turkish vowel carries exactly one syllable, so an onset cluster left
// over at the word start ("tren", "kral") joins the first syllable
// instead of becoming a part of its own.
func turkishRule(word string) ([]string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, false
	}

	wordRunes := []rune(word)
	vowelAt := make([]bool, len(wordRunes))
	for i, r := range wordRunes {
		folded := []rune(asciify(string(r)))
		vowelAt[i] = len(folded) > 0 && isASCIIVowel(folded[0])
	}

	var parts []string
	previous := len(wordRunes)
	index := len(wordRunes) - 1

	for index >= 0 {
		if vowelAt[index] {
			if index == 0 {
				parts = append(parts, string(wordRunes[0:previous]))
				previous = 0
				break
			}
			if !vowelAt[index-1] {
				index--
			}
			parts = append(parts, string(wordRunes[index:previous]))
			previous = index
		}
		index--
	}

	parts = mergeLeadingRemainder(parts, wordRunes, previous)
	reverseParts(parts)
	return parts, true
}

// mergeLeadingRemainder folds the runes left before the first closed
// syllable into that syllable. Parts are still in reverse order here, so
// the first syllable is the last element. A word with no vowel at all
// becomes a single part.
func mergeLeadingRemainder(parts []string, wordRunes []rune, previous int) []string {
	if previous == 0 {
		return parts
	}
	remainder := string(wordRunes[0:previous])
	if len(parts) == 0 {
		return append(parts, remainder)
	}
	parts[len(parts)-1] = remainder + parts[len(parts)-1]
	return parts
}

// # # # # # # # # # # #
// Dictionary strategy  #
// # # # # # # # # # # #

// englishDictionaryLookup consults the embedded hyphenated dictionary.
// Exact lowercase match only; absent words fall through to the heuristic.
// The GB variant is consulted first for its override set.
func englishDictionaryLookup(language Language) func(string) ([]string, bool) {
	return func(word string) ([]string, bool) {
		key := strings.ToLower(word)

		if language == EnglishGB {
			if parts, ok := lookupSyllables(EnglishGB, key); ok {
				return parts, true
			}
		}
		return lookupSyllables(English, key)
	}
}

// # # # # # # # # # #
// Heuristic fallback #
// # # # # # # # # # #

// groupVowels lists the letters that open or extend a vowel group for the
// heuristic. Adjacent vowels form one group, which makes the common
// diphthongs (ei, au, eu, ie, ...) count once.
var groupVowels = map[Language]string{
	English: "aeiouy",
	German:  "aeiouyäöü",
	Turkish: "aeıioöuü",
}

// heuristicRule counts vowel groups and derives approximate boundaries
// with the same backward walk the Turkish rule uses. English drops a
// silent final "e" ("sentence" -> sen-tence) except after "l" ("table").
func heuristicRule(language Language) func(string) ([]string, bool) {
	family := language.Family()
	vowels := groupVowels[family]

	return func(word string) ([]string, bool) {
		word = strings.TrimSpace(word)
		if word == "" {
			return nil, false
		}

		parts := vowelWalk(word, vowels)
		if family == English && len(parts) > 1 && hasSilentFinalE(word) {
			merged := parts[len(parts)-2] + parts[len(parts)-1]
			parts = append(parts[:len(parts)-2], merged)
		}
		if len(parts) == 0 {
			parts = []string{word}
		}
		return parts, true
	}
}

func hasSilentFinalE(word string) bool {
	lower := strings.ToLower(word)
	return strings.HasSuffix(lower, "e") && !strings.HasSuffix(lower, "le")
}

// vowelWalk is the generalized backward walk: close a part at each vowel
// group and attach one leading consonant; a leftover onset cluster joins
// the first part. Non-letter runes inside a token (apostrophes in
// clitics) ride along with the consonants around them.
func vowelWalk(word, vowels string) []string {
	wordRunes := []rune(word)
	lower := []rune(strings.ToLower(word))

	isVowel := func(i int) bool { return strings.ContainsRune(vowels, lower[i]) }

	var parts []string
	previous := len(wordRunes)
	index := len(wordRunes) - 1

	for index >= 0 {
		if isVowel(index) {
			// Back up to the first rune of the vowel group.
			for index > 0 && isVowel(index-1) {
				index--
			}
			if index == 0 {
				parts = append(parts, string(wordRunes[0:previous]))
				previous = 0
				break
			}
			if !isVowel(index - 1) {
				index--
			}
			parts = append(parts, string(wordRunes[index:previous]))
			previous = index
		}
		index--
	}

	parts = mergeLeadingRemainder(parts, wordRunes, previous)
	reverseParts(parts)
	return parts
}

func reverseParts(parts []string) {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
}
