package smoothtext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"github.com/rivo/uniseg"
)

// punktSegmenter pairs a Punkt-style sentence splitter with a
// treebank-style word tokenizer. For English the sentence model is the
// neurosnap Punkt port trained on English; German and Turkish fall back to
// a rule-based splitter that knows the common abbreviations of each
// language.
type punktSegmenter struct {
	language Language
	punkt    *sentences.DefaultSentenceTokenizer
	rules    *ruleSentencizer
}

func newPunktSegmenter(language Language) (*punktSegmenter, error) {
	seg := &punktSegmenter{language: language}

	switch language.Family() {
	case English:
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, BackendUnavailableError{Backend: BackendPunkt, Reason: err.Error()}
		}
		seg.punkt = tokenizer
	case German:
		seg.rules = newRuleSentencizer(germanAbbreviations)
	case Turkish:
		seg.rules = newRuleSentencizer(turkishAbbreviations)
	default:
		return nil, BackendUnavailableError{Backend: BackendPunkt, Reason: "no sentence model for " + language.String()}
	}

	return seg, nil
}

func (p *punktSegmenter) sentencize(text string) []string {
	if p.punkt != nil {
		var out []string
		for _, sentence := range p.punkt.Tokenize(text) {
			if s := strings.TrimSpace(sentence.Text); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return p.rules.sentencize(text)
}

func (p *punktSegmenter) tokenize(text string) []string {
	return treebankTokens(text, p.language)
}

// unisegSegmenter splits sentences and words along Unicode UAX #29
// boundaries. Language only matters downstream (filtering, casing); the
// boundary rules themselves are language-independent.
type unisegSegmenter struct {
	language Language
}

func newUnisegSegmenter(language Language) *unisegSegmenter {
	return &unisegSegmenter{language: language}
}

func (u *unisegSegmenter) sentencize(text string) []string {
	var out []string
	state := -1
	for text != "" {
		var sentence string
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		if s := strings.TrimSpace(sentence); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (u *unisegSegmenter) tokenize(text string) []string {
	var out []string
	state := -1
	for text != "" {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		if w := strings.TrimSpace(word); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// treebankTokens splits text on whitespace, peels surrounding punctuation
// into separate tokens and, for English, detaches contraction clitics the
// way the treebank convention does ("don't" -> "do", "n't"). Hyphenated
// compounds stay single tokens.
func treebankTokens(text string, language Language) []string {
	var out []string
	for _, field := range strings.Fields(text) {
		out = append(out, splitPunct(field, language)...)
	}
	return out
}

func splitPunct(field string, language Language) []string {
	var lead []string
	for field != "" {
		r, size := utf8.DecodeRuneInString(field)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		lead = append(lead, field[:size])
		field = field[size:]
	}

	var trail []string
	for field != "" {
		r, size := utf8.DecodeLastRuneInString(field)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		trail = append([]string{field[len(field)-size:]}, trail...)
		field = field[:len(field)-size]
	}

	out := lead
	if field != "" {
		if language.Family() == English {
			out = append(out, splitContractions(field)...)
		} else {
			out = append(out, field)
		}
	}
	return append(out, trail...)
}

var cliticSuffixes = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

func splitContractions(token string) []string {
	lower := strings.ToLower(strings.ReplaceAll(token, "’", "'"))
	for _, suffix := range cliticSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			cut := len(token) - len(suffix)
			return []string{token[:cut], token[cut:]}
		}
	}
	return []string{token}
}

// ruleSentencizer splits on terminal punctuation, skipping abbreviations,
// single-letter initials and decimal points.
type ruleSentencizer struct {
	abbrevs map[string]struct{}
}

var germanAbbreviations = []string{
	"bzw.", "ca.", "d.h.", "dr.", "evtl.", "ggf.", "nr.", "prof.",
	"u.a.", "usw.", "vgl.", "z.b.",
}

var turkishAbbreviations = []string{
	"dr.", "no.", "prof.", "sn.", "t.c.", "vb.", "vs.", "örn.",
}

func newRuleSentencizer(abbreviations []string) *ruleSentencizer {
	s := &ruleSentencizer{abbrevs: make(map[string]struct{}, len(abbreviations))}
	for _, a := range abbreviations {
		s.abbrevs[a] = struct{}{}
	}
	return s
}

func (s *ruleSentencizer) sentencize(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	flush := func(end int) {
		if seg := strings.TrimSpace(string(runes[start:end])); seg != "" {
			out = append(out, seg)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		end := i
		for end+1 < len(runes) && (isTerminator(runes[end+1]) || isClosing(runes[end+1])) {
			end++
		}
		if runes[i] == '.' && !s.isBoundary(runes, i, end) {
			i = end
			continue
		}
		flush(end + 1)
		i = end
	}
	flush(len(runes))

	return out
}

func (s *ruleSentencizer) isBoundary(runes []rune, dot, end int) bool {
	// Decimal point.
	if dot > 0 && dot+1 < len(runes) && unicode.IsDigit(runes[dot-1]) && unicode.IsDigit(runes[dot+1]) {
		return false
	}

	// Word preceding the dot, including any interior dots ("z.b.").
	w := dot
	for w > 0 && (unicode.IsLetter(runes[w-1]) || runes[w-1] == '.') {
		w--
	}
	word := strings.ToLower(string(runes[w : dot+1]))
	if _, ok := s.abbrevs[word]; ok {
		return false
	}
	if len([]rune(word)) == 2 { // single-letter initial, "J."
		return false
	}

	// Next visible rune must start a new sentence.
	for i := end + 1; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) {
			continue
		}
		return !unicode.IsLower(runes[i])
	}
	return true
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// isWordToken reports whether a raw token survives the language filter:
// it must contain at least one letter or digit. Pure punctuation never
// reaches counting or syllabification.
func isWordToken(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func filterTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if isWordToken(t) {
			out = append(out, t)
		}
	}
	return out
}
