// Package smoothtext measures the readability of English, German and
// Turkish text. It segments text into sentences, words and syllables and
// scores it with the published readability formulas validated for each
// language, e.g. Flesch Reading Ease for English, the Wiener
// Sachtextformel family for German, Ateşman and Bezirci-Yılmaz for
// Turkish.
package smoothtext

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Defaults for the package-level instance.
	DefaultLanguage = EnglishUS
	DefaultBackend  = BackendPunkt

	// Logger for this package
	Logger = zerolog.Nop()

	// Package-level instance for the function-style API
	instance   *SmoothText
	instanceMu sync.Mutex

	preparedMu sync.Mutex
	prepared   = make(map[Backend]map[Language]bool)
)

// EnableDebugLogging enables debug logging for the package
func EnableDebugLogging() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// SmoothText analyzes text in one language with one segmentation backend.
// The language can be switched on a live instance; the backend cannot,
// since scores from different backends are not comparable.
type SmoothText struct {
	language    Language
	backend     Backend
	segmenter   segmenter
	syllabifier *syllabifier
	normalize   NormalizeOptions

	lemmatizeByDefault bool

	mu sync.RWMutex
}

// Option defines function signature for options to configure SmoothText
type Option func(*SmoothText)

// WithDemojize converts emoji to bracketed text descriptions before every
// analysis, so "I love 🐈" is scored as "I love (cat)".
func WithDemojize() Option {
	return func(st *SmoothText) {
		st.normalize.Demojize = true
	}
}

// WithStripEmoji removes emoji before every analysis.
func WithStripEmoji() Option {
	return func(st *SmoothText) {
		st.normalize.StripEmoji = true
	}
}

// WithDelimiters overrides the brackets around demojized descriptions.
func WithDelimiters(left, right string) Option {
	return func(st *SmoothText) {
		st.normalize.Delimiters = [2]string{left, right}
	}
}

// WithLemmatize makes ComputeStatistics lemmatize word-frequency keys by
// default, without setting StatisticsOptions on every call.
func WithLemmatize() Option {
	return func(st *SmoothText) {
		st.lemmatizeByDefault = true
	}
}

// New builds an analyzer for the language and backend. Passing a language
// family (English, German, Turkish) selects its default variant.
func New(language Language, backend Backend, opts ...Option) (*SmoothText, error) {
	language, err := resolveVariant(language)
	if err != nil {
		return nil, err
	}

	seg, err := newSegmenter(backend, language)
	if err != nil {
		return nil, err
	}

	st := &SmoothText{
		language:    language,
		backend:     backend,
		segmenter:   seg,
		syllabifier: newSyllabifier(language),
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.normalize.Demojize && st.normalize.StripEmoji {
		return nil, ConfigurationError{Reason: "demojize and strip_emoji are mutually exclusive"}
	}

	Logger.Debug().
		Str("language", language.String()).
		Str("backend", backend.String()).
		Msg("analyzer ready")
	return st, nil
}

func resolveVariant(language Language) (Language, error) {
	if variant, ok := defaultVariant[language]; ok {
		return variant, nil
	}
	if _, ok := languageInfos[language]; !ok {
		return 0, UnsupportedLanguageError{Code: language.String()}
	}
	return language, nil
}

// Prepare validates and warms up the backend for the given languages so
// later construction cannot fail, and loads the syllable dictionaries,
// user extensions included. It is idempotent and safe to call from
// multiple goroutines.
func Prepare(backend Backend, languages ...Language) error {
	if len(languages) == 0 {
		languages = []Language{DefaultLanguage}
	}

	ensureDictionaries()

	preparedMu.Lock()
	defer preparedMu.Unlock()

	for _, language := range languages {
		language, err := resolveVariant(language)
		if err != nil {
			return err
		}
		if prepared[backend][language] {
			continue
		}
		if _, err := newSegmenter(backend, language); err != nil {
			return err
		}
		if prepared[backend] == nil {
			prepared[backend] = make(map[Language]bool)
		}
		prepared[backend][language] = true
		Logger.Debug().
			Str("language", language.String()).
			Str("backend", backend.String()).
			Msg("prepared")
	}
	return nil
}

// Language returns the configured language variant.
func (st *SmoothText) Language() Language {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.language
}

// Backend returns the configured backend.
func (st *SmoothText) Backend() Backend {
	return st.backend
}

// SetLanguage switches the instance to another language, rebuilding the
// segmentation pipeline. The backend stays the same.
func (st *SmoothText) SetLanguage(language Language) error {
	language, err := resolveVariant(language)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if language == st.language {
		return nil
	}
	seg, err := newSegmenter(st.backend, language)
	if err != nil {
		return err
	}
	st.language = language
	st.segmenter = seg
	st.syllabifier = newSyllabifier(language)
	Logger.Debug().Str("language", language.String()).Msg("language switched")
	return nil
}

// SetBackend rejects any backend other than the one the instance was
// built with. Scores are only comparable within one backend, so switching
// requires a new instance.
func (st *SmoothText) SetBackend(backend Backend) error {
	if backend == st.backend {
		return nil
	}
	return ConfigurationError{Reason: "backend is fixed at construction, create a new instance"}
}

// prepareText applies the configured emoji normalization.
func (st *SmoothText) prepareText(text string) string {
	if !st.normalize.Demojize && !st.normalize.StripEmoji {
		return text
	}
	out, err := Normalize(text, st.normalize)
	if err != nil {
		return text
	}
	return out
}

// Sentencize splits the text into sentences.
func (st *SmoothText) Sentencize(text string) []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.segmenter.sentencize(st.prepareText(text))
}

// Tokenize splits the text into word tokens. Punctuation-only tokens are
// dropped, so len(Tokenize(text)) always equals CountWords(text).
func (st *SmoothText) Tokenize(text string) []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return filterTokens(st.segmenter.tokenize(st.prepareText(text)))
}

// TokenizeBySentence splits the text into sentences and each sentence
// into word tokens.
func (st *SmoothText) TokenizeBySentence(text string) [][]string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	text = st.prepareText(text)
	var out [][]string
	for _, sentence := range st.segmenter.sentencize(text) {
		out = append(out, filterTokens(st.segmenter.tokenize(sentence)))
	}
	return out
}

// CountSentences counts the sentences in the text.
func (st *SmoothText) CountSentences(text string) int {
	return len(st.Sentencize(text))
}

// CountWords counts the word tokens in the text.
func (st *SmoothText) CountWords(text string) int {
	return len(st.Tokenize(text))
}

// CountSyllables counts the syllables across all word tokens. Tokens
// without letters contribute zero.
func (st *SmoothText) CountSyllables(text string) int {
	total := 0
	for _, token := range st.Tokenize(text) {
		total += st.syllabifier.count(token)
	}
	return total
}

// Syllabify splits a single word into its syllables. Words without
// letters yield nil.
func (st *SmoothText) Syllabify(word string) []string {
	return st.syllabifier.syllabify(word)
}

// Demojize replaces emoji in the text with bracketed descriptions using
// the instance's delimiters.
func (st *SmoothText) Demojize(text string) string {
	left, right := st.normalize.Delimiters[0], st.normalize.Delimiters[1]
	if left == "" && right == "" {
		left, right = defaultDelimiters[0], defaultDelimiters[1]
	}
	return demojizeText(text, left, right)
}

// RemoveEmojis strips emoji from the text.
func (st *SmoothText) RemoveEmojis(text string) string {
	return stripEmojiText(text)
}

// Reading speeds in words per minute, from Brysbaert's 2019 meta-analysis
// of adult reading rates.
const (
	SilentReadingSpeed = 238.0
	AloudReadingSpeed  = 183.0
)

// ReadingTime estimates how long the text takes to read at the given
// speed in words per minute, rounded up to whole seconds.
func (st *SmoothText) ReadingTime(text string, wordsPerMinute float64) (time.Duration, error) {
	if wordsPerMinute <= 0 {
		return 0, ConfigurationError{Reason: "words per minute must be positive"}
	}
	words := st.CountWords(text)
	if words == 0 {
		return 0, InsufficientTextError{Reason: "no words in input"}
	}
	seconds := float64(words) / wordsPerMinute * 60.0
	return time.Duration(math.Ceil(seconds)) * time.Second, nil
}

// SilentReadingTime estimates silent reading time at the average adult
// silent reading speed.
func (st *SmoothText) SilentReadingTime(text string) (time.Duration, error) {
	return st.ReadingTime(text, SilentReadingSpeed)
}

// ReadingAloudTime estimates reading-aloud time at the average adult
// reading-aloud speed.
func (st *SmoothText) ReadingAloudTime(text string) (time.Duration, error) {
	return st.ReadingTime(text, AloudReadingSpeed)
}

// Named formula shorthands. Each delegates to ComputeReadability, so the
// language checks and errors are identical either way.

func (st *SmoothText) FleschReadingEase(text string) (float64, error) {
	return st.ComputeReadability(text, FleschReadingEase)
}

func (st *SmoothText) FleschKincaidGrade(text string) (float64, error) {
	return st.ComputeReadability(text, FleschKincaidGrade)
}

func (st *SmoothText) FleschKincaidGradeSimplified(text string) (float64, error) {
	return st.ComputeReadability(text, FleschKincaidGradeSimplified)
}

func (st *SmoothText) GunningFogIndex(text string) (float64, error) {
	return st.ComputeReadability(text, GunningFogIndex)
}

func (st *SmoothText) AutomatedReadabilityIndex(text string) (float64, error) {
	return st.ComputeReadability(text, AutomatedReadabilityIndex)
}

func (st *SmoothText) Amstad(text string) (float64, error) {
	return st.ComputeReadability(text, Amstad)
}

// WienerSachtextformel scores German text with the requested version
// (1-4). Version 0 selects the general-purpose third formula.
func (st *SmoothText) WienerSachtextformel(text string, version int) (float64, error) {
	switch version {
	case 0, 3:
		return st.ComputeReadability(text, WienerSachtextformel3)
	case 1:
		return st.ComputeReadability(text, WienerSachtextformel1)
	case 2:
		return st.ComputeReadability(text, WienerSachtextformel2)
	case 4:
		return st.ComputeReadability(text, WienerSachtextformel4)
	}
	return 0, ConfigurationError{Reason: "wiener sachtextformel version must be 1-4"}
}

func (st *SmoothText) Atesman(text string) (float64, error) {
	return st.ComputeReadability(text, Atesman)
}

func (st *SmoothText) BezirciYilmaz(text string) (float64, error) {
	return st.ComputeReadability(text, BezirciYilmaz)
}

// Default returns the shared package-level instance, building it on
// first use with DefaultLanguage and DefaultBackend.
func Default() (*SmoothText, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		st, err := New(DefaultLanguage, DefaultBackend)
		if err != nil {
			return nil, err
		}
		instance = st
	}
	return instance, nil
}

// Package-level shorthands against the shared instance.

func Sentencize(text string) ([]string, error) {
	st, err := Default()
	if err != nil {
		return nil, err
	}
	return st.Sentencize(text), nil
}

func Tokenize(text string) ([]string, error) {
	st, err := Default()
	if err != nil {
		return nil, err
	}
	return st.Tokenize(text), nil
}

func CountSentences(text string) (int, error) {
	st, err := Default()
	if err != nil {
		return 0, err
	}
	return st.CountSentences(text), nil
}

func CountWords(text string) (int, error) {
	st, err := Default()
	if err != nil {
		return 0, err
	}
	return st.CountWords(text), nil
}

func CountSyllables(text string) (int, error) {
	st, err := Default()
	if err != nil {
		return 0, err
	}
	return st.CountSyllables(text), nil
}

func ComputeReadability(text string, formula ReadabilityFormula) (float64, error) {
	st, err := Default()
	if err != nil {
		return 0, err
	}
	return st.ComputeReadability(text, formula)
}

func Syllabify(word string) ([]string, error) {
	st, err := Default()
	if err != nil {
		return nil, err
	}
	return st.Syllabify(word), nil
}

func ComputeStatistics(text string, opts StatisticsOptions) (Statistics, error) {
	st, err := Default()
	if err != nil {
		return Statistics{}, err
	}
	return st.ComputeStatistics(text, opts)
}
