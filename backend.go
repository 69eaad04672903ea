package smoothtext

import "strings"

// Backend identifies the segmentation engine an instance was built with.
// Segmentation output is not comparable across backends, so the backend is
// fixed at construction; changing it requires a new instance.
type Backend int

const (
	// BackendPunkt segments sentences with a Punkt-style model (the
	// neurosnap port of the NLTK tokenizer for English, a rule-based
	// splitter with abbreviation tables for German and Turkish) and words
	// with a treebank-style tokenizer.
	BackendPunkt Backend = iota

	// BackendUniseg segments sentences and words by Unicode UAX #29
	// boundaries for every language.
	BackendUniseg
)

var backendNames = map[Backend]string{
	BackendPunkt:  "Punkt",
	BackendUniseg: "Uniseg",
}

// Backends returns all selectable backends.
func Backends() []Backend {
	return []Backend{BackendPunkt, BackendUniseg}
}

// String returns the backend name.
func (b Backend) String() string {
	return backendNames[b]
}

// ParseBackend resolves a backend name, case-insensitively.
func ParseBackend(name string) (Backend, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends() {
		if s == strings.ToLower(backendNames[b]) {
			return b, nil
		}
	}
	return 0, BackendUnavailableError{Reason: "unknown backend " + name}
}

// segmenter is the capability interface a backend exposes to the pipeline:
// raw sentence and word splitting for one configured language. Filtering
// and counting stay in the adapter so every backend is filtered the same
// way.
type segmenter interface {
	sentencize(text string) []string
	tokenize(text string) []string
}

// newSegmenter builds the segmenter for a (backend, language) pair.
func newSegmenter(backend Backend, language Language) (segmenter, error) {
	switch backend {
	case BackendPunkt:
		return newPunktSegmenter(language)
	case BackendUniseg:
		return newUnisegSegmenter(language), nil
	}
	return nil, BackendUnavailableError{Backend: backend, Reason: "no segmenter registered"}
}
