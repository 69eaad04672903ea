package smoothtext

import "fmt"

// UnsupportedLanguageError is returned when a language code cannot be
// resolved against the registry.
type UnsupportedLanguageError struct {
	Code string
}

func (e UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", e.Code)
}

// UnsupportedFormulaError is returned when a readability formula is applied
// to a language it was not designed for. The score is never approximated.
type UnsupportedFormulaError struct {
	Formula  ReadabilityFormula
	Language Language
}

func (e UnsupportedFormulaError) Error() string {
	return fmt.Sprintf("formula %s does not support %s", e.Formula, e.Language)
}

// ConfigurationError is returned for conflicting or illegal configuration,
// such as requesting demojization and emoji stripping at the same time, or
// attempting to change the backend of an existing instance.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// InsufficientTextError is returned when a computation requires at least one
// sentence and one word but the input provides neither. Formulas fail with
// this error instead of dividing by zero.
type InsufficientTextError struct {
	Reason string
}

func (e InsufficientTextError) Error() string {
	return "insufficient text: " + e.Reason
}

// BackendUnavailableError is returned when the requested segmentation
// backend cannot be constructed for a language and no fallback succeeded.
type BackendUnavailableError struct {
	Backend Backend
	Reason  string
}

func (e BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend %s unavailable: %s", e.Backend, e.Reason)
}
