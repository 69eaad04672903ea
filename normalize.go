package smoothtext

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// NormalizeOptions controls emoji handling during normalization.
// Demojize and StripEmoji are mutually exclusive.
type NormalizeOptions struct {
	// Demojize replaces each emoji with its bracketed text description,
	// e.g. "🐈" -> "(cat)". Descriptions are English regardless of the
	// configured language.
	Demojize bool

	// StripEmoji removes emoji characters entirely.
	StripEmoji bool

	// Delimiters wrap emoji descriptions when demojizing.
	// Defaults to "(" and ")".
	Delimiters [2]string
}

var defaultDelimiters = [2]string{"(", ")"}

// Normalize cleans the text according to the options. Non-emoji content is
// returned byte for byte; sentence boundaries and word content are never
// touched.
func Normalize(text string, opts NormalizeOptions) (string, error) {
	if opts.Demojize && opts.StripEmoji {
		return "", ConfigurationError{Reason: "demojize and strip_emoji are mutually exclusive"}
	}

	switch {
	case opts.Demojize:
		left, right := opts.Delimiters[0], opts.Delimiters[1]
		if left == "" && right == "" {
			left, right = defaultDelimiters[0], defaultDelimiters[1]
		}
		return demojizeText(text, left, right), nil
	case opts.StripEmoji:
		return stripEmojiText(text), nil
	}
	return text, nil
}

// demojizeText replaces every distinct emoji with its description.
func demojizeText(text, left, right string) string {
	for _, e := range distinctEmoji(text) {
		description := strings.ReplaceAll(e.Slug, "-", " ")
		text = strings.ReplaceAll(text, e.Character, left+description+right)
	}
	return text
}

// stripEmojiText removes every distinct emoji, leaving all other
// characters in place.
func stripEmojiText(text string) string {
	for _, e := range distinctEmoji(text) {
		text = strings.ReplaceAll(text, e.Character, "")
	}
	return text
}

func distinctEmoji(text string) []gomoji.Emoji {
	var out []gomoji.Emoji
	seen := make(map[string]bool)
	for _, e := range gomoji.FindAll(text) {
		if !seen[e.Character] {
			seen[e.Character] = true
			out = append(out, e)
		}
	}
	return out
}
