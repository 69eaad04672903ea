package smoothtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoothtext/smoothtext"
)

func TestNormalizeDemojize(t *testing.T) {
	got, err := smoothtext.Normalize("I love 🐈", smoothtext.NormalizeOptions{Demojize: true})
	require.NoError(t, err)
	assert.Equal(t, "I love (cat)", got)
}

func TestNormalizeDemojizeDelimiters(t *testing.T) {
	got, err := smoothtext.Normalize("I love 🐈", smoothtext.NormalizeOptions{
		Demojize:   true,
		Delimiters: [2]string{"[", "]"},
	})
	require.NoError(t, err)
	assert.Equal(t, "I love [cat]", got)
}

func TestNormalizeStripEmoji(t *testing.T) {
	got, err := smoothtext.Normalize("I love 🐈", smoothtext.NormalizeOptions{StripEmoji: true})
	require.NoError(t, err)
	assert.Equal(t, "I love ", got)
}

func TestNormalizeConflictingOptions(t *testing.T) {
	_, err := smoothtext.Normalize("text", smoothtext.NormalizeOptions{
		Demojize:   true,
		StripEmoji: true,
	})
	var config smoothtext.ConfigurationError
	require.ErrorAs(t, err, &config)
}

func TestNormalizeNoOptions(t *testing.T) {
	got, err := smoothtext.Normalize("I love 🐈", smoothtext.NormalizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "I love 🐈", got)
}

func TestInstanceDemojize(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	assert.Equal(t, "I love (cat)", st.Demojize("I love 🐈"))
	assert.Equal(t, "I love ", st.RemoveEmojis("I love 🐈"))
	assert.Equal(t, "plain text", st.Demojize("plain text"))
}

func TestDemojizeAffectsCounts(t *testing.T) {
	st, err := smoothtext.New(smoothtext.EnglishUS, smoothtext.BackendPunkt,
		smoothtext.WithDemojize())
	require.NoError(t, err)

	// "I love 🐈" scores as "I love (cat)".
	assert.Equal(t, 3, st.CountWords("I love 🐈"))

	plain := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)
	assert.Equal(t, 2, plain.CountWords("I love 🐈"))
}
