package smoothtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoothtext/smoothtext"
)

const threeSentences = "This is a test sentence. This is another test sentence. This is a third test sentence."

func TestComputeStatistics(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	stats, err := st.ComputeStatistics(threeSentences, smoothtext.StatisticsOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Sentences)
	assert.Equal(t, 16, stats.Words)
	assert.Equal(t, 21, stats.Syllables)
	assert.Equal(t, 68, stats.Letters)
	assert.Equal(t, 24, stats.Vowels)
	assert.Equal(t, 44, stats.Consonants)

	wantSyllables := map[int]int{1: 12, 2: 3, 3: 1}
	if diff := cmp.Diff(wantSyllables, stats.SyllableFrequencies); diff != "" {
		t.Errorf("syllable frequencies mismatch (-want +got):\n%s", diff)
	}

	wantWords := map[string]int{
		"this": 3, "is": 3, "a": 2, "test": 3, "sentence": 3,
		"another": 1, "third": 1,
	}
	if diff := cmp.Diff(wantWords, stats.WordFrequencies); diff != "" {
		t.Errorf("word frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestWordFrequenciesSumToWordCount(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	stats, err := st.ComputeStatistics(threeSentences, smoothtext.StatisticsOptions{})
	require.NoError(t, err)

	sum := 0
	for _, n := range stats.WordFrequencies {
		sum += n
	}
	assert.Equal(t, stats.Words, sum)
}

func TestComputeStatisticsLemmatize(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	stats, err := st.ComputeStatistics("Running runners run.", smoothtext.StatisticsOptions{Lemmatize: true})
	require.NoError(t, err)

	want := map[string]int{"run": 2, "runner": 1}
	if diff := cmp.Diff(want, stats.WordFrequencies); diff != "" {
		t.Errorf("lemmatized frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestWithLemmatizeOption(t *testing.T) {
	st, err := smoothtext.New(smoothtext.EnglishUS, smoothtext.BackendPunkt,
		smoothtext.WithLemmatize())
	require.NoError(t, err)

	stats, err := st.ComputeStatistics("Running runners run.", smoothtext.StatisticsOptions{})
	require.NoError(t, err)

	want := map[string]int{"run": 2, "runner": 1}
	if diff := cmp.Diff(want, stats.WordFrequencies); diff != "" {
		t.Errorf("lemmatized frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatisticsLemmatizeTurkishNoOp(t *testing.T) {
	st := newAnalyzer(t, smoothtext.TurkishTR, smoothtext.BackendPunkt)

	stats, err := st.ComputeStatistics("Evler büyük.", smoothtext.StatisticsOptions{Lemmatize: true})
	require.NoError(t, err)

	// No Turkish stemmer; keys stay full words.
	assert.Contains(t, stats.WordFrequencies, "evler")
}

func TestComputeStatisticsEmpty(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	for _, text := range []string{"", "   ", "..."} {
		_, err := st.ComputeStatistics(text, smoothtext.StatisticsOptions{})
		var insufficient smoothtext.InsufficientTextError
		require.ErrorAs(t, err, &insufficient, "text %q", text)
	}
}

func TestCountVowelsAndConsonants(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

		assert.Equal(t, 3, st.CountVowels("Hello world"))
		assert.Equal(t, 7, st.CountConsonants("Hello world"))
		assert.Equal(t, 0, st.CountVowels("1994!"))
	})

	t.Run("Turkish", func(t *testing.T) {
		st := newAnalyzer(t, smoothtext.TurkishTR, smoothtext.BackendPunkt)

		// Dotless ı is a vowel.
		assert.Equal(t, 4, st.CountVowels("kapı açık"))
	})

	t.Run("German", func(t *testing.T) {
		st := newAnalyzer(t, smoothtext.GermanDE, smoothtext.BackendPunkt)

		// Umlauts are vowels.
		assert.Equal(t, 3, st.CountVowels("Häuser"))
	})
}

func TestTurkishCaseFolding(t *testing.T) {
	st := newAnalyzer(t, smoothtext.TurkishTR, smoothtext.BackendPunkt)

	stats, err := st.ComputeStatistics("ISPARTA güzel.", smoothtext.StatisticsOptions{})
	require.NoError(t, err)

	// Dotted/dotless distinction survives folding: I lowers to ı.
	assert.Contains(t, stats.WordFrequencies, "ısparta")
}

func TestSyllableFrequencies(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	got := st.SyllableFrequencies("Directed in 1994 by an American perfectionist.")
	// directed 3, in 1, by 1, an 1, american 4, perfectionist 4; 1994 excluded.
	want := map[int]int{1: 3, 3: 1, 4: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("syllable frequencies mismatch (-want +got):\n%s", diff)
	}
}
