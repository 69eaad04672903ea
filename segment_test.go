package smoothtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoothtext/smoothtext"
)

func newAnalyzer(t *testing.T, language smoothtext.Language, backend smoothtext.Backend) *smoothtext.SmoothText {
	t.Helper()
	st, err := smoothtext.New(language, backend)
	require.NoError(t, err)
	return st
}

func TestSentencizeEnglish(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	text := "This is a test sentence. This is another test sentence. This is a third test sentence."
	got := st.Sentencize(text)
	want := []string{
		"This is a test sentence.",
		"This is another test sentence.",
		"This is a third test sentence.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, st.CountSentences(text))
}

func TestTokenizeEnglish(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	t.Run("DropsPunctuation", func(t *testing.T) {
		got := st.Tokenize("Hello, world!")
		want := []string{"Hello", "world"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("tokens mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Contractions", func(t *testing.T) {
		got := st.Tokenize("I don't know.")
		want := []string{"I", "do", "n't", "know"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("tokens mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("HyphenCompoundsStayWhole", func(t *testing.T) {
		got := st.Tokenize("A comedy-drama film.")
		want := []string{"A", "comedy-drama", "film"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("tokens mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("NumbersAreWords", func(t *testing.T) {
		assert.Equal(t, []string{"Released", "in", "1994"}, st.Tokenize("Released in 1994."))
	})

	t.Run("CountMatchesTokenize", func(t *testing.T) {
		text := "Forrest Gump is a 1994 American comedy-drama film directed by Robert Zemeckis."
		assert.Equal(t, len(st.Tokenize(text)), st.CountWords(text))
		assert.Equal(t, 12, st.CountWords(text))
	})
}

func TestTokenizeBySentence(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendPunkt)

	got := st.TokenizeBySentence("This is a test sentence. This is another test sentence.")
	want := [][]string{
		{"This", "is", "a", "test", "sentence"},
		{"This", "is", "another", "test", "sentence"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sentence tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestSentencizeGerman(t *testing.T) {
	st := newAnalyzer(t, smoothtext.GermanDE, smoothtext.BackendPunkt)

	t.Run("Abbreviations", func(t *testing.T) {
		got := st.Sentencize("Dr. Schmidt wohnt hier. Er arbeitet viel.")
		require.Len(t, got, 2)
		assert.Equal(t, "Dr. Schmidt wohnt hier.", got[0])
	})

	t.Run("InteriorDots", func(t *testing.T) {
		got := st.Sentencize("Es gibt Obst, z.B. Äpfel und Birnen. Alle mögen das.")
		require.Len(t, got, 2)
	})

	t.Run("Decimals", func(t *testing.T) {
		got := st.Sentencize("Die Zahl Pi ist etwa 3.14 und bekannt. Jeder kennt sie.")
		require.Len(t, got, 2)
	})
}

func TestSentencizeTurkish(t *testing.T) {
	st := newAnalyzer(t, smoothtext.TurkishTR, smoothtext.BackendPunkt)

	got := st.Sentencize("Bu bir test. Bu da başka bir test!")
	want := []string{"Bu bir test.", "Bu da başka bir test!"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
}

func TestUnisegBackend(t *testing.T) {
	st := newAnalyzer(t, smoothtext.EnglishUS, smoothtext.BackendUniseg)

	text := "This is a test sentence. This is another test sentence."
	assert.Equal(t, 2, st.CountSentences(text))
	assert.Equal(t, 10, st.CountWords(text))
	assert.Equal(t, len(st.Tokenize(text)), st.CountWords(text))
}

func TestBackendParse(t *testing.T) {
	b, err := smoothtext.ParseBackend("punkt")
	require.NoError(t, err)
	assert.Equal(t, smoothtext.BackendPunkt, b)

	b, err = smoothtext.ParseBackend(" Uniseg ")
	require.NoError(t, err)
	assert.Equal(t, smoothtext.BackendUniseg, b)

	_, err = smoothtext.ParseBackend("nltk")
	var unavailable smoothtext.BackendUnavailableError
	require.ErrorAs(t, err, &unavailable)
}
