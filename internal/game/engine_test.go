package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "plain word", answer: "JAWS", want: "____"},
		{name: "spaces preserved", answer: "THE LION KING", want: "___ ____ ____"},
		{name: "periods preserved", answer: "A.K.A.", want: "_._._."},
		{name: "apostrophe and space", answer: "SCHINDLER'S LIST", want: "_________'_ ____"},
		{name: "hyphen preserved", answer: "SPIDER-MAN", want: "______-___"},
		{name: "colon and comma", answer: "OK, GO: NOW", want: "__, __: ___"},
		{name: "mixed case masked the same", answer: "Jaws", want: "____"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mask(tt.answer)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.answer))
		})
	}
}

func TestNew(t *testing.T) {
	g := New("movies", "JAWS")
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "movies", g.Category)
	assert.Equal(t, "JAWS", g.Answer)
	assert.Equal(t, "____", g.Progress)
	assert.Equal(t, MaxAttempts, g.Attempts)
	assert.Empty(t, g.GuessedLetters)
	assert.False(t, g.Over)
	assert.False(t, g.Won())
	assert.Equal(t, "playing", g.State())
}

func TestApplyGuess_CorrectRevealsAllOccurrences(t *testing.T) {
	g := New("movies", "BANANA")
	res, err := g.ApplyGuess("a")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.False(t, res.Won)
	assert.Equal(t, "_A_A_A", g.Progress)
	assert.Equal(t, MaxAttempts, g.Attempts)
	assert.Equal(t, []string{"a"}, g.GuessedLetters)
}

func TestApplyGuess_CaseInsensitiveMatchOriginalCaseReveal(t *testing.T) {
	g := New("movies", "Jaws")
	res, err := g.ApplyGuess("j")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, "J___", g.Progress, "reveal keeps the answer's original case")
}

func TestApplyGuess_IncorrectSpendsOneAttempt(t *testing.T) {
	g := New("movies", "JAWS")
	res, err := g.ApplyGuess("z")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.False(t, res.Won)
	assert.Equal(t, "____", g.Progress)
	assert.Equal(t, MaxAttempts-1, g.Attempts)
	assert.Equal(t, []string{"z"}, g.GuessedLetters)
	assert.False(t, g.Over)
}

func TestApplyGuess_FullScenario(t *testing.T) {
	g := New("movies", "JAWS")

	res, err := g.ApplyGuess("a")
	require.NoError(t, err)
	assert.Equal(t, "_A__", g.Progress)
	assert.Equal(t, 6, g.Attempts)
	assert.False(t, g.Over)
	assert.True(t, res.Correct)
	assert.False(t, res.Won)

	res, err = g.ApplyGuess("s")
	require.NoError(t, err)
	assert.Equal(t, "_A_S", g.Progress)
	assert.Equal(t, 6, g.Attempts)
	assert.Equal(t, []string{"a", "s"}, g.GuessedLetters)

	res, err = g.ApplyGuess("w")
	require.NoError(t, err)
	assert.Equal(t, "_AWS", g.Progress)
	assert.False(t, g.Over)

	res, err = g.ApplyGuess("j")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Won)
	assert.Equal(t, "JAWS", g.Progress)
	assert.Equal(t, 6, g.Attempts)
	assert.True(t, g.Over)
	assert.True(t, g.Won())
	assert.Equal(t, "won", g.State())
}

func TestApplyGuess_LossForcesFullReveal(t *testing.T) {
	g := New("sports", "SOCCER")
	g.Attempts = 1

	res, err := g.ApplyGuess("z")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.False(t, res.Won)
	assert.Equal(t, 0, g.Attempts)
	assert.True(t, g.Over)
	assert.False(t, g.Won())
	assert.Equal(t, "SOCCER", g.Progress, "terminal games reveal the full answer")
	assert.Equal(t, "lost", g.State())
}

func TestApplyGuess_WinOnLastAttempt(t *testing.T) {
	// A correct guess never decrements attempts, so finishing the word with
	// one attempt left is still a win.
	g := New("movies", "JAWS")
	g.Attempts = 1
	for _, l := range []string{"j", "a", "w"} {
		_, err := g.ApplyGuess(l)
		require.NoError(t, err)
	}
	res, err := g.ApplyGuess("s")
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.True(t, g.Over)
	assert.True(t, g.Won())
	assert.Equal(t, 1, g.Attempts)
}

func TestApplyGuess_DuplicateLetterRejected(t *testing.T) {
	g := New("movies", "JAWS")
	_, err := g.ApplyGuess("a")
	require.NoError(t, err)

	before := *g
	beforeLetters := append([]string(nil), g.GuessedLetters...)

	_, err = g.ApplyGuess("a")
	assert.ErrorIs(t, err, ErrLetterGuessed)
	assert.Equal(t, before.Progress, g.Progress)
	assert.Equal(t, before.Attempts, g.Attempts)
	assert.Equal(t, beforeLetters, g.GuessedLetters)

	// Same for an already-guessed wrong letter.
	_, err = g.ApplyGuess("z")
	require.NoError(t, err)
	_, err = g.ApplyGuess("z")
	assert.ErrorIs(t, err, ErrLetterGuessed)
	assert.Equal(t, MaxAttempts-1, g.Attempts, "rejection must not spend an attempt")
}

func TestApplyGuess_TerminalStateIsFrozen(t *testing.T) {
	g := New("movies", "JAWS")
	g.Attempts = 1
	_, err := g.ApplyGuess("q")
	require.NoError(t, err)
	require.True(t, g.Over)

	progress, attempts := g.Progress, g.Attempts
	letters := append([]string(nil), g.GuessedLetters...)

	for _, l := range []string{"j", "q", "x"} {
		_, err := g.ApplyGuess(l)
		assert.ErrorIs(t, err, ErrGameOver)
	}
	assert.Equal(t, progress, g.Progress)
	assert.Equal(t, attempts, g.Attempts)
	assert.Equal(t, letters, g.GuessedLetters)
}

func TestApplyGuess_AttemptsNeverNegative(t *testing.T) {
	g := New("movies", "JAWS")
	wrong := []string{"b", "c", "d", "e", "f", "g", "h"}
	for _, l := range wrong {
		_, err := g.ApplyGuess(l)
		if g.Over && err != nil {
			assert.ErrorIs(t, err, ErrGameOver)
			continue
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.Attempts, 0)
	}
	assert.Equal(t, 0, g.Attempts)
	assert.True(t, g.Over)
}

func TestApplyGuess_PreservedPunctuationStaysRevealed(t *testing.T) {
	g := New("movies", "SCHINDLER'S LIST")
	assert.Equal(t, "_________'_ ____", g.Progress)

	_, err := g.ApplyGuess("s")
	require.NoError(t, err)
	assert.Equal(t, "S________'S __S_", g.Progress)

	_, err = g.ApplyGuess("z")
	require.NoError(t, err)
	assert.Equal(t, "S________'S __S_", g.Progress, "miss leaves progress untouched")
}

func TestApplyGuess_ProgressLengthInvariant(t *testing.T) {
	g := New("movies", "A.K.A.")
	for _, l := range []string{"a", "k", "z"} {
		_, err := g.ApplyGuess(l)
		require.NoError(t, err)
		assert.Len(t, g.Progress, len(g.Answer))
	}
}
