// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games with the answer masked behind placeholders.
//   - Apply single-letter guesses: reveal matches, spend attempts on misses.
//   - Track state transitions: active -> won/lost, terminal states frozen.
//
// Notes:
//   - Answers are provided by the words package; they may contain spaces and
//     a small set of punctuation that is never masked and never guessable.
//   - Guesses reaching ApplyGuess are already normalized to one lowercase
//     ASCII letter by the HTTP boundary; matching against the answer is
//     case-insensitive, but Progress always shows the answer's original case.
package game

import (
	"errors"
	"unicode"

	"github.com/google/uuid"
)

// Domain rejections. Callers map these to user-facing responses; neither one
// mutates game state.
var (
	ErrGameOver      = errors.New("game already over")
	ErrLetterGuessed = errors.New("letter already guessed")
)

// preserved is the set of characters that pass through masking verbatim.
// They are part of the puzzle's shape, not letters to be guessed.
var preserved = map[rune]bool{
	' ':  true,
	'-':  true,
	':':  true,
	',':  true,
	'.':  true,
	'\'': true,
}

// New constructs a game for the given category and secret answer.
// The answer must be non-empty; the words package guarantees that.
func New(category, answer string) *Game {
	return &Game{
		ID:             uuid.NewString(),
		Category:       category,
		Answer:         answer,
		Progress:       Mask(answer),
		Attempts:       MaxAttempts,
		GuessedLetters: []string{},
	}
}

// Mask derives the initial progress string from an answer: every character
// becomes the placeholder except preserved punctuation, which shows through
// from the start. Pure and length-preserving.
func Mask(answer string) string {
	out := []rune(answer)
	for i, r := range out {
		if !preserved[r] {
			out[i] = Placeholder
		}
	}
	return string(out)
}

// ApplyGuess applies one normalized lowercase letter to the game, mutating it.
//
// Rejections (state untouched):
//   - ErrGameOver if the game is already in a terminal state.
//   - ErrLetterGuessed if the letter was submitted before.
//
// Otherwise every answer position matching the letter (case-insensitively) is
// revealed with the answer's original-case character; a guess with no matches
// costs one attempt. The letter is recorded either way. When the word is fully
// revealed or attempts run out the game goes terminal and Progress is forced
// to the full answer.
func (g *Game) ApplyGuess(letter string) (GuessResult, error) {
	if g.Over {
		return GuessResult{}, ErrGameOver
	}
	for _, prev := range g.GuessedLetters {
		if prev == letter {
			return GuessResult{}, ErrLetterGuessed
		}
	}

	guess := []rune(letter)[0]
	answer := []rune(g.Answer)
	progress := []rune(g.Progress)
	correct := false
	for i, r := range answer {
		if unicode.ToLower(r) == guess {
			progress[i] = r
			correct = true
		}
	}

	if !correct && g.Attempts > 0 {
		g.Attempts--
	}
	g.GuessedLetters = append(g.GuessedLetters, letter)
	g.Progress = string(progress)

	g.Over = g.Attempts == 0 || g.Progress == g.Answer
	if g.Over {
		g.Progress = g.Answer
	}
	return GuessResult{Correct: correct, Won: g.Won()}, nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Over {
		if g.Won() {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
