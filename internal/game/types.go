// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Game: state for a single in-progress or finished game.
//   - GuessResult: outcome flags returned for one applied guess.

package game

// MaxAttempts is the number of incorrect guesses a game allows.
const MaxAttempts = 6

// Placeholder is the character shown for an unrevealed letter.
const Placeholder = '_'

// Game holds the state of a single hangman session.
// The answer never leaves the server; Progress is the only outward-facing
// form of the word until the game is over.
type Game struct {
	ID             string   // Unique game identifier.
	Category       string   // Word category the answer was drawn from.
	Answer         string   // The secret word/phrase, original case.
	Progress       string   // Same length as Answer; revealed chars or placeholders.
	Attempts       int      // Incorrect guesses remaining, in [0, MaxAttempts].
	GuessedLetters []string // Lowercase letters in submission order, no repeats.
	Over           bool     // True once won or out of attempts; never unset.
}

// GuessResult reports what a single applied guess did.
type GuessResult struct {
	Correct bool // At least one position was revealed.
	Won     bool // The guess finished the game with attempts remaining.
}

// Won reports whether the game ended in a win.
// Derived, not stored: a loss exhausts attempts, a win never does.
func (g *Game) Won() bool {
	return g.Over && g.Attempts > 0
}
