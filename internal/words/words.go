// internal/words/words.go
//
// Provides category word lists for the game engine.
//
// Responsibilities:
//   - Load per-category answer lists from an environment-provided directory
//     or fall back to the embedded defaults in the assets package.
//   - Validate words: uppercase ASCII letters plus the small preserved
//     punctuation set the engine never masks (space - : , . ').
//   - Supply Random (category draw), Categories, IsCategory, and Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_DIR is set, each category is loaded from
//      $WORDS_DIR/<category>.txt when that file exists.
//   2. Otherwise (or for missing files) the embedded list is used.
//
// Constraints:
//   • Words are normalized to uppercase; invalid lines are dropped.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jawuanlewis/hangman-api/assets"
)

// categories is the fixed set of word categories the API serves.
// Request validation treats this as an enum.
var categories = []string{"animals", "countries", "movies", "sports"}

var (
	initOnce   sync.Once
	lists      map[string][]string // category -> validated answers
	initialErr error
)

// Init loads all category lists exactly once.
// Returns an error if any category ends up empty.
func Init() error {
	initOnce.Do(func() {
		lists = make(map[string][]string, len(categories))
		dir := os.Getenv("WORDS_DIR")

		for _, cat := range categories {
			var raw []string
			var err error

			if dir != "" {
				path := filepath.Join(dir, cat+".txt")
				if _, statErr := os.Stat(path); statErr == nil {
					raw, err = readWordFile(path)
					if err != nil {
						initialErr = err
						return
					}
				}
			}
			if raw == nil {
				raw, err = assets.CategoryList(cat)
				if err != nil {
					initialErr = err
					return
				}
			}

			var valid []string
			for _, w := range raw {
				if isValidWord(w) {
					valid = append(valid, w)
				}
			}
			if len(valid) == 0 {
				initialErr = errors.New("words: empty category " + cat)
				return
			}
			lists[cat] = valid
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, trimming and uppercasing.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isValidWord reports whether w consists of uppercase ASCII letters plus the
// preserved punctuation set, with at least one letter to guess.
func isValidWord(w string) bool {
	hasLetter := false
	for _, r := range w {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r == ' ' || r == '-' || r == ':' || r == ',' || r == '.' || r == '\'':
		default:
			return false
		}
	}
	return hasLetter
}

// Categories returns the supported category names.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether name is a supported category.
func IsCategory(name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

// Random returns a cryptographically random answer for the category.
// ok is false when the category is unknown or has no words loaded; callers
// surface that as a no-content condition and never start a game.
func Random(category string) (word string, ok bool) {
	list := lists[category]
	if len(list) == 0 {
		return "", false
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", false
	}
	return list[nBig.Int64()], true
}

// List returns the full (loaded) answer list for a category.
// Used by the daily challenge for deterministic word-of-the-day selection.
func List(category string) []string {
	return lists[category]
}

// Stats returns the loaded word count per category.
func Stats() map[string]int {
	out := make(map[string]int, len(lists))
	for c, l := range lists {
		out[c] = len(l)
	}
	return out
}
