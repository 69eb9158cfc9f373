// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's puzzle (creates or reuses session)
//   - POST /daily/guess       → submit a letter for today's puzzle
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user gets one run per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on finish.
// Deterministic word selection is based on date + salt over one category.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jawuanlewis/hangman-api/internal/daily"
	"github.com/jawuanlewis/hangman-api/internal/game"
	"github.com/jawuanlewis/hangman-api/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	category string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions and their games
}

// dailySession holds transient in-memory state for an in-progress daily run.
type dailySession struct {
	UserID    string
	Date      string
	WordIndex int
	Game      *game.Game
	Start     time.Time
	Recorded  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		category: getEnv("DAILY_CATEGORY", "movies"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key, deterministic word index, and answer.
func (d *dailyServer) dateKeyNow() (date string, idx int, answer string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	list := words.List(d.category)
	if len(list) == 0 {
		return date, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, len(list))
	return date, idx, list[idx]
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date           string   `json:"date"`
	Played         bool     `json:"played"`
	Category       string   `json:"category"`
	Progress       string   `json:"progress,omitempty"`
	Attempts       int      `json:"attempts,omitempty"`
	GuessedLetters []string `json:"guessedLetters,omitempty"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return its state.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, idx, answer := d.dateKeyNow()
	if answer == "" {
		http.Error(w, `{"error":"no_word_available"}`, http.StatusNotFound)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true, Category: d.category})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		sess = &dailySession{
			UserID:    uid,
			Date:      date,
			WordIndex: idx,
			Game:      game.New(d.category, answer),
			Start:     time.Now(),
		}
		d.sessions[key] = sess
	}
	res := dailyNewRes{
		Date:           date,
		Category:       d.category,
		Progress:       sess.Game.Progress,
		Attempts:       sess.Game.Attempts,
		GuessedLetters: sess.Game.GuessedLetters,
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	Guess string `json:"guess"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	gameStateRes
	IsCorrectGuess bool `json:"isCorrectGuess"`
}

// handleGuess validates and applies a letter to today's daily session.
// - Rejects if no session exists for today.
// - Validates the guess shape before touching the engine.
// - Persists the result row once the game goes terminal.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	guess := strings.TrimSpace(p.Guess)
	if !guessRe.MatchString(guess) {
		http.Error(w, `{"error":"invalid_guess"}`, http.StatusBadRequest)
		return
	}
	guess = strings.ToLower(guess)

	date, _, _ := d.dateKeyNow()
	key := uid + "|" + date

	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		d.mu.Unlock()
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	res, err := sess.Game.ApplyGuess(guess)
	state := publicState(sess.Game)
	finished := sess.Game.Over && !sess.Recorded
	if finished {
		sess.Recorded = true
	}
	elapsed := int(time.Since(sess.Start).Milliseconds())
	d.mu.Unlock()

	switch err {
	case nil:
	case game.ErrLetterGuessed:
		http.Error(w, `{"error":"letter_already_guessed"}`, http.StatusConflict)
		return
	case game.ErrGameOver:
		http.Error(w, `{"error":"game_over"}`, http.StatusConflict)
		return
	default:
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}

	if finished {
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID:       uid,
			Date:         date,
			WordIndex:    sess.WordIndex,
			AttemptsLeft: state.Attempts,
			Won:          state.Won,
			ElapsedMs:    elapsed,
		})
	}

	_ = json.NewEncoder(w).Encode(dailyGuessRes{gameStateRes: state, IsCorrectGuess: res.Correct})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
