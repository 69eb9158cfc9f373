package daily

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE daily_results (
    user_id TEXT NOT NULL,
    date TEXT NOT NULL,
    word_index INTEGER NOT NULL,
    attempts_left INTEGER NOT NULL,
    won INTEGER NOT NULL DEFAULT 0,
    elapsed_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
    UNIQUE(user_id, date)
);
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestAlreadyPlayed(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	played, err := st.AlreadyPlayed(ctx, "u1", "2026-08-31")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u1", Date: "2026-08-31", WordIndex: 3, AttemptsLeft: 5, Won: true, ElapsedMs: 4200,
	}))

	played, err = st.AlreadyPlayed(ctx, "u1", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, played)

	// Other users and other days are unaffected.
	played, err = st.AlreadyPlayed(ctx, "u2", "2026-08-31")
	require.NoError(t, err)
	assert.False(t, played)
	played, err = st.AlreadyPlayed(ctx, "u1", "2026-09-01")
	require.NoError(t, err)
	assert.False(t, played)
}

func TestInsertResultKeepsFirstRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u1", Date: "2026-08-31", WordIndex: 3, AttemptsLeft: 5, Won: true, ElapsedMs: 4200,
	}))
	// A second result for the same user and day is silently ignored.
	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u1", Date: "2026-08-31", WordIndex: 3, AttemptsLeft: 6, Won: true, ElapsedMs: 100,
	}))

	rows, err := st.Leaderboard(ctx, "2026-08-31", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].AttemptsLeft)
	assert.Equal(t, 4200, rows[0].ElapsedMs)
}

func TestLeaderboardRanking(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	date := "2026-08-31"

	for _, r := range []Result{
		{UserID: "slow_perfect", Date: date, WordIndex: 1, AttemptsLeft: 6, Won: true, ElapsedMs: 9000},
		{UserID: "scrappy", Date: date, WordIndex: 1, AttemptsLeft: 4, Won: true, ElapsedMs: 5000},
		{UserID: "fast_perfect", Date: date, WordIndex: 1, AttemptsLeft: 6, Won: true, ElapsedMs: 2000},
		{UserID: "loser", Date: date, WordIndex: 1, AttemptsLeft: 0, Won: false, ElapsedMs: 100},
		{UserID: "yesterday", Date: "2026-08-30", WordIndex: 0, AttemptsLeft: 6, Won: true, ElapsedMs: 50},
	} {
		require.NoError(t, st.InsertResult(ctx, r))
	}

	rows, err := st.Leaderboard(ctx, date, 20)
	require.NoError(t, err)
	require.Len(t, rows, 3, "losers and other dates stay off the board")
	assert.Equal(t, "fast_perfect", rows[0].UserID)
	assert.Equal(t, "slow_perfect", rows[1].UserID)
	assert.Equal(t, "scrappy", rows[2].UserID)

	rows, err = st.Leaderboard(ctx, date, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "fast_perfect", rows[0].UserID)
}
