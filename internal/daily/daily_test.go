package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", DateKey(ts))

	// Non-UTC times collapse to the UTC date.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2026-09-01", DateKey(time.Date(2026, 8, 31, 20, 0, 0, 0, est)))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 100)
	b := WordIndex(day.Add(3*time.Hour), "salt", 100)
	assert.Equal(t, a, b, "same date, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)

	assert.Zero(t, WordIndex(day, "salt", 0))
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	varies := false
	for i := 0; i < 10 && !varies; i++ {
		d := day.AddDate(0, 0, i)
		if WordIndex(d, "salt_a", 1000) != WordIndex(d, "salt_b", 1000) {
			varies = true
		}
	}
	assert.True(t, varies, "different salts should diverge within a few days")
}
