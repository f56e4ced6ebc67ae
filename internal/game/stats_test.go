package game

import (
	"testing"

	"github.com/ssupppp/bowldem-reddit/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestApplyResultFirstWin(t *testing.T) {
	// Concrete scenario from fresh stats: one win in three guesses
	stats := NewUserStats()

	ApplyResult(stats, true, 3, "2026-02-01")

	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.GamesWon)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxStreak)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, stats.GuessDistribution)
	assert.Equal(t, "2026-02-01", stats.LastWinDate)
}

func TestApplyResultConsecutiveWinsExtendStreak(t *testing.T) {
	stats := NewUserStats()

	ApplyResult(stats, true, 2, "2026-02-01")
	ApplyResult(stats, true, 4, "2026-02-02")
	ApplyResult(stats, true, 1, "2026-02-03")

	assert.Equal(t, 3, stats.GamesPlayed)
	assert.Equal(t, 3, stats.GamesWon)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.MaxStreak)
	assert.Equal(t, "2026-02-03", stats.LastWinDate)
}

func TestApplyResultGapResetsStreakToOne(t *testing.T) {
	stats := NewUserStats()

	ApplyResult(stats, true, 2, "2026-02-01")
	ApplyResult(stats, true, 2, "2026-02-02")
	ApplyResult(stats, true, 2, "2026-02-05")

	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak)
}

func TestApplyResultLossBreaksStreak(t *testing.T) {
	stats := NewUserStats()

	ApplyResult(stats, true, 2, "2026-02-01")
	ApplyResult(stats, true, 2, "2026-02-02")
	ApplyResult(stats, false, 5, "2026-02-03")

	assert.Equal(t, 3, stats.GamesPlayed)
	assert.Equal(t, 2, stats.GamesWon)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak)

	// Loss does not touch the histogram or the last win date
	assert.Equal(t, []int{0, 2, 0, 0, 0}, stats.GuessDistribution)
	assert.Equal(t, "2026-02-02", stats.LastWinDate)
}

func TestApplyResultSameDateDoesNotDoubleCount(t *testing.T) {
	stats := NewUserStats()

	ApplyResult(stats, true, 3, "2026-02-01")
	ApplyResult(stats, true, 3, "2026-02-01")

	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxStreak)
}

func TestApplyResultResizesLegacyDistribution(t *testing.T) {
	stats := &models.UserStats{GuessDistribution: []int{1, 2}}

	ApplyResult(stats, true, 5, "2026-02-01")

	assert.Equal(t, []int{1, 2, 0, 0, 1}, stats.GuessDistribution)
}

func TestApplyResultIgnoresOutOfRangeGuessCount(t *testing.T) {
	stats := NewUserStats()

	ApplyResult(stats, true, 0, "2026-02-01")
	ApplyResult(stats, true, MaxGuesses+1, "2026-02-02")

	assert.Equal(t, []int{0, 0, 0, 0, 0}, stats.GuessDistribution)
	assert.Equal(t, 2, stats.GamesWon)
}

func TestShareText(t *testing.T) {
	history := []*models.GuessFeedback{
		{PlayedInGame: true, SameTeam: false, SameRole: true},
		{PlayedInGame: true, SameTeam: true, SameRole: true, IsMVP: true},
	}

	text := ShareText(12, history, 3)

	assert.Contains(t, text, "Bowldem #12")
	assert.Contains(t, text, "🟢🔴🟢🔴")
	assert.Contains(t, text, "🟢🟢🟢🏆")
	assert.Contains(t, text, "🔥3")
}

func TestShareTextNoStreakFlair(t *testing.T) {
	text := ShareText(1, nil, 1)
	assert.NotContains(t, text, "🔥")
}
