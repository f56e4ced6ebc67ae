package game

import (
	"time"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// NewUserStats returns zeroed lifetime stats with an empty win histogram
func NewUserStats() *models.UserStats {
	return &models.UserStats{
		GuessDistribution: make([]int, MaxGuesses),
	}
}

// ApplyResult folds one completed game into the user's lifetime stats. It
// must be invoked exactly once per terminal transition; the state machine
// guarantees a game reaches a terminal status only once.
//
// A win extends the streak only when the previous win was exactly one day
// earlier. Any other prior win date resets the streak to 1, except a repeat
// of the same date, which leaves the streak untouched so a double apply
// cannot double-count. Any loss breaks the streak outright.
func ApplyResult(stats *models.UserStats, won bool, guessCount int, puzzleDate string) {
	stats.GamesPlayed++

	if !won {
		stats.CurrentStreak = 0
		return
	}

	stats.GamesWon++

	if len(stats.GuessDistribution) < MaxGuesses {
		// Stored stats may predate the current histogram size
		resized := make([]int, MaxGuesses)
		copy(resized, stats.GuessDistribution)
		stats.GuessDistribution = resized
	}

	if guessCount >= 1 && guessCount <= len(stats.GuessDistribution) {
		stats.GuessDistribution[guessCount-1]++
	}

	switch {
	case stats.LastWinDate != "" && stats.LastWinDate == previousDay(puzzleDate):
		stats.CurrentStreak++
	case stats.LastWinDate == puzzleDate:
		// Already counted for this date
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}

	stats.LastWinDate = puzzleDate
}

func previousDay(dateKey string) string {
	day, err := time.Parse(DateLayout, dateKey)
	if err != nil {
		return ""
	}
	return day.AddDate(0, 0, -1).Format(DateLayout)
}
