package leaderboard

import "github.com/ssupppp/bowldem-reddit/internal/models"

// RecordWinInput contains parameters for recording a win
type RecordWinInput struct {
	PuzzleDate string
	Username   string
	GuessCount int
}

// GetTopInput contains parameters for retrieving the top entries
type GetTopInput struct {
	PuzzleDate string
	Limit      int
}

// GetTopOutput contains the ranked top entries for a date
type GetTopOutput struct {
	Entries []*models.LeaderboardEntry
}

// GetRankInput contains parameters for retrieving one user's rank
type GetRankInput struct {
	PuzzleDate string
	Username   string
}

// GetRankOutput contains one user's rank and score
type GetRankOutput struct {
	// Rank is 1-indexed
	Rank int

	// GuessCount is the stored score
	GuessCount int
}

// CountWinnersInput contains parameters for counting a date's winners
type CountWinnersInput struct {
	PuzzleDate string
}
