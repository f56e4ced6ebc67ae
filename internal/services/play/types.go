package play

import "github.com/ssupppp/bowldem-reddit/internal/models"

// PuzzleSummary is the non-spoiling subset of a puzzle shown before a win
type PuzzleSummary struct {
	ID         int    `json:"id"`
	Venue      string `json:"venue"`
	Team1Name  string `json:"team1Name"`
	Team2Name  string `json:"team2Name"`
	Team1Score string `json:"team1Score"`
	Team2Score string `json:"team2Score"`
}

// GetDailyGameInput contains parameters for loading today's game
type GetDailyGameInput struct {
	Username string
}

// GetDailyGameOutput contains today's puzzle and the user's progress
type GetDailyGameOutput struct {
	Username     string
	PuzzleNumber int
	PuzzleDate   string
	Puzzle       *PuzzleSummary

	// GameState is nil until the user's first guess of the day
	GameState *models.GameState

	Stats *models.UserStats

	// FeedbackHistory is replayed from the stored guesses
	FeedbackHistory []*models.GuessFeedback

	// MatchSummary is set once the game is won
	MatchSummary *models.MatchSummary

	// NextPuzzleIn is the HH:MM:SS countdown to the next puzzle
	NextPuzzleIn string
}

// SubmitGuessInput contains parameters for one guess
type SubmitGuessInput struct {
	Username string
	PlayerID string
}

// SubmitGuessOutput contains the guess outcome
type SubmitGuessOutput struct {
	Feedback  *models.GuessFeedback
	GameState *models.GameState
	Stats     *models.UserStats

	// MatchSummary is set when this guess won the game
	MatchSummary *models.MatchSummary

	// ShareText is set once the game reaches a terminal state
	ShareText string
}

// GetLeaderboardInput contains parameters for today's leaderboard
type GetLeaderboardInput struct {
	Username string
}

// GetLeaderboardOutput contains today's ranking
type GetLeaderboardOutput struct {
	PuzzleNumber int
	Entries      []*models.LeaderboardEntry

	// UserEntry is nil when the caller has not won today
	UserEntry *models.LeaderboardEntry

	TotalWinners int64
}

// ListPlayersInput contains parameters for listing the player pool
type ListPlayersInput struct {
}

// ListPlayersOutput contains the full player pool
type ListPlayersOutput struct {
	Players []*models.Player
}

// ResetGameInput contains parameters for the debug reset
type ResetGameInput struct {
	Username string
}

// ResetGameOutput reports which date was reset
type ResetGameOutput struct {
	PuzzleDate string
}
