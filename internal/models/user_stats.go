package models

// UserStats holds a user's lifetime results. One instance exists per user and
// it is mutated exactly once per completed game.
type UserStats struct {
	// GamesPlayed is the number of games reaching a terminal state
	GamesPlayed int `json:"gamesPlayed"`

	// GamesWon is the number of games won
	GamesWon int `json:"gamesWon"`

	// CurrentStreak is the run of consecutive daily wins ending on the most recent win
	CurrentStreak int `json:"currentStreak"`

	// MaxStreak is the longest streak ever achieved
	MaxStreak int `json:"maxStreak"`

	// GuessDistribution counts wins by guesses used; index 0 holds one-guess wins
	GuessDistribution []int `json:"guessDistribution"`

	// LastWinDate is the YYYY-MM-DD date of the most recent win, empty if none
	LastWinDate string `json:"lastWinDate,omitempty"`
}
