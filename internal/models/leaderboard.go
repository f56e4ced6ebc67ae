package models

// LeaderboardEntry is one row of a day's winner ranking
type LeaderboardEntry struct {
	// Rank is the 1-indexed position, fewest guesses first
	Rank int `json:"rank"`

	// Username is the winner's username
	Username string `json:"username"`

	// GuessCount is how many guesses the win took
	GuessCount int `json:"guessCount"`

	// Won is always true; only winners are ranked
	Won bool `json:"won"`

	// Timestamp is when the entry was read, in milliseconds
	Timestamp int64 `json:"timestamp"`
}
