package models

// GameStatus represents the current state of a user's daily game
type GameStatus string

const (
	// GameStatusNotStarted indicates no guess has been made yet
	GameStatusNotStarted GameStatus = "not_started"

	// GameStatusInProgress indicates at least one guess has been made
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusWon indicates the target player was guessed
	GameStatusWon GameStatus = "won"

	// GameStatusLost indicates all guesses were used without a win
	GameStatusLost GameStatus = "lost"
)

// Terminal reports whether the status permits no further guesses
func (s GameStatus) Terminal() bool {
	return s == GameStatusWon || s == GameStatusLost
}

// GameState is one user's progress on one day's puzzle. Exactly one instance
// exists per (user, puzzle date) pair and it is never reused across days.
type GameState struct {
	// PuzzleNumber is the day-count since the epoch date
	PuzzleNumber int `json:"puzzleNumber"`

	// PuzzleDate is the puzzle's UTC calendar date as YYYY-MM-DD
	PuzzleDate string `json:"puzzleDate"`

	// Guesses holds guessed player IDs in guess order, duplicates forbidden
	Guesses []string `json:"guesses"`

	// GameStatus is the current status of the game
	GameStatus GameStatus `json:"gameStatus"`
}

// HasGuessed reports whether the player ID was already guessed
func (g *GameState) HasGuessed(playerID string) bool {
	for _, id := range g.Guesses {
		if id == playerID {
			return true
		}
	}
	return false
}
