package gamestate

import "github.com/ssupppp/bowldem-reddit/internal/models"

// GetGameStateInput contains parameters for retrieving a game state
type GetGameStateInput struct {
	Username   string
	PuzzleDate string
}

// SaveGameStateInput contains parameters for saving a game state
type SaveGameStateInput struct {
	Username   string
	PuzzleDate string
	State      *models.GameState
}

// UpdateGameStateInput contains parameters for a serialized read-modify-write.
// Update receives the stored state, or nil when none exists yet, and returns
// the state to store. An error from Update aborts without writing.
type UpdateGameStateInput struct {
	Username   string
	PuzzleDate string
	Update     func(state *models.GameState) (*models.GameState, error)
}

// DeleteGameStateInput contains parameters for deleting a game state
type DeleteGameStateInput struct {
	Username   string
	PuzzleDate string
}
