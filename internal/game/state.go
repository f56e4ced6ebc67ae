package game

import (
	"errors"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

var (
	// ErrGameCompleted is returned when guessing on a won or lost game
	ErrGameCompleted = errors.New("game already completed")

	// ErrDuplicateGuess is returned when a player was already guessed today
	ErrDuplicateGuess = errors.New("player already guessed")
)

// NewGameState creates the state for a user's first guess of the day
func NewGameState(puzzleNumber int, puzzleDate string) *models.GameState {
	return &models.GameState{
		PuzzleNumber: puzzleNumber,
		PuzzleDate:   puzzleDate,
		Guesses:      []string{},
		GameStatus:   models.GameStatusInProgress,
	}
}

// SubmitGuess validates and applies one guess to the state, returning the
// computed feedback. The guess is appended in order and the status
// transitions to won on an exact hit, to lost when the final guess misses,
// and otherwise stays in progress. Won and lost are terminal.
func SubmitGuess(state *models.GameState, playerID string, puzzle *models.Puzzle, directory map[string]*models.Player, maxGuesses int) (*models.GuessFeedback, error) {
	if state.GameStatus.Terminal() {
		return nil, ErrGameCompleted
	}

	if state.HasGuessed(playerID) {
		return nil, ErrDuplicateGuess
	}

	feedback, err := Score(playerID, puzzle, directory)
	if err != nil {
		return nil, err
	}

	state.Guesses = append(state.Guesses, playerID)

	switch {
	case feedback.IsMVP:
		state.GameStatus = models.GameStatusWon
	case len(state.Guesses) >= maxGuesses:
		state.GameStatus = models.GameStatusLost
	default:
		state.GameStatus = models.GameStatusInProgress
	}

	return feedback, nil
}
