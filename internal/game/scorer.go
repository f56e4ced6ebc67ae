package game

import (
	"errors"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// ErrUnknownPlayer is returned when a guessed ID is absent from the directory
var ErrUnknownPlayer = errors.New("unknown player")

// Score computes the four feedback flags for a guess against the day's
// puzzle. The flags are independent booleans; valid puzzle data guarantees
// that the target player scores true on all four.
func Score(playerID string, puzzle *models.Puzzle, directory map[string]*models.Player) (*models.GuessFeedback, error) {
	player, ok := directory[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	matchData := puzzle.MatchData

	return &models.GuessFeedback{
		PlayerName:   player.FullName,
		Country:      player.Country,
		Role:         player.Role,
		PlayedInGame: puzzle.HasParticipant(playerID),
		SameTeam:     player.Country == matchData.TargetPlayerTeam,
		SameRole:     player.Role == matchData.TargetPlayerRole,
		IsMVP:        playerID == puzzle.TargetPlayer,
	}, nil
}

// ReplayFeedback rebuilds the feedback history for a stored guess sequence.
// Feedback is never persisted; it is always derivable by replaying the
// guesses in order. IDs that no longer resolve are skipped.
func ReplayFeedback(guesses []string, puzzle *models.Puzzle, directory map[string]*models.Player) []*models.GuessFeedback {
	history := make([]*models.GuessFeedback, 0, len(guesses))

	for _, playerID := range guesses {
		feedback, err := Score(playerID, puzzle, directory)
		if err != nil {
			continue
		}
		history = append(history, feedback)
	}

	return history
}
