package gamestate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ssupppp/bowldem-reddit/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// Repository defines the interface for per-(user, date) game state persistence
type Repository interface {
	// GetGameState retrieves a user's state for one puzzle date
	GetGameState(ctx context.Context, input *GetGameStateInput) (*models.GameState, error)

	// SaveGameState persists a game state
	SaveGameState(ctx context.Context, input *SaveGameStateInput) error

	// UpdateGameState runs a read-modify-write against a state key as a
	// critical section, serializing concurrent writers on the same key
	UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*models.GameState, error)

	// DeleteGameState removes a user's state for one puzzle date
	DeleteGameState(ctx context.Context, input *DeleteGameStateInput) error
}
