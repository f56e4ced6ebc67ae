package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ssupppp/bowldem-reddit/internal/repositories/stats Repository

import (
	"context"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// Repository defines the interface for lifetime user stats persistence
type Repository interface {
	// GetStats retrieves a user's lifetime stats
	GetStats(ctx context.Context, input *GetStatsInput) (*models.UserStats, error)

	// SaveStats persists a user's lifetime stats
	SaveStats(ctx context.Context, input *SaveStatsInput) error
}
