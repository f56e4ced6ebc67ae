package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ssupppp/bowldem-reddit/internal/repositories/leaderboard Repository

import "context"

// Repository defines the interface for the per-date winner ranking
type Repository interface {
	// RecordWin upserts a user's entry for the date with their guess count.
	// Re-submission overwrites; the operation is idempotent per (date, user).
	RecordWin(ctx context.Context, input *RecordWinInput) error

	// GetTop retrieves the best entries for a date, fewest guesses first
	GetTop(ctx context.Context, input *GetTopInput) (*GetTopOutput, error)

	// GetRank retrieves a user's 1-indexed rank and guess count for a date
	GetRank(ctx context.Context, input *GetRankInput) (*GetRankOutput, error)

	// CountWinners returns how many users have won on a date
	CountWinners(ctx context.Context, input *CountWinnersInput) (int64, error)
}
