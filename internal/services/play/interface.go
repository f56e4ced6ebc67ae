package play

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ssupppp/bowldem-reddit/internal/services/play Service

import "context"

// Service defines the interface for daily game operations
type Service interface {
	// GetDailyGame returns today's puzzle alongside the user's saved state,
	// lifetime stats and replayed feedback history
	GetDailyGame(ctx context.Context, input *GetDailyGameInput) (*GetDailyGameOutput, error)

	// SubmitGuess validates and applies one guess for today's puzzle
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// GetLeaderboard returns today's winner ranking and the caller's entry
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ListPlayers returns the full guessable player pool
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// ResetGame deletes the user's state for today. Debug use only.
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)
}
