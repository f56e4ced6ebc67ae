package play

import "errors"

// Construction and validation errors. Gameplay rejections reuse the
// sentinels from the game package so callers match a single set.
var (
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilGameData        = errors.New("game data cannot be nil")
	ErrNilGameStateRepo   = errors.New("game state repository cannot be nil")
	ErrNilStatsRepo       = errors.New("stats repository cannot be nil")
	ErrNilLeaderboardRepo = errors.New("leaderboard repository cannot be nil")
	ErrNilClock           = errors.New("clock cannot be nil")

	ErrMissingUsername = errors.New("username is required")
	ErrMissingPlayerID = errors.New("player key is required")
)
