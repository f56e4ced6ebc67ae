package stats

import "github.com/ssupppp/bowldem-reddit/internal/models"

// GetStatsInput contains parameters for retrieving a user's stats
type GetStatsInput struct {
	Username string
}

// SaveStatsInput contains parameters for saving a user's stats
type SaveStatsInput struct {
	Username string
	Stats    *models.UserStats
}
