package models

// Role classifies a player within the fixed closed set of cricket roles
type Role string

const (
	// RoleBatsman indicates a specialist batsman
	RoleBatsman Role = "Batsman"

	// RoleBowler indicates a specialist bowler
	RoleBowler Role = "Bowler"

	// RoleAllRounder indicates a player who both bats and bowls
	RoleAllRounder Role = "All-rounder"

	// RoleWicketkeeper indicates the wicketkeeper
	RoleWicketkeeper Role = "Wicketkeeper"
)

// Valid reports whether the role is one of the closed set
func (r Role) Valid() bool {
	switch r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketkeeper:
		return true
	}
	return false
}

// Player is immutable reference data for one guessable cricketer
type Player struct {
	// ID is the unique key for the player
	ID string `json:"id"`

	// FullName is the display name of the player
	FullName string `json:"fullName"`

	// Country is the player's team affiliation
	Country string `json:"country"`

	// Role is the player's role within the closed set
	Role Role `json:"role"`

	// Active marks players who appear in at least one puzzle's participant set
	Active bool `json:"active"`
}
