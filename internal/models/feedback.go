package models

// GuessFeedback is the four-flag result of scoring one guess against the
// day's puzzle. It is never persisted; history is replayed from the stored
// guess sequence.
type GuessFeedback struct {
	// PlayerName is the guessed player's display name
	PlayerName string `json:"playerName"`

	// Country is the guessed player's team affiliation
	Country string `json:"country"`

	// Role is the guessed player's role
	Role Role `json:"role"`

	// PlayedInGame is true when the guessed player took part in the match
	PlayedInGame bool `json:"playedInGame"`

	// SameTeam is true when the guessed player shares the target's team
	SameTeam bool `json:"sameTeam"`

	// SameRole is true when the guessed player shares the target's role
	SameRole bool `json:"sameRole"`

	// IsMVP is true when the guessed player is the target, winning the game
	IsMVP bool `json:"isMVP"`
}
