package models

// Scorecard holds the display metadata for a puzzle's match
type Scorecard struct {
	// Venue is where the match was played
	Venue string `json:"venue"`

	// Team1Name is the first team's name
	Team1Name string `json:"team1Name"`

	// Team2Name is the second team's name
	Team2Name string `json:"team2Name"`

	// Team1Score is the first team's final score line
	Team1Score string `json:"team1Score"`

	// Team2Score is the second team's final score line
	Team2Score string `json:"team2Score"`

	// Result is the textual match result
	Result string `json:"result"`
}

// MatchData carries the comparison data a guess is scored against
type MatchData struct {
	// Scorecard is the match display metadata
	Scorecard Scorecard `json:"scorecard"`

	// PlayersInMatch lists the IDs of every player who took part
	PlayersInMatch []string `json:"playersInMatch"`

	// TargetPlayerTeam is the target player's team, denormalized for comparison
	TargetPlayerTeam string `json:"targetPlayerTeam"`

	// TargetPlayerRole is the target player's role, denormalized for comparison
	TargetPlayerRole Role `json:"targetPlayerRole"`
}

// Puzzle is one day's fixed match scenario with a designated target player.
// Puzzles are immutable reference data; their slice order defines sequencing.
type Puzzle struct {
	// ID is the sequential puzzle identifier
	ID int `json:"id"`

	// TargetPlayer is the ID of the man of the match
	TargetPlayer string `json:"targetPlayer"`

	// CricinfoURL optionally links to the full scorecard
	CricinfoURL string `json:"cricinfoUrl,omitempty"`

	// MatchData is the scoring data for the match
	MatchData MatchData `json:"matchData"`
}

// HasParticipant reports whether the player took part in the puzzle's match
func (p *Puzzle) HasParticipant(playerID string) bool {
	for _, id := range p.MatchData.PlayersInMatch {
		if id == playerID {
			return true
		}
	}
	return false
}

// Summary builds the post-win reveal for the puzzle. The target parameter is
// the directory entry for the puzzle's target player.
func (p *Puzzle) Summary(target *Player) *MatchSummary {
	summary := &MatchSummary{
		Result:      p.MatchData.Scorecard.Result,
		Team1Name:   p.MatchData.Scorecard.Team1Name,
		Team2Name:   p.MatchData.Scorecard.Team2Name,
		Team1Score:  p.MatchData.Scorecard.Team1Score,
		Team2Score:  p.MatchData.Scorecard.Team2Score,
		CricinfoURL: p.CricinfoURL,
	}

	if target != nil {
		summary.MVPName = target.FullName
		summary.MVPCountry = target.Country
		summary.MVPRole = target.Role
	}

	return summary
}

// MatchSummary is the reveal shown once a game is over
type MatchSummary struct {
	Result      string `json:"result"`
	Team1Name   string `json:"team1Name"`
	Team2Name   string `json:"team2Name"`
	Team1Score  string `json:"team1Score"`
	Team2Score  string `json:"team2Score"`
	MVPName     string `json:"mvpName"`
	MVPCountry  string `json:"mvpCountry"`
	MVPRole     Role   `json:"mvpRole"`
	CricinfoURL string `json:"cricinfoUrl,omitempty"`
}
