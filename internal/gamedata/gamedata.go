// Package gamedata holds the embedded reference data: the guessable player
// pool and the ordered puzzle list. Both are loaded once at startup and
// treated as read-only for the process lifetime.
package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

//go:embed players.json
var playersJSON []byte

//go:embed puzzles.json
var puzzlesJSON []byte

type playersFile struct {
	Players []*models.Player `json:"players"`
}

type puzzlesFile struct {
	Puzzles []*models.Puzzle `json:"puzzles"`
}

// Data is the validated, immutable reference data set
type Data struct {
	// Players in file order, Active flags already derived
	Players []*models.Player

	// Puzzles in sequencing order
	Puzzles []*models.Puzzle

	directory map[string]*models.Player
}

// Load parses and validates the embedded data. Invalid data is a fatal
// configuration error; callers are expected to abort startup.
func Load() (*Data, error) {
	var pf playersFile
	if err := json.Unmarshal(playersJSON, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse players data: %w", err)
	}

	var zf puzzlesFile
	if err := json.Unmarshal(puzzlesJSON, &zf); err != nil {
		return nil, fmt.Errorf("failed to parse puzzles data: %w", err)
	}

	if len(pf.Players) == 0 {
		return nil, fmt.Errorf("players data is empty")
	}

	if len(zf.Puzzles) == 0 {
		return nil, fmt.Errorf("puzzles data is empty")
	}

	directory := make(map[string]*models.Player, len(pf.Players))
	for _, player := range pf.Players {
		if player.ID == "" {
			return nil, fmt.Errorf("player %q has an empty ID", player.FullName)
		}

		if !player.Role.Valid() {
			return nil, fmt.Errorf("player %s has unknown role %q", player.ID, player.Role)
		}

		if _, exists := directory[player.ID]; exists {
			return nil, fmt.Errorf("duplicate player ID %s", player.ID)
		}

		directory[player.ID] = player
	}

	for _, puzzle := range zf.Puzzles {
		if err := validatePuzzle(puzzle, directory); err != nil {
			return nil, fmt.Errorf("puzzle %d: %w", puzzle.ID, err)
		}

		for _, id := range puzzle.MatchData.PlayersInMatch {
			directory[id].Active = true
		}
	}

	return &Data{
		Players:   pf.Players,
		Puzzles:   zf.Puzzles,
		directory: directory,
	}, nil
}

func validatePuzzle(puzzle *models.Puzzle, directory map[string]*models.Player) error {
	target, ok := directory[puzzle.TargetPlayer]
	if !ok {
		return fmt.Errorf("target player %s not in player pool", puzzle.TargetPlayer)
	}

	if !puzzle.HasParticipant(puzzle.TargetPlayer) {
		return fmt.Errorf("target player %s missing from participant set", puzzle.TargetPlayer)
	}

	for _, id := range puzzle.MatchData.PlayersInMatch {
		if _, ok := directory[id]; !ok {
			return fmt.Errorf("participant %s not in player pool", id)
		}
	}

	// The denormalized comparison fields must agree with the directory,
	// otherwise scoring the target could not come up all-true.
	if puzzle.MatchData.TargetPlayerTeam != target.Country {
		return fmt.Errorf("target team %q does not match player country %q",
			puzzle.MatchData.TargetPlayerTeam, target.Country)
	}

	if puzzle.MatchData.TargetPlayerRole != target.Role {
		return fmt.Errorf("target role %q does not match player role %q",
			puzzle.MatchData.TargetPlayerRole, target.Role)
	}

	return nil
}

// Directory returns the ID-keyed player lookup map
func (d *Data) Directory() map[string]*models.Player {
	return d.directory
}

// Player looks up one player by ID
func (d *Data) Player(id string) (*models.Player, bool) {
	player, ok := d.directory[id]
	return player, ok
}
