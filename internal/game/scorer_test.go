package game

import (
	"testing"

	"github.com/ssupppp/bowldem-reddit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() map[string]*models.Player {
	players := []*models.Player{
		{ID: "v-kohli", FullName: "Virat Kohli", Country: "India", Role: models.RoleBatsman},
		{ID: "j-bumrah", FullName: "Jasprit Bumrah", Country: "India", Role: models.RoleBowler},
		{ID: "h-pandya", FullName: "Hardik Pandya", Country: "India", Role: models.RoleAllRounder},
		{ID: "j-buttler", FullName: "Jos Buttler", Country: "England", Role: models.RoleWicketkeeper},
		{ID: "m-wade", FullName: "Matthew Wade", Country: "Australia", Role: models.RoleWicketkeeper},
		{ID: "d-warner", FullName: "David Warner", Country: "Australia", Role: models.RoleBatsman},
	}

	directory := make(map[string]*models.Player, len(players))
	for _, p := range players {
		directory[p.ID] = p
	}
	return directory
}

func testPuzzle() *models.Puzzle {
	return &models.Puzzle{
		ID:           1,
		TargetPlayer: "v-kohli",
		MatchData: models.MatchData{
			Scorecard: models.Scorecard{
				Venue:      "Melbourne Cricket Ground",
				Team1Name:  "India",
				Team2Name:  "Australia",
				Team1Score: "186/5",
				Team2Score: "182/8",
				Result:     "India won by 4 runs",
			},
			PlayersInMatch:   []string{"v-kohli", "j-bumrah", "h-pandya", "m-wade", "d-warner"},
			TargetPlayerTeam: "India",
			TargetPlayerRole: models.RoleBatsman,
		},
	}
}

func TestScoreTargetPlayer(t *testing.T) {
	feedback, err := Score("v-kohli", testPuzzle(), testDirectory())
	require.NoError(t, err)

	assert.True(t, feedback.IsMVP)
	assert.True(t, feedback.PlayedInGame)
	assert.True(t, feedback.SameTeam)
	assert.True(t, feedback.SameRole)
	assert.Equal(t, "Virat Kohli", feedback.PlayerName)
	assert.Equal(t, "India", feedback.Country)
	assert.Equal(t, models.RoleBatsman, feedback.Role)
}

func TestScoreFlags(t *testing.T) {
	tests := []struct {
		name         string
		playerID     string
		playedInGame bool
		sameTeam     bool
		sameRole     bool
	}{
		{
			name:         "teammate with different role",
			playerID:     "j-bumrah",
			playedInGame: true,
			sameTeam:     true,
			sameRole:     false,
		},
		{
			name:         "opponent with same role",
			playerID:     "d-warner",
			playedInGame: true,
			sameTeam:     false,
			sameRole:     true,
		},
		{
			name:         "not in the match at all",
			playerID:     "j-buttler",
			playedInGame: false,
			sameTeam:     false,
			sameRole:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, err := Score(tt.playerID, testPuzzle(), testDirectory())
			require.NoError(t, err)

			assert.False(t, feedback.IsMVP)
			assert.Equal(t, tt.playedInGame, feedback.PlayedInGame)
			assert.Equal(t, tt.sameTeam, feedback.SameTeam)
			assert.Equal(t, tt.sameRole, feedback.SameRole)
		})
	}
}

func TestScoreUnknownPlayer(t *testing.T) {
	feedback, err := Score("nobody", testPuzzle(), testDirectory())
	assert.ErrorIs(t, err, ErrUnknownPlayer)
	assert.Nil(t, feedback)
}

func TestReplayFeedback(t *testing.T) {
	history := ReplayFeedback([]string{"j-bumrah", "d-warner", "v-kohli"}, testPuzzle(), testDirectory())

	require.Len(t, history, 3)
	assert.Equal(t, "Jasprit Bumrah", history[0].PlayerName)
	assert.Equal(t, "David Warner", history[1].PlayerName)
	assert.True(t, history[2].IsMVP)
}

func TestReplayFeedbackSkipsUnknownIDs(t *testing.T) {
	history := ReplayFeedback([]string{"gone-from-pool", "j-bumrah"}, testPuzzle(), testDirectory())

	require.Len(t, history, 1)
	assert.Equal(t, "Jasprit Bumrah", history[0].PlayerName)
}
