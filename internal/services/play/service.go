package play

import (
	"context"
	"errors"

	"github.com/ssupppp/bowldem-reddit/internal/common/clock"
	"github.com/ssupppp/bowldem-reddit/internal/game"
	"github.com/ssupppp/bowldem-reddit/internal/gamedata"
	"github.com/ssupppp/bowldem-reddit/internal/models"
	gameStateRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/gamestate"
	leaderboardRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/leaderboard"
	statsRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/stats"
)

const defaultLeaderboardSize = 20

// Config holds configuration for the play service
type Config struct {
	// GameData is the immutable player and puzzle reference data
	GameData *gamedata.Data

	// GameStateRepo persists per-(user, date) game states
	GameStateRepo gameStateRepo.Repository

	// StatsRepo persists lifetime user stats
	StatsRepo statsRepo.Repository

	// LeaderboardRepo maintains the per-date winner ranking
	LeaderboardRepo leaderboardRepo.Repository

	// Clock supplies the current time; injectable for tests
	Clock clock.Clock

	// LeaderboardSize caps the entries returned by GetLeaderboard
	LeaderboardSize int
}

// service implements the Service interface
type service struct {
	data            *gamedata.Data
	gameStateRepo   gameStateRepo.Repository
	statsRepo       statsRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	clock           clock.Clock
	leaderboardSize int
}

// New creates a new play service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameData == nil {
		return nil, ErrNilGameData
	}

	if cfg.GameStateRepo == nil {
		return nil, ErrNilGameStateRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	leaderboardSize := cfg.LeaderboardSize
	if leaderboardSize <= 0 {
		leaderboardSize = defaultLeaderboardSize
	}

	return &service{
		data:            cfg.GameData,
		gameStateRepo:   cfg.GameStateRepo,
		statsRepo:       cfg.StatsRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		clock:           cfg.Clock,
		leaderboardSize: leaderboardSize,
	}, nil
}

// GetDailyGame returns today's puzzle alongside the user's saved state,
// lifetime stats and replayed feedback history
func (s *service) GetDailyGame(ctx context.Context, input *GetDailyGameInput) (*GetDailyGameOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingUsername
	}

	now := s.clock.Now()
	puzzleDate := game.DateKey(now)

	puzzle, puzzleNumber, _, err := game.ResolvePuzzle(s.data.Puzzles, now)
	if err != nil {
		return nil, err
	}

	state, err := s.gameStateRepo.GetGameState(ctx, &gameStateRepo.GetGameStateInput{
		Username:   input.Username,
		PuzzleDate: puzzleDate,
	})
	if err != nil && !errors.Is(err, gameStateRepo.ErrGameStateNotFound) {
		return nil, err
	}

	stats, err := s.loadStats(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	output := &GetDailyGameOutput{
		Username:     input.Username,
		PuzzleNumber: puzzleNumber,
		PuzzleDate:   puzzleDate,
		Puzzle:       summarizePuzzle(puzzle),
		GameState:    state,
		Stats:        stats,
		NextPuzzleIn: game.FormatCountdown(game.NextPuzzleIn(now)),
	}

	if state != nil {
		output.FeedbackHistory = game.ReplayFeedback(state.Guesses, puzzle, s.data.Directory())

		if state.GameStatus == models.GameStatusWon {
			target, _ := s.data.Player(puzzle.TargetPlayer)
			output.MatchSummary = puzzle.Summary(target)
		}
	}

	return output, nil
}

// SubmitGuess validates and applies one guess for today's puzzle. The state
// transition runs inside the repository's per-key critical section; stats and
// leaderboard are applied once, only when this call produced the terminal
// transition.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingUsername
	}

	if input.PlayerID == "" {
		return nil, ErrMissingPlayerID
	}

	now := s.clock.Now()
	puzzleDate := game.DateKey(now)

	puzzle, puzzleNumber, _, err := game.ResolvePuzzle(s.data.Puzzles, now)
	if err != nil {
		return nil, err
	}

	var feedback *models.GuessFeedback
	state, err := s.gameStateRepo.UpdateGameState(ctx, &gameStateRepo.UpdateGameStateInput{
		Username:   input.Username,
		PuzzleDate: puzzleDate,
		Update: func(state *models.GameState) (*models.GameState, error) {
			if state == nil {
				state = game.NewGameState(puzzleNumber, puzzleDate)
			}

			fb, err := game.SubmitGuess(state, input.PlayerID, puzzle, s.data.Directory(), game.MaxGuesses)
			if err != nil {
				return nil, err
			}

			feedback = fb
			return state, nil
		},
	})
	if err != nil {
		return nil, err
	}

	stats, err := s.loadStats(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	output := &SubmitGuessOutput{
		Feedback:  feedback,
		GameState: state,
		Stats:     stats,
	}

	if !state.GameStatus.Terminal() {
		return output, nil
	}

	won := state.GameStatus == models.GameStatusWon

	game.ApplyResult(stats, won, len(state.Guesses), puzzleDate)

	err = s.statsRepo.SaveStats(ctx, &statsRepo.SaveStatsInput{
		Username: input.Username,
		Stats:    stats,
	})
	if err != nil {
		return nil, err
	}

	if won {
		err = s.leaderboardRepo.RecordWin(ctx, &leaderboardRepo.RecordWinInput{
			PuzzleDate: puzzleDate,
			Username:   input.Username,
			GuessCount: len(state.Guesses),
		})
		if err != nil {
			return nil, err
		}

		target, _ := s.data.Player(puzzle.TargetPlayer)
		output.MatchSummary = puzzle.Summary(target)
	}

	history := game.ReplayFeedback(state.Guesses, puzzle, s.data.Directory())
	output.ShareText = game.ShareText(puzzleNumber, history, stats.CurrentStreak)

	return output, nil
}

// GetLeaderboard returns today's winner ranking and the caller's entry
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingUsername
	}

	now := s.clock.Now()
	puzzleDate := game.DateKey(now)

	_, puzzleNumber, _, err := game.ResolvePuzzle(s.data.Puzzles, now)
	if err != nil {
		return nil, err
	}

	top, err := s.leaderboardRepo.GetTop(ctx, &leaderboardRepo.GetTopInput{
		PuzzleDate: puzzleDate,
		Limit:      s.leaderboardSize,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.leaderboardRepo.CountWinners(ctx, &leaderboardRepo.CountWinnersInput{
		PuzzleDate: puzzleDate,
	})
	if err != nil {
		return nil, err
	}

	readAt := now.UnixMilli()
	for _, entry := range top.Entries {
		entry.Timestamp = readAt
	}

	output := &GetLeaderboardOutput{
		PuzzleNumber: puzzleNumber,
		Entries:      top.Entries,
		TotalWinners: total,
	}

	rank, err := s.leaderboardRepo.GetRank(ctx, &leaderboardRepo.GetRankInput{
		PuzzleDate: puzzleDate,
		Username:   input.Username,
	})
	if err != nil {
		if errors.Is(err, leaderboardRepo.ErrNotRanked) {
			return output, nil
		}
		return nil, err
	}

	output.UserEntry = &models.LeaderboardEntry{
		Rank:       rank.Rank,
		Username:   input.Username,
		GuessCount: rank.GuessCount,
		Won:        true,
		Timestamp:  readAt,
	}

	return output, nil
}

// ListPlayers returns the full guessable player pool
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	return &ListPlayersOutput{
		Players: s.data.Players,
	}, nil
}

// ResetGame deletes the user's state for today. Debug use only; stats and
// leaderboard entries are left alone.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingUsername
	}

	puzzleDate := game.DateKey(s.clock.Now())

	err := s.gameStateRepo.DeleteGameState(ctx, &gameStateRepo.DeleteGameStateInput{
		Username:   input.Username,
		PuzzleDate: puzzleDate,
	})
	if err != nil {
		return nil, err
	}

	return &ResetGameOutput{PuzzleDate: puzzleDate}, nil
}

func (s *service) loadStats(ctx context.Context, username string) (*models.UserStats, error) {
	stats, err := s.statsRepo.GetStats(ctx, &statsRepo.GetStatsInput{
		Username: username,
	})
	if err != nil {
		if errors.Is(err, statsRepo.ErrStatsNotFound) {
			return game.NewUserStats(), nil
		}
		return nil, err
	}

	if stats.GuessDistribution == nil {
		stats.GuessDistribution = make([]int, game.MaxGuesses)
	}

	return stats, nil
}

func summarizePuzzle(puzzle *models.Puzzle) *PuzzleSummary {
	scorecard := puzzle.MatchData.Scorecard

	return &PuzzleSummary{
		ID:         puzzle.ID,
		Venue:      scorecard.Venue,
		Team1Name:  scorecard.Team1Name,
		Team2Name:  scorecard.Team2Name,
		Team1Score: scorecard.Team1Score,
		Team2Score: scorecard.Team2Score,
	}
}
