package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/ssupppp/bowldem-reddit/internal/models"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testState() *models.GameState {
	return &models.GameState{
		PuzzleNumber: 2,
		PuzzleDate:   "2026-01-17",
		Guesses:      []string{"j-bumrah"},
		GameStatus:   models.GameStatusInProgress,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGameState() {
	state := s.testState()

	err := s.repo.SaveGameState(context.Background(), &SaveGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		State:      state,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(2, retrieved.PuzzleNumber)
	s.Equal("2026-01-17", retrieved.PuzzleDate)
	s.Equal([]string{"j-bumrah"}, retrieved.Guesses)
	s.Equal(models.GameStatusInProgress, retrieved.GameStatus)
}

func (s *RedisRepositoryTestSuite) TestGetGameStateNotFound() {
	_, err := s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "nobody",
		PuzzleDate: "2026-01-17",
	})
	s.ErrorIs(err, ErrGameStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestStatesAreScopedPerUserAndDate() {
	err := s.repo.SaveGameState(context.Background(), &SaveGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		State:      s.testState(),
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "other-user",
		PuzzleDate: "2026-01-17",
	})
	s.ErrorIs(err, ErrGameStateNotFound)

	_, err = s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-18",
	})
	s.ErrorIs(err, ErrGameStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameStateCreatesWhenAbsent() {
	updated, err := s.repo.UpdateGameState(context.Background(), &UpdateGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		Update: func(state *models.GameState) (*models.GameState, error) {
			s.Nil(state)
			return s.testState(), nil
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{"j-bumrah"}, updated.Guesses)

	retrieved, err := s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
	})
	s.Require().NoError(err)
	s.Equal(updated, retrieved)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameStateMutatesExisting() {
	err := s.repo.SaveGameState(context.Background(), &SaveGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		State:      s.testState(),
	})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateGameState(context.Background(), &UpdateGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		Update: func(state *models.GameState) (*models.GameState, error) {
			s.Require().NotNil(state)
			state.Guesses = append(state.Guesses, "h-pandya")
			return state, nil
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{"j-bumrah", "h-pandya"}, updated.Guesses)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameStateAbortsOnCallbackError() {
	errRejected := errors.New("rejected")

	_, err := s.repo.UpdateGameState(context.Background(), &UpdateGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		Update: func(state *models.GameState) (*models.GameState, error) {
			return nil, errRejected
		},
	})
	s.ErrorIs(err, errRejected)

	// Nothing was written
	_, err = s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
	})
	s.ErrorIs(err, ErrGameStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameStateRetriesOnConflict() {
	interfering, err := json.Marshal(&models.GameState{
		PuzzleNumber: 2,
		PuzzleDate:   "2026-01-17",
		Guesses:      []string{"v-kohli"},
		GameStatus:   models.GameStatusInProgress,
	})
	s.Require().NoError(err)

	calls := 0
	updated, err := s.repo.UpdateGameState(context.Background(), &UpdateGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		Update: func(state *models.GameState) (*models.GameState, error) {
			calls++
			if calls == 1 {
				// Dirty the watched key so the first transaction fails
				s.Require().NoError(s.mr.Set(gameStateKey("test-user", "2026-01-17"), string(interfering)))
				state = &models.GameState{PuzzleDate: "2026-01-17"}
				return state, nil
			}

			s.Require().NotNil(state)
			state.Guesses = append(state.Guesses, "r-sharma")
			return state, nil
		},
	})
	s.Require().NoError(err)
	s.Equal(2, calls)

	// The retry ran against the interfering write, not the stale read
	s.Equal([]string{"v-kohli", "r-sharma"}, updated.Guesses)
}

func (s *RedisRepositoryTestSuite) TestDeleteGameState() {
	err := s.repo.SaveGameState(context.Background(), &SaveGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
		State:      s.testState(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteGameState(context.Background(), &DeleteGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGameState(context.Background(), &GetGameStateInput{
		Username:   "test-user",
		PuzzleDate: "2026-01-17",
	})
	s.ErrorIs(err, ErrGameStateNotFound)
}
