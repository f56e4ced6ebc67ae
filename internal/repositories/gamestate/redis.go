package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ssupppp/bowldem-reddit/internal/models"
)

const (
	// Key prefix for Redis
	gameStateKeyPrefix = "bowldem:game:"

	// Attempts before an optimistic update gives up
	maxUpdateRetries = 3
)

var (
	// ErrGameStateNotFound is returned when no state exists for the key
	ErrGameStateNotFound = errors.New("game state not found")

	// ErrStateConflict is returned when concurrent updates kept invalidating
	// the optimistic transaction
	ErrStateConflict = errors.New("game state was modified concurrently")
)

// Config holds configuration for the Redis game state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func gameStateKey(username, puzzleDate string) string {
	return fmt.Sprintf("%s%s:%s", gameStateKeyPrefix, username, puzzleDate)
}

// GetGameState retrieves a user's state for one puzzle date
func (r *redisRepository) GetGameState(ctx context.Context, input *GetGameStateInput) (*models.GameState, error) {
	if input == nil || input.Username == "" || input.PuzzleDate == "" {
		return nil, errors.New("input, username and puzzle date cannot be empty")
	}

	stateJSON, err := r.client.Get(ctx, gameStateKey(input.Username, input.PuzzleDate)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameStateNotFound
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return &state, nil
}

// SaveGameState persists a game state
func (r *redisRepository) SaveGameState(ctx context.Context, input *SaveGameStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.Username == "" || input.PuzzleDate == "" {
		return errors.New("username and puzzle date cannot be empty")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	key := gameStateKey(input.Username, input.PuzzleDate)
	if err := r.client.Set(ctx, key, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	return nil
}

// UpdateGameState runs the Update callback inside a WATCH transaction so each
// (user, date) key behaves as a critical section. A concurrent write between
// read and store fails the transaction and the update is retried against the
// fresh state; after maxUpdateRetries the conflict is surfaced.
func (r *redisRepository) UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*models.GameState, error) {
	if input == nil || input.Update == nil {
		return nil, errors.New("input and update callback cannot be nil")
	}

	if input.Username == "" || input.PuzzleDate == "" {
		return nil, errors.New("username and puzzle date cannot be empty")
	}

	key := gameStateKey(input.Username, input.PuzzleDate)

	var updated *models.GameState
	txn := func(tx *redis.Tx) error {
		var state *models.GameState

		stateJSON, err := tx.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get game state: %w", err)
		}

		if err == nil {
			state = &models.GameState{}
			if err := json.Unmarshal([]byte(stateJSON), state); err != nil {
				return fmt.Errorf("failed to unmarshal game state: %w", err)
			}
		}

		next, err := input.Update(state)
		if err != nil {
			return err
		}

		nextJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal game state: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, nextJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = next
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrStateConflict
}

// DeleteGameState removes a user's state for one puzzle date
func (r *redisRepository) DeleteGameState(ctx context.Context, input *DeleteGameStateInput) error {
	if input == nil || input.Username == "" || input.PuzzleDate == "" {
		return errors.New("input, username and puzzle date cannot be empty")
	}

	key := gameStateKey(input.Username, input.PuzzleDate)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	return nil
}
