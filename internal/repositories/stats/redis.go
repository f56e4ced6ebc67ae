package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// Key prefix for Redis
const statsKeyPrefix = "bowldem:stats:"

// ErrStatsNotFound is returned when a user has no stored stats yet
var ErrStatsNotFound = errors.New("user stats not found")

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
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

func statsKey(username string) string {
	return fmt.Sprintf("%s%s", statsKeyPrefix, username)
}

// GetStats retrieves a user's lifetime stats from Redis
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.UserStats, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	statsJSON, err := r.client.Get(ctx, statsKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats models.UserStats
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SaveStats persists a user's lifetime stats to Redis
func (r *redisRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	if input == nil || input.Stats == nil {
		return errors.New("input and stats cannot be nil")
	}

	if input.Username == "" {
		return errors.New("username cannot be empty")
	}

	statsJSON, err := json.Marshal(input.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.client.Set(ctx, statsKey(input.Username), statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}
