package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// Key prefix for Redis
const leaderboardKeyPrefix = "bowldem:leaderboard:"

// ErrNotRanked is returned when a user has no entry for the date
var ErrNotRanked = errors.New("user not on leaderboard")

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a sorted set per
// puzzle date, with the guess count as the score. Lower scores rank first.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

func leaderboardKey(puzzleDate string) string {
	return fmt.Sprintf("%s%s", leaderboardKeyPrefix, puzzleDate)
}

// RecordWin upserts a user's entry for the date with their guess count
func (r *redisRepository) RecordWin(ctx context.Context, input *RecordWinInput) error {
	if input == nil || input.PuzzleDate == "" || input.Username == "" {
		return errors.New("input, puzzle date and username cannot be empty")
	}

	err := r.client.ZAdd(ctx, leaderboardKey(input.PuzzleDate), redis.Z{
		Score:  float64(input.GuessCount),
		Member: input.Username,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

// GetTop retrieves the best entries for a date, fewest guesses first
func (r *redisRepository) GetTop(ctx context.Context, input *GetTopInput) (*GetTopOutput, error) {
	if input == nil || input.PuzzleDate == "" {
		return nil, errors.New("input and puzzle date cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		return &GetTopOutput{Entries: []*models.LeaderboardEntry{}}, nil
	}

	results, err := r.client.ZRangeWithScores(ctx, leaderboardKey(input.PuzzleDate), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard range: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(results))
	for i, z := range results {
		username, _ := z.Member.(string)
		entries = append(entries, &models.LeaderboardEntry{
			Rank:       i + 1,
			Username:   username,
			GuessCount: int(z.Score),
			Won:        true,
		})
	}

	return &GetTopOutput{Entries: entries}, nil
}

// GetRank retrieves a user's 1-indexed rank and guess count for a date
func (r *redisRepository) GetRank(ctx context.Context, input *GetRankInput) (*GetRankOutput, error) {
	if input == nil || input.PuzzleDate == "" || input.Username == "" {
		return nil, errors.New("input, puzzle date and username cannot be empty")
	}

	key := leaderboardKey(input.PuzzleDate)

	rank, err := r.client.ZRank(ctx, key, input.Username).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotRanked
		}
		return nil, fmt.Errorf("failed to get rank: %w", err)
	}

	score, err := r.client.ZScore(ctx, key, input.Username).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotRanked
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return &GetRankOutput{
		Rank:       int(rank) + 1,
		GuessCount: int(score),
	}, nil
}

// CountWinners returns how many users have won on a date
func (r *redisRepository) CountWinners(ctx context.Context, input *CountWinnersInput) (int64, error) {
	if input == nil || input.PuzzleDate == "" {
		return 0, errors.New("input and puzzle date cannot be empty")
	}

	count, err := r.client.ZCard(ctx, leaderboardKey(input.PuzzleDate)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count winners: %w", err)
	}

	return count, nil
}
