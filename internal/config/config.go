// Package config holds the server's runtime configuration. Values are
// populated from flags and BOWLDEM_ environment variables by the command
// layer; this package only defines and validates them.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the server
type Config struct {
	// Bind is the address to listen on
	Bind string

	// Port is the port to listen on
	Port int

	// RedisAddr is the Redis host:port
	RedisAddr string

	// RedisPassword is the Redis password, empty for none
	RedisPassword string

	// RedisDB is the Redis database number
	RedisDB int

	// Debug enables the debug endpoints
	Debug bool

	// LeaderboardSize is how many entries the daily leaderboard returns
	LeaderboardSize int

	// LogLevel is the logrus level name
	LogLevel string
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}

	if c.RedisAddr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	if c.LeaderboardSize < 1 {
		return fmt.Errorf("invalid leaderboard size (must be positive): %d", c.LeaderboardSize)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// ListenAddr returns the bind address and port as a dialable address
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

// ParsedLogLevel returns the configured logrus level. Validate must have
// passed first.
func (c *Config) ParsedLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
