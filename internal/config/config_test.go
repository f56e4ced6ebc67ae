package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Bind:            "0.0.0.0",
		Port:            8080,
		RedisAddr:       "localhost:6379",
		LeaderboardSize: 20,
		LogLevel:        "info",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"empty redis address", func(c *Config) { c.RedisAddr = "" }},
		{"zero leaderboard size", func(c *Config) { c.LeaderboardSize = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestListenAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
}

func TestParsedLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "debug"
	assert.Equal(t, logrus.DebugLevel, cfg.ParsedLogLevel())
}
