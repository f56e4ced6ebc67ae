package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ssupppp/bowldem-reddit/internal/common/clock"
	"github.com/ssupppp/bowldem-reddit/internal/config"
	"github.com/ssupppp/bowldem-reddit/internal/gamedata"
	"github.com/ssupppp/bowldem-reddit/internal/handlers/rest"
	gameStateRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/gamestate"
	leaderboardRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/leaderboard"
	statsRepo "github.com/ssupppp/bowldem-reddit/internal/repositories/stats"
	"github.com/ssupppp/bowldem-reddit/internal/services/play"
)

const releaseVersion = "0.1.0"

func main() {
	// Local development convenience, absent .env files are fine
	_ = godotenv.Load()

	cfg := &config.Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BOWLDEM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "bowldem-server",
		Short:         "API server for the daily Man of the Match deduction game.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: BOWLDEM_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: BOWLDEM_PORT)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "localhost:6379", "redis host:port (env: BOWLDEM_REDIS_ADDR)")
	fs.StringVar(&cfg.RedisPassword, "redis-password", "", "redis password (env: BOWLDEM_REDIS_PASSWORD)")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database number (env: BOWLDEM_REDIS_DB)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug endpoints (env: BOWLDEM_DEBUG)")
	fs.IntVar(&cfg.LeaderboardSize, "leaderboard-size", 20, "daily leaderboard entry count (env: BOWLDEM_LEADERBOARD_SIZE)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (env: BOWLDEM_LOG_LEVEL)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("bowldem-server v{{.Version}}\n")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logrus.New()
	logger.SetLevel(cfg.ParsedLogLevel())
	logger.SetFormatter(&logrus.JSONFormatter{})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	data, err := gamedata.Load()
	if err != nil {
		return fmt.Errorf("failed to load game data: %w", err)
	}

	gameStates, err := gameStateRepo.NewRedis(&gameStateRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create game state repository: %w", err)
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create stats repository: %w", err)
	}

	leaderboard, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard repository: %w", err)
	}

	playService, err := play.New(&play.Config{
		GameData:        data,
		GameStateRepo:   gameStates,
		StatsRepo:       stats,
		LeaderboardRepo: leaderboard,
		Clock:           &clock.DefaultClock{},
		LeaderboardSize: cfg.LeaderboardSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create play service: %w", err)
	}

	handler, err := rest.New(&rest.Config{
		PlayService: playService,
		Logger:      logger,
		Debug:       cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create rest handler: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":    server.Addr,
			"puzzles": len(data.Puzzles),
			"players": len(data.Players),
			"debug":   cfg.Debug,
		}).Info("server listening")

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case sig := <-sc:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	if err := redisClient.Close(); err != nil {
		logger.WithError(err).Warn("failed to close redis client")
	}

	logger.Info("server stopped")
	return nil
}
