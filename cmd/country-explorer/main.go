package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"country-explorer/internal/cache"
	"country-explorer/internal/config"
	"country-explorer/internal/restcountries"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "country-explorer",
	Short: "Browse the countries of the world",
	Long: `country-explorer fetches the REST Countries dataset and lets you filter it by
region, subregion, population and name, sort it, and page through it.

  serve   run the HTTP API (one explorer session per client)
  browse  open the interactive terminal browser`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd, browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSource() *restcountries.Client {
	cfg := config.AppConfig
	return restcountries.NewClient(cfg.CountriesAPIURL, cfg.UserAgent, cfg.HTTPTimeout)
}

// openStore connects to Redis when an address is configured and falls back to memory otherwise.
// The returned func releases the connection.
func openStore(ctx context.Context, logger *zap.Logger) (cache.Store, func(), error) {
	cfg := config.AppConfig
	if cfg.RedisAddress == "" {
		logger.Info("REDIS_ADDRESS not set, using in-memory cache")
		return cache.NewMemoryStore(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify Redis connection
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddress, err)
	}
	logger.Info("Connected to Redis", zap.String("address", cfg.RedisAddress))

	return cache.NewRedisStore(redisClient, cfg.CacheTTL), func() { _ = redisClient.Close() }, nil
}
