package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"country-explorer/internal/restcountries"
)

type Config struct {
	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	ServerPort      string
	CountriesAPIURL string
	UserAgent       string
	HTTPTimeout     time.Duration
	CacheTTL        time.Duration
	SessionIdle     time.Duration
	LogLevel        string
}

var AppConfig Config

// Load reads an optional .env file, then the environment, into AppConfig.
func Load() error {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("COUNTRIES_API_URL", restcountries.DefaultBaseURL)
	v.SetDefault("USER_AGENT", "country-explorer/1.0")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("CACHE_TTL", "0s")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		RedisAddress:    v.GetString("REDIS_ADDRESS"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		ServerPort:      v.GetString("SERVER_PORT"),
		CountriesAPIURL: v.GetString("COUNTRIES_API_URL"),
		UserAgent:       v.GetString("USER_AGENT"),
		HTTPTimeout:     v.GetDuration("HTTP_TIMEOUT"),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		SessionIdle:     v.GetDuration("SESSION_IDLE_TIMEOUT"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func (c Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.SessionIdle < 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must not be negative, got %s", c.SessionIdle)
	}
	return nil
}
