package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"country-explorer/internal/model"
)

type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisStore creates a store on top of redisClient. A zero ttl means keys never expire.
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *RedisStore) PutCountries(ctx context.Context, session string, countries []model.Country) error {
	jsonData, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("failed to marshal countries: %w", err)
	}
	if err := s.redisClient.Set(ctx, countriesKey(session), jsonData, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store countries: %w", err)
	}
	return nil
}

func (s *RedisStore) PutSelected(ctx context.Context, session, name string) error {
	if err := s.redisClient.Set(ctx, selectedKey(session), name, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store selected country: %w", err)
	}
	return nil
}

func (s *RedisStore) Selected(ctx context.Context, session string) (string, error) {
	name, err := s.redisClient.Get(ctx, selectedKey(session)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && name == "") {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch selected country: %w", err)
	}
	return name, nil
}

func (s *RedisStore) Clear(ctx context.Context, session string) error {
	if err := s.redisClient.Del(ctx, countriesKey(session), selectedKey(session)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
