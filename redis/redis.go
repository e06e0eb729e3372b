// Package redis provides a Redis-backed fiber.Storage so request rate limits
// are shared by every site instance.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleetra/site/config"
)

// ErrNotConfigured is returned when no Redis address is set.
var ErrNotConfigured = errors.New("redis address not configured")

const keyPrefix = "fleetra:limiter:"

// Storage implements fiber.Storage on a Redis client.
type Storage struct {
	client *redis.Client
}

// NewStorage connects to the configured Redis server and checks it responds.
func NewStorage(ctx context.Context) (*Storage, error) {
	if config.RedisAddress == "" {
		return nil, ErrNotConfigured
	}
	s := newStorage(config.RedisAddress, config.RedisPassword)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		s.client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", config.RedisAddress, err)
	}
	return s, nil
}

func newStorage(addr, password string) *Storage {
	return &Storage{client: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  2 * time.Second, // How long to wait when establishing connection
		ReadTimeout:  1 * time.Second, // How long to wait for response
		WriteTimeout: 1 * time.Second, // How long to wait when sending data
	})}
}

func key(k string) string {
	return keyPrefix + k
}

// Get returns nil without error for a missing key, as fiber.Storage expects.
func (s *Storage) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, nil
	}
	val, err := s.client.Get(context.Background(), key(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(k string, val []byte, exp time.Duration) error {
	if k == "" || len(val) == 0 {
		return nil
	}
	return s.client.Set(context.Background(), key(k), val, exp).Err()
}

func (s *Storage) Delete(k string) error {
	if k == "" {
		return nil
	}
	return s.client.Del(context.Background(), key(k)).Err()
}

// Reset removes only limiter keys; the database may be shared.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// StartHealthCheck logs when the Redis server stops answering, until ctx is
// done.
func (s *Storage) StartHealthCheck(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(30 * time.Second) // Check every 30 seconds
		defer ticker.Stop()

		log.Printf("[redis] Starting health check for Redis at %s", config.RedisAddress)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.client.Ping(ctx).Err(); err != nil {
					log.Printf("[redis] HEALTH CHECK FAILED - Redis server at %s is down: %v", config.RedisAddress, err)
				}
			}
		}
	}()
}
