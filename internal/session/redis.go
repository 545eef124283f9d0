package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mathmaster/backend/internal/models"
)

// RedisStore is the session backend for deployments where the backend runs
// next to a Redis instance. No TTL: the slot lives until logout overwrites it.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedis(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// NewRedisWithClient wraps an existing client, used by tests.
func NewRedisWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context) (*models.User, error) {
	raw, err := s.rdb.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RedisStore) Set(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key, raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context) error {
	return s.rdb.Del(ctx, Key).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
