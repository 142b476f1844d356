package featureswitch

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisHashKey is the hash holding one field per overridden switch.
const RedisHashKey = "casework:feature-switches"

// RedisStore keeps overrides in a Redis hash.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, name Name) (bool, bool, error) {
	raw, err := s.client.HGet(ctx, RedisHashKey, string(name)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("hget feature switch: %w", err)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("parse feature switch %s: %w", name, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, name Name, enabled bool) error {
	if err := s.client.HSet(ctx, RedisHashKey, string(name), strconv.FormatBool(enabled)).Err(); err != nil {
		return fmt.Errorf("hset feature switch: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name Name) error {
	if err := s.client.HDel(ctx, RedisHashKey, string(name)).Err(); err != nil {
		return fmt.Errorf("hdel feature switch: %w", err)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context) (map[Name]bool, error) {
	raw, err := s.client.HGetAll(ctx, RedisHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall feature switches: %w", err)
	}
	out := make(map[Name]bool, len(raw))
	for k, v := range raw {
		b, err := strconv.ParseBool(v)
		if err != nil {
			continue
		}
		out[Name(k)] = b
	}
	return out, nil
}

// MemoryStore keeps overrides in process. Used when Redis is not configured.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[Name]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[Name]bool)}
}

func (s *MemoryStore) Get(_ context.Context, name Name) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[name]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, name Name, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[name] = enabled
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name Name) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, name)
	return nil
}

func (s *MemoryStore) All(_ context.Context) (map[Name]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Name]bool, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out, nil
}
