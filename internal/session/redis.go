package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// RedisStore keeps session tables in redis so multiple instances can share
// sessions. Tables are stored as JSON values with the session TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return "schedule:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (domain.ScheduleTable, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session %q: %w", sessionID, err)
	}

	var table domain.ScheduleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode session %q: %w", sessionID, err)
	}
	return table, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, table domain.ScheduleTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session %q: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session %q: %w", sessionID, err)
	}
	return nil
}
