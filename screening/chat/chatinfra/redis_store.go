package chatinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/introlligent/screener/screening/chat"
)

const historyTTL = 7 * 24 * time.Hour

// RedisStore keeps conversation history as a JSON blob per session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}

// Load returns the stored history, or an empty one for a new session.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]chat.Message, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, chat.ErrStoreFailed(err)
	}
	var history []chat.Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, chat.ErrStoreFailed(err)
	}
	return history, nil
}

// Save stores the history bounded to the retention limit.
func (s *RedisStore) Save(ctx context.Context, sessionID string, history []chat.Message) error {
	data, err := json.Marshal(chat.Bound(history))
	if err != nil {
		return chat.ErrStoreFailed(err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, historyTTL).Err(); err != nil {
		return chat.ErrStoreFailed(err)
	}
	return nil
}
