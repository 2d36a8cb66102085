package intakeinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/introlligent/screener/screening/intake"
)

const tokenTTL = 24 * time.Hour

// RedisTokenStore keeps OAuth tokens in Redis keyed by session ID.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) key(sessionID string) string {
	return fmt.Sprintf("oauth:token:%s", sessionID)
}

func (s *RedisTokenStore) Save(ctx context.Context, sessionID string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return intake.ErrTokenStorage(err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, tokenTTL).Err(); err != nil {
		return intake.ErrTokenStorage(err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context, sessionID string) (*oauth2.Token, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, intake.ErrNotAuthenticated()
	}
	if err != nil {
		return nil, intake.ErrTokenStorage(err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, intake.ErrTokenStorage(err)
	}
	return &token, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return intake.ErrTokenStorage(err)
	}
	return nil
}
