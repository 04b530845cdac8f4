package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tipsybean/tipsybean-backend-go/models"
)

// RedisSessions is the session scope: one record per authenticated user,
// expiring with the TTL the way a browsing session would.
type RedisSessions struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessions(client *redis.Client, ttl time.Duration) *RedisSessions {
	return &RedisSessions{client: client, ttl: ttl}
}

func sessionKey(email string) string {
	return "session:" + email
}

func (s *RedisSessions) SaveSession(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.Email), data, s.ttl).Err()
}

func (s *RedisSessions) GetSession(ctx context.Context, email string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(email)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession is idempotent: deleting an absent session succeeds.
func (s *RedisSessions) DeleteSession(ctx context.Context, email string) error {
	return s.client.Del(ctx, sessionKey(email)).Err()
}
