package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtsync/model"
	"courtsync/utils"

	"github.com/redis/go-redis/v9"
)

// DemoSessionStore is the persisted demo-session override. Presence of a
// record bypasses directory verification entirely: it is an intentional
// demonstration backdoor, written on demo sign-in and cleared on logout.
type DemoSessionStore interface {
	Put(ctx context.Context, token string, session *model.AuthSession) error
	Get(ctx context.Context, token string) (*model.AuthSession, error)
	Delete(ctx context.Context, token string) error
}

// DemoSessions is the global instance
var DemoSessions DemoSessionStore

type RedisDemoSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDemoSessionStore(redisURL string) (*RedisDemoSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisDemoSessionStore{
		client: client,
		ttl:    utils.GetEnvAsDuration("DEMO_SESSION_DURATION", 720*time.Hour),
	}, nil
}

func demoSessionKey(token string) string {
	return fmt.Sprintf("demo_session:%s", token)
}

func (s *RedisDemoSessionStore) Put(ctx context.Context, token string, session *model.AuthSession) error {
	if token == "" || session == nil {
		return fmt.Errorf("token and session required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal demo session: %v", err)
	}

	if err := s.client.Set(ctx, demoSessionKey(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist demo session: %v", err)
	}

	return nil
}

// Get returns the demo session for the token, or nil when none is stored.
func (s *RedisDemoSessionStore) Get(ctx context.Context, token string) (*model.AuthSession, error) {
	if token == "" {
		return nil, nil
	}

	data, err := s.client.Get(ctx, demoSessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read demo session: %v", err)
	}

	var session model.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal demo session: %v", err)
	}

	return &session, nil
}

func (s *RedisDemoSessionStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, demoSessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete demo session: %v", err)
	}
	return nil
}

func (s *RedisDemoSessionStore) Close() error {
	return s.client.Close()
}
