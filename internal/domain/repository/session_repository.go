package repository

import (
	"autosallon/internal/common"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionRepository maps opaque session tokens to user ids. Sessions carry a
// fixed lifetime from creation; no sliding renewal.
type SessionRepository interface {
	Create(ctx context.Context, userID int) (string, error)
	// Get returns the user id for the token, or common.ErrNotFound when the
	// token is unknown or the session has expired.
	Get(ctx context.Context, token string) (int, error)
	// Delete is idempotent: removing an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "session:"

type redisSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionRepository(rdb *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *redisSessionRepository) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	err := r.rdb.Set(ctx, sessionKeyPrefix+token, strconv.Itoa(userID), r.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("redisSessionRepository.Create: %w", err)
	}
	return token, nil
}

func (r *redisSessionRepository) Get(ctx context.Context, token string) (int, error) {
	value, err := r.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("redisSessionRepository.Get: %w", err)
	}
	userID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("redisSessionRepository.Get: corrupt session value: %w", err)
	}
	return userID, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.Delete: %w", err)
	}
	return nil
}

type memorySession struct {
	userID    int
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
}

func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{sessions: map[string]memorySession{}, ttl: ttl}
}

func (r *memorySessionRepository) Create(_ context.Context, userID int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token := uuid.NewString()
	r.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(r.ttl)}
	return token, nil
}

func (r *memorySessionRepository) Get(_ context.Context, token string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok {
		return 0, common.ErrNotFound
	}
	if time.Now().After(session.expiresAt) {
		delete(r.sessions, token)
		return 0, common.ErrNotFound
	}
	return session.userID, nil
}

func (r *memorySessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
