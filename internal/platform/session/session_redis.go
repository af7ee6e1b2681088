// Package session provides the Redis-backed session store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/usecase"
)

// maxRetries bounds the optimistic retry loop when a concurrent writer
// invalidates a watched key.
const maxRetries = 5

// revokedRetention is how long a revoked record stays readable for audit.
const revokedRetention = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
// Expired sessions disappear on their own via key TTLs; revoked sessions
// keep a short tail for auditing. Mutations run as WATCH transactions so
// two writers on the same token can never clobber each other's state.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Create persists a new session with a TTL matching its expiry. A single
// SET makes creation atomic per token.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	return r.client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err()
}

// FindByID retrieves a session by its ID.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	return readSession(r.client.Get(ctx, r.sessionKey(id)))
}

// Refresh re-stamps the freshness deadline. The record is rewritten under
// WATCH, so a revocation that lands between the read and the write aborts
// the transaction instead of being erased; the retry then re-reads the
// revoked record and carries RevokedAt through untouched.
func (r *SessionRedis) Refresh(ctx context.Context, id string, freshUntil time.Time) error {
	key := r.sessionKey(id)
	return r.watch(ctx, key, func(tx *redis.Tx) error {
		session, err := readSession(tx.Get(ctx, key))
		if err != nil {
			return err
		}
		session.FreshUntil = freshUntil
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, redis.KeepTTL)
			return nil
		})
		return err
	})
}

// Revoke marks a session as revoked, under the same WATCH discipline as
// Refresh. Revoking twice leaves the first revocation time; the record is
// kept on a short TTL for audit purposes rather than deleted outright.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	key := r.sessionKey(id)
	return r.watch(ctx, key, func(tx *redis.Tx) error {
		session, err := readSession(tx.Get(ctx, key))
		if err != nil {
			return err
		}
		if session.RevokedAt != nil {
			return nil
		}
		now := time.Now()
		session.RevokedAt = &now
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, revokedRetention)
			return nil
		})
		return err
	})
}

// watch runs fn under WATCH on key, retrying when a concurrent write
// invalidates the transaction.
func (r *SessionRedis) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, fn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("session update contended: %s", key)
}

// readSession decodes a GET result into a session entity.
func readSession(cmd *redis.StringCmd) (*entity.Session, error) {
	data, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}
