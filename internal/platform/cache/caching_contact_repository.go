// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contact_backend/internal/feature/contacts/domain/entity"
	"contact_backend/internal/feature/contacts/usecase"
)

// CachingContactRepository decorates a ContactRepository with Redis caching
// of the per-owner contact list. Mutations invalidate the owner's entry, so
// silent-skip mutations (zero rows changed) leave the cache alone too.
type CachingContactRepository struct {
	inner     usecase.ContactRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.ContactRepository = (*CachingContactRepository)(nil)

// NewCachingContactRepository decorates a ContactRepository with Redis
// caching. If ttl is 0 it defaults to 5 minutes; an empty namespace
// defaults to "contacts".
func NewCachingContactRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ContactRepository, namespace string) *CachingContactRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "contacts"
	}
	return &CachingContactRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Insert persists the contact and invalidates the owner's cached list.
func (c *CachingContactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	if err := c.inner.Insert(ctx, contact); err != nil {
		return err
	}
	c.invalidate(ctx, contact.OwnerID)
	return nil
}

// FindByID bypasses the cache; single-record reads go straight through.
func (c *CachingContactRepository) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	return c.inner.FindByID(ctx, id)
}

// UpdateOwned delegates the owner-scoped update and invalidates the
// owner's cached list only when a row actually changed.
func (c *CachingContactRepository) UpdateOwned(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
	changed, err := c.inner.UpdateOwned(ctx, id, ownerID, name, email, mobile)
	if err != nil {
		return false, err
	}
	if changed {
		c.invalidate(ctx, ownerID)
	}
	return changed, nil
}

// DeleteOwned delegates the owner-scoped delete and invalidates the
// owner's cached list only when a row was removed.
func (c *CachingContactRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	removed, err := c.inner.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	if removed {
		c.invalidate(ctx, ownerID)
	}
	return removed, nil
}

// ListByOwner retrieves the owner's contacts, checking the cache first and
// falling back to the database.
func (c *CachingContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}

	key := c.cacheKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Contact
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops the owner's cached list. Best effort: a failed delete
// only costs a stale read until the TTL expires.
func (c *CachingContactRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(ownerID)).Err()
}

// cacheKey generates the cache key for an owner's contact list.
func (c *CachingContactRepository) cacheKey(ownerID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, ownerID)
}
