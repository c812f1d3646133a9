// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chusu_backend/internal/feature/fruits/domain/entity"
	"chusu_backend/internal/feature/fruits/usecase"
)

// CachingFruitRepository decorates a FruitRepository with Redis caching
// of the per-user list. It implements the decorator pattern,
// transparently adding caching without modifying the underlying
// repository. Writes go through to the store and invalidate the
// owner's cached list; cache failures never fail the request.
type CachingFruitRepository struct {
	inner     usecase.FruitRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.FruitRepository = (*CachingFruitRepository)(nil)

// NewCachingFruitRepository decorates a FruitRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "fruits". A nil client disables caching entirely.
func NewCachingFruitRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FruitRepository, namespace string) *CachingFruitRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "fruits"
	}
	return &CachingFruitRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves the user's fruits, checking cache first then falling
// back to the database.
func (c *CachingFruitRepository) List(ctx context.Context, userID uint) ([]entity.Fruit, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, userID)
	}

	key := c.listKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Fruit
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a point read and bypasses the cache.
func (c *CachingFruitRepository) FindByID(ctx context.Context, userID, id uint) (*entity.Fruit, error) {
	return c.inner.FindByID(ctx, userID, id)
}

// Create inserts the fruit and invalidates the owner's cached list.
func (c *CachingFruitRepository) Create(ctx context.Context, fruit *entity.Fruit) error {
	if err := c.inner.Create(ctx, fruit); err != nil {
		return err
	}
	c.invalidate(ctx, fruit.UserID)
	return nil
}

// Update persists the fruit and invalidates the owner's cached list.
func (c *CachingFruitRepository) Update(ctx context.Context, fruit *entity.Fruit) error {
	if err := c.inner.Update(ctx, fruit); err != nil {
		return err
	}
	c.invalidate(ctx, fruit.UserID)
	return nil
}

// Delete removes the fruit and invalidates the owner's cached list.
func (c *CachingFruitRepository) Delete(ctx context.Context, userID, id uint) error {
	if err := c.inner.Delete(ctx, userID, id); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// CountByUser is served by the store; counts feed the profile page and
// must not lag behind writes.
func (c *CachingFruitRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return c.inner.CountByUser(ctx, userID)
}

// CountPositive is served by the store.
func (c *CachingFruitRepository) CountPositive(ctx context.Context, userID uint) (int64, error) {
	return c.inner.CountPositive(ctx, userID)
}

// invalidate drops the owner's cached list. Best effort: a failed
// delete only means a stale read until the TTL expires.
func (c *CachingFruitRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(userID)).Err()
}

// listKey generates the cache key for a user's fruit list.
func (c *CachingFruitRepository) listKey(userID uint) string {
	return fmt.Sprintf("%s:list:%d", c.namespace, userID)
}
