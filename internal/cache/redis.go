package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/interview-match/internal/config"
)

const (
	quotaTTL        = 10 * time.Minute
	quotaVersionTTL = 48 * time.Hour
	matchCountTTL   = time.Hour
)

var errQuotaVersionMoved = errors.New("quota version moved")

// RedisCache fronts read-heavy lookups. The database stays the source of
// truth: every cached value is either refreshed on read-miss or deleted on write.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// QuotaSnapshot is the cached availability of one user on one day.
type QuotaSnapshot struct {
	Base      int `json:"base"`
	Bonus     int `json:"bonus"`
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// KeyForQuota generates Redis key for a user's availability on dayKey.
func KeyForQuota(userID uint64, dayKey string) string {
	return fmt.Sprintf("quota:avail:%d:%s", userID, dayKey)
}

// KeyForQuotaVersion is the invalidation counter guarding KeyForQuota.
func KeyForQuotaVersion(userID uint64, dayKey string) string {
	return fmt.Sprintf("quota:ver:%d:%s", userID, dayKey)
}

// KeyForMatchCount generates Redis key for a user's accepted match count.
func KeyForMatchCount(userID uint64) string {
	return fmt.Sprintf("matches:count:%d", userID)
}

// GetQuota returns the cached snapshot; ok=false on miss.
func (c *RedisCache) GetQuota(ctx context.Context, userID uint64, dayKey string) (QuotaSnapshot, bool, error) {
	raw, err := c.Client.Get(ctx, KeyForQuota(userID, dayKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return QuotaSnapshot{}, false, nil
	} else if err != nil {
		return QuotaSnapshot{}, false, err
	}
	var snap QuotaSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return QuotaSnapshot{}, false, err
	}
	return snap, true, nil
}

// QuotaVersion returns the invalidation counter of a user's day. Read it
// before loading from the database and hand it to SetQuota.
func (c *RedisCache) QuotaVersion(ctx context.Context, userID uint64, dayKey string) (int64, error) {
	n, err := c.Client.Get(ctx, KeyForQuotaVersion(userID, dayKey)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// SetQuota stores snap only if no invalidation happened since version was
// read, so a snapshot computed from a pre-write read is dropped instead of
// outliving the write. stored is false when the snapshot was discarded.
func (c *RedisCache) SetQuota(ctx context.Context, userID uint64, dayKey string, version int64, snap QuotaSnapshot) (stored bool, err error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return false, err
	}

	verKey := KeyForQuotaVersion(userID, dayKey)
	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, verKey).Int64()
		if errors.Is(err, redis.Nil) {
			cur = 0
		} else if err != nil {
			return err
		}
		if cur != version {
			return errQuotaVersionMoved
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, KeyForQuota(userID, dayKey), raw, quotaTTL)
			return nil
		})
		return err
	}, verKey)

	switch {
	case errors.Is(err, errQuotaVersionMoved), errors.Is(err, redis.TxFailedErr):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// InvalidateQuota drops the snapshot and bumps the version so that readers
// already past their database load cannot put a stale one back.
func (c *RedisCache) InvalidateQuota(ctx context.Context, userID uint64, dayKey string) error {
	verKey := KeyForQuotaVersion(userID, dayKey)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, verKey)
		pipe.Expire(ctx, verKey, quotaVersionTTL)
		pipe.Del(ctx, KeyForQuota(userID, dayKey))
		return nil
	})
	return err
}

// GetMatchCount returns the cached count; ok=false on miss.
func (c *RedisCache) GetMatchCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := KeyForMatchCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, matchCountTTL).Err()
	return n, true, nil
}

func (c *RedisCache) SetMatchCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, KeyForMatchCount(userID), count, matchCountTTL).Err()
}

// InvalidateMatchCounts drops the cached counts of every listed user.
func (c *RedisCache) InvalidateMatchCounts(ctx context.Context, userIDs ...uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, KeyForMatchCount(id))
	}
	return c.Client.Del(ctx, keys...).Err()
}
