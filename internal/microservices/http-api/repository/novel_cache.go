package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"novelhub/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
)

const (
	rankingsKey   = "novelhub:novels:rankings"
	featuredKey   = "novelhub:novels:featured"
	generationKey = "novelhub:novels:generation"
)

var errStaleGeneration = errors.New("novel cache generation moved")

// NovelCache keeps the ranking and featured lists, the two hot read paths of the
// home page. A miss (or any cache failure) means the caller reads the database.
//
// Every read also returns the cache generation. A list rebuilt after a miss is
// stored only if no Invalidate ran since that read, so a rebuild that raced a
// reward cannot put the old list back.
type NovelCache interface {
	GetRankings(ctx context.Context) ([]models.Novel, int64, bool)
	SetRankings(ctx context.Context, gen int64, list []models.Novel)
	GetFeatured(ctx context.Context) ([]models.Novel, int64, bool)
	SetFeatured(ctx context.Context, gen int64, list []models.Novel)
	Invalidate(ctx context.Context)
}

type RedisNovelCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisNovelCache wraps client. A nil client gives a cache that always misses.
func NewRedisNovelCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisNovelCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisNovelCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisNovelCache) GetRankings(ctx context.Context) ([]models.Novel, int64, bool) {
	return c.get(ctx, rankingsKey)
}

func (c *RedisNovelCache) SetRankings(ctx context.Context, gen int64, list []models.Novel) {
	c.set(ctx, rankingsKey, gen, list)
}

func (c *RedisNovelCache) GetFeatured(ctx context.Context) ([]models.Novel, int64, bool) {
	return c.get(ctx, featuredKey)
}

func (c *RedisNovelCache) SetFeatured(ctx context.Context, gen int64, list []models.Novel) {
	c.set(ctx, featuredKey, gen, list)
}

// Invalidate bumps the generation and drops both lists, called after rewards
// and novel edits.
func (c *RedisNovelCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, rankingsKey, featuredKey)
		return nil
	})
	if err != nil {
		c.logger.Warn("novel cache invalidate failed", "error", err)
	}
}

func (c *RedisNovelCache) get(ctx context.Context, key string) ([]models.Novel, int64, bool) {
	if c == nil || c.client == nil {
		return nil, 0, false
	}
	// one MGET so the generation and the entry are read together
	vals, err := c.client.MGet(ctx, generationKey, key).Result()
	if err != nil {
		c.logger.Warn("novel cache read failed", "key", key, "error", err)
		return nil, 0, false
	}

	var gen int64
	if s, ok := vals[0].(string); ok {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			c.logger.Warn("novel cache generation corrupt", "error", err)
			return nil, 0, false
		}
	}

	raw, ok := vals[1].(string)
	if !ok {
		return nil, gen, false
	}
	var list []models.Novel
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		c.logger.Warn("novel cache entry corrupt", "key", key, "error", err)
		return nil, gen, false
	}
	return list, gen, true
}

func (c *RedisNovelCache) set(ctx context.Context, key string, gen int64, list []models.Novel) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("novel cache write skipped, invalidated during rebuild", "key", key)
	default:
		c.logger.Warn("novel cache write failed", "key", key, "error", err)
	}
}
