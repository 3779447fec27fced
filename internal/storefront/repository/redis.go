package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/fekuna/shopwave-storefront/internal/storefront"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "storefront:session:"
	maxUpdateRetries = 5
)

var ErrUpdateConflict = errors.New("session changed concurrently, retries exhausted")

// RedisRepository stores each session as a JSON value that expires after ttl.
// Every write refreshes the expiry.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func (r *RedisRepository) key(id string) string {
	return sessionKeyPrefix + id
}

func (r *RedisRepository) Create(ctx context.Context, s *model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, r.key(s.ID), data, r.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	return nil
}

func (r *RedisRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storefront.ErrSessionNotFound
		}
		return nil, err
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

// Update runs fn inside WATCH/MULTI and retries when another writer wins the race.
func (r *RedisRepository) Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error) {
	key := r.key(id)
	var updated model.Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return storefront.ErrSessionNotFound
			}
			return err
		}

		var s model.Session
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode session %s: %w", id, err)
		}
		if err := fn(&s); err != nil {
			return err
		}
		out, err := json.Marshal(&s)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = s
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrUpdateConflict
}

func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return storefront.ErrSessionNotFound
	}
	return nil
}
