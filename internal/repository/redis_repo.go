package repository

import (
	"ad-ledger/internal/aderrors"
	model "ad-ledger/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisRepo is a durable AdStore. Each ad is stored as JSON under its own key,
// and a sorted set with equal scores keeps the IDs in lexicographic order.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed repository. Keys are namespaced by prefix.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) adKey(id string) string {
	return fmt.Sprintf("%sad:%s", r.prefix, id)
}

func (r *RedisRepo) indexKey() string {
	return r.prefix + "ads"
}

// Get returns the ad stored under id
func (r *RedisRepo) Get(ctx context.Context, id string) (model.Ad, error) {
	data, err := r.client.Get(ctx, r.adKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Ad{}, fmt.Errorf("get ad %s: %w", id, aderrors.ErrNotFound)
	}
	if err != nil {
		return model.Ad{}, fmt.Errorf("get ad %s: %w", id, err)
	}
	return decodeAd(id, data)
}

// Insert stores ad under its ID, replacing any previous value
func (r *RedisRepo) Insert(ctx context.Context, ad model.Ad) error {
	if ad.ID == "" {
		return fmt.Errorf("insert ad: %w - empty ad ID", aderrors.ErrInvalidParameters)
	}

	data, err := json.Marshal(ad)
	if err != nil {
		return fmt.Errorf("insert ad %s: encode: %w", ad.ID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.adKey(ad.ID), data, 0)
		pipe.ZAdd(ctx, r.indexKey(), &redis.Z{Score: 0, Member: ad.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert ad %s: %w", ad.ID, err)
	}
	return nil
}

// Remove deletes the ad stored under id and returns it
func (r *RedisRepo) Remove(ctx context.Context, id string) (model.Ad, error) {
	key := r.adKey(id)
	var removed model.Ad

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("remove ad %s: %w", id, aderrors.ErrNotFound)
		}
		if err != nil {
			return err
		}

		ad, err := decodeAd(id, data)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.ZRem(ctx, r.indexKey(), id)
			return nil
		})
		if err != nil {
			return err
		}

		removed = ad
		return nil
	}, key)
	if err != nil {
		if errors.Is(err, aderrors.ErrNotFound) {
			return model.Ad{}, err
		}
		return model.Ad{}, fmt.Errorf("remove ad %s: %w", id, err)
	}
	return removed, nil
}

// Values returns every ad ordered by ID
func (r *RedisRepo) Values(ctx context.Context) ([]model.Ad, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	ads := make([]model.Ad, 0, len(ids))
	if len(ids) == 0 {
		return ads, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.adKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry outlived its ad key
			continue
		}
		ad, err := decodeAd(ids[i], []byte(raw))
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func decodeAd(id string, data []byte) (model.Ad, error) {
	var ad model.Ad
	if err := json.Unmarshal(data, &ad); err != nil {
		return model.Ad{}, fmt.Errorf("decode ad %s: %w", id, err)
	}
	if ad.Bids == nil {
		ad.Bids = []model.Bid{}
	}
	return ad, nil
}
