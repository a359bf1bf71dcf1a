package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 10

// RedisTable keeps the collection order in a list and the records as JSON in
// a hash. Writes run as WATCH/MULTI transactions and are retried on conflict.
type RedisTable[T Record] struct {
	client     *redis.Client
	resource   string
	orderKey   string
	recordsKey string
}

func NewRedisTable[T Record](client *redis.Client, prefix, resource string) *RedisTable[T] {
	return &RedisTable[T]{
		client:     client,
		resource:   resource,
		orderKey:   prefix + ":" + resource + ":order",
		recordsKey: prefix + ":" + resource + ":records",
	}
}

func (t *RedisTable[T]) List(ctx context.Context) ([]T, error) {
	ids, err := t.client.LRange(ctx, t.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s order: %w", t.resource, err)
	}

	if len(ids) == 0 {
		return []T{}, nil
	}

	bodies, err := t.client.HMGet(ctx, t.recordsKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s records: %w", t.resource, err)
	}

	list := make([]T, 0, len(bodies))
	for i, body := range bodies {
		s, ok := body.(string)
		if !ok {
			// order entry without a record, skipped
			continue
		}

		var rec T
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", t.resource, ids[i], err)
		}
		list = append(list, rec)
	}

	return list, nil
}

func (t *RedisTable[T]) ByID(ctx context.Context, id int) (*T, error) {
	return t.get(ctx, t.client, id)
}

func (t *RedisTable[T]) Insert(ctx context.Context, pos Position, build func(id int) T) (T, error) {
	var created T
	err := t.watch(ctx, func(tx *redis.Tx) error {
		ids, err := tx.LRange(ctx, t.orderKey, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("read %s order: %w", t.resource, err)
		}

		maxID := 0
		for _, s := range ids {
			if id, err := strconv.Atoi(s); err == nil && id > maxID {
				maxID = id
			}
		}

		rec := build(maxID + 1)
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s: %w", t.resource, err)
		}

		key := strconv.Itoa(rec.RecordID())
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, t.recordsKey, key, body)
			if pos == Prepend {
				p.LPush(ctx, t.orderKey, key)
			} else {
				p.RPush(ctx, t.orderKey, key)
			}
			return nil
		})
		if err != nil {
			return err
		}

		created = rec
		return nil
	})

	return created, err
}

func (t *RedisTable[T]) Update(ctx context.Context, id int, apply func(*T)) (*T, error) {
	var updated *T
	err := t.watch(ctx, func(tx *redis.Tx) error {
		rec, err := t.get(ctx, tx, id)
		if err != nil || rec == nil {
			return err
		}

		apply(rec)
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s %d: %w", t.resource, id, err)
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, t.recordsKey, strconv.Itoa(id), body)
			return nil
		})
		if err != nil {
			return err
		}

		updated = rec
		return nil
	})

	return updated, err
}

func (t *RedisTable[T]) Delete(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := t.watch(ctx, func(tx *redis.Tx) error {
		key := strconv.Itoa(id)
		exists, err := tx.HExists(ctx, t.recordsKey, key).Result()
		if err != nil {
			return fmt.Errorf("check %s %d: %w", t.resource, id, err)
		} else if !exists {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HDel(ctx, t.recordsKey, key)
			p.LRem(ctx, t.orderKey, 0, key)
			return nil
		})
		if err != nil {
			return err
		}

		deleted = true
		return nil
	})

	return deleted, err
}

func (t *RedisTable[T]) Count(ctx context.Context) (int, error) {
	n, err := t.client.LLen(ctx, t.orderKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.resource, err)
	}

	return int(n), nil
}

func (t *RedisTable[T]) Reset(ctx context.Context, seed []T) error {
	ids := make([]interface{}, len(seed))
	records := make(map[string]interface{}, len(seed))
	for i := range seed {
		body, err := json.Marshal(seed[i])
		if err != nil {
			return fmt.Errorf("encode %s seed: %w", t.resource, err)
		}

		key := strconv.Itoa(seed[i].RecordID())
		ids[i] = key
		records[key] = body
	}

	_, err := t.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, t.orderKey, t.recordsKey)
		if len(seed) > 0 {
			p.RPush(ctx, t.orderKey, ids...)
			p.HSet(ctx, t.recordsKey, records)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", t.resource, err)
	}

	return nil
}

func (t *RedisTable[T]) get(ctx context.Context, c redis.Cmdable, id int) (*T, error) {
	body, err := c.HGet(ctx, t.recordsKey, strconv.Itoa(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", t.resource, err)
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", t.resource, id, err)
	}

	return &rec, nil
}

func (t *RedisTable[T]) watch(ctx context.Context, fn func(*redis.Tx) error) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := t.client.Watch(ctx, fn, t.orderKey, t.recordsKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return err
	}

	return fmt.Errorf("%s: %w", t.resource, ErrConflict)
}
