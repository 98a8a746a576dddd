package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"board-service/internal/errs"
)

type Repository interface {
	Push(ctx context.Context, scope string, n Notification) error
	Recent(ctx context.Context, scope string, limit int64) ([]Notification, error)
	MarkRead(ctx context.Context, scope, id string) error
}

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepo{rdb: rdb}
}

func key(scope string) string { return fmt.Sprintf("notif:%s", scope) }

func (r *redisRepo) Push(ctx context.Context, scope string, n Notification) error {
	b, _ := json.Marshal(n)
	if err := r.rdb.LPush(ctx, key(scope), b).Err(); err != nil {
		return errs.Transport("push notification", err)
	}
	return nil
}

func (r *redisRepo) Recent(ctx context.Context, scope string, limit int64) ([]Notification, error) {
	if limit <= 0 {
		limit = 10
	}
	vals, err := r.rdb.LRange(ctx, key(scope), 0, limit-1).Result()
	if err != nil {
		return nil, errs.Transport("list notifications", err)
	}
	out := make([]Notification, 0, len(vals))
	for _, v := range vals {
		var n Notification
		if json.Unmarshal([]byte(v), &n) == nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// markReadPayload scans the raw list entries for id and returns the index to
// rewrite plus the updated payload. A nil payload with index >= 0 means the
// entry is already read and nothing needs writing.
func markReadPayload(vals []string, id string) (int64, []byte, error) {
	for i, v := range vals {
		var n Notification
		if json.Unmarshal([]byte(v), &n) != nil || n.ID != id {
			continue
		}
		if n.Read {
			return int64(i), nil, nil
		}
		n.Read = true
		b, _ := json.Marshal(n)
		return int64(i), b, nil
	}
	return -1, nil, errs.NotFound("notification", id)
}

// MarkRead rewrites the matching entry in place with LSET. The read and the
// write run under WATCH so a concurrent push invalidates the index and the
// whole attempt retries instead of touching the wrong slot.
func (r *redisRepo) MarkRead(ctx context.Context, scope, id string) error {
	k := key(scope)

	txf := func(tx *redis.Tx) error {
		vals, err := tx.LRange(ctx, k, 0, -1).Result()
		if err != nil {
			return err
		}
		idx, payload, err := markReadPayload(vals, id)
		if err != nil {
			return err
		}
		if payload == nil {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LSet(ctx, k, idx, payload)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		err := r.rdb.Watch(ctx, txf, k)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errs.IsNotFound(err):
			return err
		default:
			return errs.Transport("mark read", err)
		}
	}
	return errs.Transport("mark read", redis.TxFailedErr)
}
