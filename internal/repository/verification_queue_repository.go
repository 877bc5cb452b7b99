//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// pendingVerificationKey is the sorted set shared with the out-of-process
// drain worker. Members are mint addresses scored by enqueue time, so the
// worker drains oldest-first and removes entries after processing.
const pendingVerificationKey = "launchpad:verification:pending"

// VerificationQueueRepository is the ordered pending-set store consumed by
// the verification queue. AddIfAbsent must be atomic: two concurrent calls
// for the same mint report at most one insert.
type VerificationQueueRepository interface {
	AddIfAbsent(ctx context.Context, mint string, enqueuedAt time.Time) (bool, error)
	Size(ctx context.Context) (int64, error)
}

type verificationQueueRepository struct {
	rdb *redis.Client
	key string
}

// NewVerificationQueueRepository creates a redis-backed pending-set store.
func NewVerificationQueueRepository(rdb *redis.Client) VerificationQueueRepository {
	return &verificationQueueRepository{rdb: rdb, key: pendingVerificationKey}
}

// AddIfAbsent inserts the mint scored by enqueue time unless it is already
// pending. ZADD NX gives the insert-if-absent atomicity in a single round
// trip; re-submission while pending never refreshes the score.
func (r *verificationQueueRepository) AddIfAbsent(ctx context.Context, mint string, enqueuedAt time.Time) (bool, error) {
	added, err := r.rdb.ZAddNX(ctx, r.key, redis.Z{
		Score:  float64(enqueuedAt.UnixMilli()),
		Member: mint,
	}).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

// Size returns the number of pending entries.
func (r *verificationQueueRepository) Size(ctx context.Context) (int64, error) {
	return r.rdb.ZCard(ctx, r.key).Result()
}
