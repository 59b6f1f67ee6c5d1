package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates configuration access across replicas.
// The session manager acquires a lock per vehicle id before dispatching.
type DistributedLocker interface {
	// Lock blocks until the lock for key is acquired or ctx is canceled.
	// The returned UnlockFunc MUST be called to release the lock; if the
	// caller dies the TTL reclaims it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
