// Package kvstore provides the byte-blob stores intake sessions are kept in.
// Every store returns nil, nil from Get when the key is absent or expired.
package kvstore

import (
	"context"
	"time"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// expiry returns the absolute deadline for ttl, or the zero time when ttl does
// not expire.
func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
