package kvstore

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Purger is implemented by stores that keep expired entries until told to
// drop them. Redis expires keys natively and has no Purger.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// RunPurger calls p.PurgeExpired every interval until ctx is cancelled.
func RunPurger(ctx context.Context, p Purger, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Error().Err(err).Msg("purge expired sessions")
				}
				continue
			}
			if n > 0 {
				log.Debug().Int64("removed", n).Msg("purged expired sessions")
			}
		}
	}
}
