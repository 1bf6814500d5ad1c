package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
)

const defaultRefreshInterval = 30 * time.Minute

// TokenRefresher renews the API token of the logged-in user.
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
}

type tokenRefreshWorker struct {
	refresher TokenRefresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenRefreshWorker creates a worker that calls refresher.RefreshToken
// every interval. If interval is zero or negative it defaults to 30 minutes.
// The worker is idle until Start is called.
func NewTokenRefreshWorker(refresher TokenRefresher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &tokenRefreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

// Start stops any previously running loop, then launches a goroutine that
// refreshes the token on a ticker.
func (w *tokenRefreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.refresher.RefreshToken(jobCtx); err != nil {
					w.logger.Warn().Err(err).Msg("token refresh failed")
					continue
				}
				w.logger.Debug().Msg("token refreshed")
			}
		}
	}()
}

func (w *tokenRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
