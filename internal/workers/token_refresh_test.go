package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-blog/internal/logger"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) RefreshToken(context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestTokenRefreshWorker_RefreshesPeriodically(t *testing.T) {
	r := &fakeRefresher{}
	w := NewTokenRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, time.Millisecond)
	w.Stop()

	after := r.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, r.calls.Load(), "no refresh after Stop")
}

func TestTokenRefreshWorker_KeepsRunningOnError(t *testing.T) {
	r := &fakeRefresher{err: errors.New("server down")}
	w := NewTokenRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestTokenRefreshWorker_StopsOnContextCancel(t *testing.T) {
	r := &fakeRefresher{}
	w := NewTokenRefreshWorker(r, 5*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestTokenRefreshWorker_StopWithoutStart(t *testing.T) {
	w := NewTokenRefreshWorker(&fakeRefresher{}, 0, logger.Nop())

	w.Stop()

	assert.Equal(t, defaultRefreshInterval, w.(*tokenRefreshWorker).interval)
}

func TestTokenRefreshWorker_RestartReplacesLoop(t *testing.T) {
	r := &fakeRefresher{}
	w := NewTokenRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	w.Stop()

	after := r.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, r.calls.Load())
}
