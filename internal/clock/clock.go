// Package clock drives the dashboard's once-a-second refresh.
package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker calls a function on a fixed interval until stopped.
type Ticker struct {
	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Start begins calling fn every interval with the current time. The returned
// Ticker must be stopped; cancelling ctx stops it as well.
func Start(ctx context.Context, interval time.Duration, fn func(time.Time)) *Ticker {
	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(t.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				t.markStopped()
				return
			case <-t.stop:
				return
			case now := <-ticker.C:
				t.mu.Lock()
				if t.stopped {
					t.mu.Unlock()
					return
				}
				fn(now)
				t.mu.Unlock()
			}
		}
	}()

	return t
}

// Stop cancels the ticker. After Stop returns fn is never called again.
// It is safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		t.markStopped()
		close(t.stop)
	})
	<-t.done
}

func (t *Ticker) markStopped() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}
