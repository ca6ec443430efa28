package gemini

import (
	"context"
	"sync"
	"time"
)

// limiter caps concurrent requests and spaces their starts by at least delay
type limiter struct {
	sem   chan struct{}
	mu    sync.Mutex
	last  time.Time
	delay time.Duration
}

func newLimiter(concurrent int, delay time.Duration) *limiter {
	return &limiter{
		sem:   make(chan struct{}, concurrent),
		delay: delay,
	}
}

// acquire blocks for a free slot and the minimum interval. The returned func frees the slot.
func (l *limiter) acquire(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	release := func() { <-l.sem }

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if !l.last.IsZero() {
		if wait := l.delay - now.Sub(l.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				release()
				return nil, ctx.Err()
			}
			now = time.Now()
		}
	}
	l.last = now

	return release, nil
}
