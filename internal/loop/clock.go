// Package loop provides the fixed-interval clock that drives the level engine
// outside the terminal front-end.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is the subset of time.Ticker the clock needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewTicker returns a Ticker backed by time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Clock calls a tick function once per interval from a single goroutine.
// Ticks never overlap: the next one is not taken until the previous returns.
// Missed ticks are dropped, never replayed.
type Clock struct {
	interval  time.Duration
	fn        func() bool
	newTicker func(time.Duration) Ticker

	mu     sync.Mutex
	paused bool

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	ticks    atomic.Int64
}

// Option configures a Clock.
type Option func(*Clock)

// WithTicker replaces the ticker constructor (tests use a manual ticker).
func WithTicker(f func(time.Duration) Ticker) Option {
	return func(c *Clock) {
		c.newTicker = f
	}
}

// New creates a clock. fn runs once per tick; returning false stops the clock.
func New(interval time.Duration, fn func() bool, opts ...Option) *Clock {
	c := &Clock{
		interval:  interval,
		fn:        fn,
		newTicker: NewTicker,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run ticks until the context is cancelled, Stop is called or the tick
// function returns false. A cancelled context is reported as its error.
func (c *Clock) Run(ctx context.Context) error {
	var t Ticker
	defer func() {
		if t != nil {
			t.Stop()
		}
	}()

	for {
		paused := c.Paused()
		if paused && t != nil {
			t.Stop()
			t = nil
		}
		if !paused && t == nil {
			t = c.newTicker(c.interval)
		}

		var ch <-chan time.Time
		if t != nil {
			ch = t.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stop:
			return nil
		case <-c.wake:
		case <-ch:
			if c.Paused() {
				continue
			}
			c.ticks.Add(1)
			if !c.fn() {
				return nil
			}
		}
	}
}

// Pause stops ticking. No tick starts after Pause returns until Resume.
func (c *Clock) Pause() {
	c.setPaused(true)
}

// Resume restarts ticking one full interval from now.
func (c *Clock) Resume() {
	c.setPaused(false)
}

func (c *Clock) setPaused(p bool) {
	c.mu.Lock()
	c.paused = p
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Stop ends Run permanently. It is safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// Ticks returns the number of ticks executed.
func (c *Clock) Ticks() int64 {
	return c.ticks.Load()
}
