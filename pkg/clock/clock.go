// Package clock provides the monotonic millisecond time base of the device.
package clock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Instant is the number of milliseconds since the counter started.
type Instant uint64

// FromDuration converts an offset since start into an Instant.
func FromDuration(d time.Duration) Instant {
	if d < 0 {
		return 0
	}
	return Instant(d / time.Millisecond)
}

// Sub returns the time elapsed from earlier to i.
// It is zero when earlier is after i.
func (i Instant) Sub(earlier Instant) time.Duration {
	if earlier >= i {
		return 0
	}
	return time.Duration(i-earlier) * time.Millisecond
}

// Add offsets the Instant by d, truncated to milliseconds.
func (i Instant) Add(d time.Duration) Instant {
	if d < 0 {
		if ms := Instant(-d / time.Millisecond); ms < i {
			return i - ms
		}
		return 0
	}
	return i + Instant(d/time.Millisecond)
}

// String renders seconds and milliseconds.
func (i Instant) String() string {
	return fmt.Sprintf("%d.%03ds", uint64(i)/1000, uint64(i)%1000)
}

// Source provides the current Instant.
type Source interface {
	Now() Instant
}

// DefaultTickPeriod is how often Run publishes the elapsed time.
const DefaultTickPeriod = time.Millisecond

// Counter is the millisecond counter shared between the tick source
// and the control loop. All accesses go through a single atomic word.
type Counter struct {
	TickPeriod time.Duration

	ms atomic.Uint64
}

// NewCounter creates a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{TickPeriod: DefaultTickPeriod}
}

// Now implements Source.
func (c *Counter) Now() Instant {
	return Instant(c.ms.Load())
}

// Tick advances the counter by one millisecond.
func (c *Counter) Tick() Instant {
	return Instant(c.ms.Add(1))
}

// Set overwrites the counter.
func (c *Counter) Set(ms uint64) {
	c.ms.Store(ms)
}

// Name implements framework.Named.
func (c *Counter) Name() string {
	return "clock"
}

// Run implements Runnable. It behaves as the periodic timer interrupt,
// publishing the monotonic time elapsed since Run started.
func (c *Counter) Run(ctx context.Context) error {
	period := c.TickPeriod
	if period <= 0 {
		period = DefaultTickPeriod
	}
	start, base := time.Now(), c.ms.Load()
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.ms.Store(base + uint64(FromDuration(time.Since(start))))
		}
	}
}
