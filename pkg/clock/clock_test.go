package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInstantSub(t *testing.T) {
	testCases := []struct {
		name    string
		now     Instant
		earlier Instant
		expect  time.Duration
	}{
		{"same", 10, 10, 0},
		{"later", 1025, 25, time.Second},
		{"earlier saturates", 5, 10, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.now.Sub(tc.earlier))
		})
	}
}

func TestInstantAdd(t *testing.T) {
	require.Equal(t, Instant(1025), Instant(1000).Add(25*time.Millisecond))
	require.Equal(t, Instant(990), Instant(1000).Add(-10*time.Millisecond))
	require.Equal(t, Instant(0), Instant(5).Add(-10*time.Millisecond))
	require.Equal(t, "1.025s", Instant(1025).String())
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	require.Equal(t, Instant(0), c.Now())
	require.Equal(t, Instant(1), c.Tick())
	require.Equal(t, Instant(2), c.Tick())
	c.Set(1000)
	require.Equal(t, Instant(1000), c.Now())
}

func TestCounterRun(t *testing.T) {
	c := NewCounter()
	c.Set(100)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	require.Eventually(t, func() bool { return c.Now() >= 110 }, time.Second, time.Millisecond)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}
