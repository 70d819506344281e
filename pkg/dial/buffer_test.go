package dial

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/keypad"
)

func shorts(s string) []keypad.KeyEvent {
	evs := make([]keypad.KeyEvent, 0, len(s))
	for _, c := range s {
		evs = append(evs, keypad.Short(c))
	}
	return evs
}

func TestDialAccumulation(t *testing.T) {
	var b Buffer
	for _, ev := range shorts("2223334444") {
		require.Falsef(t, b.Push(DialAccumulation, ev), "push %s", ev)
	}
	require.True(t, b.Push(DialAccumulation, keypad.Long('#')))
	require.Equal(t, "2223334444", b.Text())
	require.Equal(t, DialAccumulation, b.Mode())
}

func TestDialIgnoresOtherLongPress(t *testing.T) {
	var b Buffer
	for _, ev := range shorts("555") {
		b.Push(DialAccumulation, ev)
	}
	require.False(t, b.Push(DialAccumulation, keypad.Long('1')))
	require.Equal(t, "555", b.Text())
	require.False(t, b.Push(DialAccumulation, keypad.Long('*')))
	require.Equal(t, 3, b.Len())
}

func TestDialShortTerminatorIsADigit(t *testing.T) {
	var b Buffer
	require.False(t, b.Push(DialAccumulation, keypad.Short('#')))
	require.Equal(t, "#", b.Text())
}

func TestImmediateRelay(t *testing.T) {
	var b Buffer
	require.True(t, b.Push(ImmediateRelay, keypad.Short('4')))
	require.True(t, b.Push(ImmediateRelay, keypad.Short('2')))
	require.False(t, b.Push(ImmediateRelay, keypad.Long('#')))
	require.Equal(t, "42", b.Text())
}

func TestModeSwitchClears(t *testing.T) {
	var b Buffer
	for _, ev := range shorts("12345") {
		b.Push(DialAccumulation, ev)
	}
	require.Equal(t, 5, b.Len())
	require.True(t, b.Push(ImmediateRelay, keypad.Short('1')))
	require.Equal(t, 1, b.Len())
	require.Equal(t, ImmediateRelay, b.Mode())

	require.True(t, b.Push(DialAccumulation, keypad.Long('#')))
	require.Equal(t, 0, b.Len())
	require.Equal(t, DialAccumulation, b.Mode())
}

func TestClear(t *testing.T) {
	var b Buffer
	b.Clear()
	require.Equal(t, "", b.Text())
	require.Equal(t, DialAccumulation, b.Mode())

	b.Push(ImmediateRelay, keypad.Short('9'))
	b.Clear()
	b.Clear()
	require.Equal(t, 0, b.Len())
	require.Equal(t, ImmediateRelay, b.Mode())
}

func TestOverflowDrops(t *testing.T) {
	var b Buffer
	for _, ev := range shorts(strings.Repeat("7", Capacity+2)) {
		require.False(t, b.Push(DialAccumulation, ev))
	}
	require.Equal(t, Capacity, b.Len())
	require.Equal(t, 2, b.Dropped())
	require.Equal(t, strings.Repeat("7", Capacity), b.Text())
	require.True(t, b.Push(DialAccumulation, keypad.Long('#')))

	b.Clear()
	require.Zero(t, b.Dropped())
	require.False(t, b.Push(DialAccumulation, keypad.Short('1')))
	require.Equal(t, "1", b.Text())
}

func TestOverflowInRelayStillCompletes(t *testing.T) {
	var b Buffer
	for _, ev := range shorts(strings.Repeat("0", Capacity)) {
		b.Push(ImmediateRelay, ev)
	}
	require.True(t, b.Push(ImmediateRelay, keypad.Short('1')))
	require.Equal(t, 1, b.Dropped())
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{DialAccumulation, ImmediateRelay} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}
	_, err := ParseMode("dtmf")
	require.Error(t, err)
}
