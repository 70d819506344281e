package phone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/phone/msgs"
)

func TestDialKeys(t *testing.T) {
	keys, err := DialKeys("555-01")
	require.NoError(t, err)
	require.Equal(t, []*msgs.KeyInject{
		{Key: "5"}, {Key: "5"}, {Key: "5"}, {Key: "0"}, {Key: "1"},
		{Key: "#", HoldMs: TerminatorHoldMs},
	}, keys)
	require.Greater(t, int64(TerminatorHoldMs), keypad.LongPressWindow.Milliseconds())

	_, err = DialKeys("555A")
	require.Error(t, err)
	_, err = DialKeys("--")
	require.Error(t, err)
}
