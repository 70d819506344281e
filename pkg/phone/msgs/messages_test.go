package msgs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/l1/msgs"
	"github.com/robotalks/phone.go/pkg/number"
)

func TestTypedRoundTrip(t *testing.T) {
	cases := []fx.Message{
		KeyPressedFrom(keypad.Long('#')),
		NumberDialedFrom("555-123-4567", number.MustParse("555-123-4567")),
		&NumberRejected{Text: "12#"},
		&DigitRelayed{Key: "7", Text: "17"},
		&ModeSet{Mode: "relay"},
		&BufferClear{},
		&StatusQuery{},
		&StatusReply{Status: &PhoneStatus{Mode: "dial", Text: "55", Dropped: 2, Device: "sim"}},
		&KeyInject{Key: "5", HoldMs: 150},
	}
	for _, msg := range cases {
		s := msg.(msgs.SerializableMessage)
		t.Run(fmt.Sprintf("%T", msg), func(t *testing.T) {
			typed, err := msgs.TypedFrom(msg)
			require.NoError(t, err)
			data, err := typed.Encode()
			require.NoError(t, err)
			decoded, err := msgs.DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, s.TypeID(), decoded.TypeId)
			out, err := decoded.Decode()
			require.NoError(t, err)
			require.Equal(t, msg, out)
		})
	}
}

func TestTypeKinds(t *testing.T) {
	typed, err := msgs.TypedFrom(&NumberDialed{})
	require.NoError(t, err)
	require.True(t, typed.IsEvent())

	typed, err = msgs.TypedFrom(&KeyInject{})
	require.NoError(t, err)
	require.True(t, typed.IsCommand())
	require.False(t, typed.IsReply())

	typed, err = msgs.TypedFrom(&StatusReply{})
	require.NoError(t, err)
	require.True(t, typed.IsReply())
}

func TestKeyPressedFrom(t *testing.T) {
	require.Equal(t, &KeyPressed{Key: "5"}, KeyPressedFrom(keypad.Short('5')))
	require.Equal(t, &KeyPressed{Key: "#", Long: true}, KeyPressedFrom(keypad.Long('#')))
}

func TestNumberDialed(t *testing.T) {
	n := number.New(555, 123, 4567)
	ev := NumberDialedFrom("5551234567", n)
	require.Equal(t, n, ev.Number())
	require.Equal(t, uint32(4567), ev.LineNumber)
}
