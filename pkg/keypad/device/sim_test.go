package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/keypad"
)

func TestSim(t *testing.T) {
	s := NewSim(keypad.DefaultLayout)
	require.Equal(t, keypad.IdleSnapshot(), s.Read())

	require.NoError(t, s.Press('0'))
	levels := s.Read()
	require.Equal(t, keypad.Low, levels[10])
	for i, lv := range levels {
		if i != 10 {
			require.Equalf(t, keypad.High, lv, "line %d", i)
		}
	}

	require.NoError(t, s.Release('0'))
	require.Equal(t, keypad.IdleSnapshot(), s.Read())

	require.Equal(t, ErrUnknownKey, s.Press('A'))
	require.NoError(t, s.Close())
}

func TestSimDrivesScanner(t *testing.T) {
	s := NewSim(keypad.DefaultLayout)
	sc := keypad.NewScanner(keypad.DefaultLayout)
	var m Matrix = s

	require.NoError(t, s.Press('8'))
	_, ok := sc.Scan(m.Read(), 0)
	require.False(t, ok)
	_, ok = sc.Scan(m.Read(), 30)
	require.False(t, ok)
	require.NoError(t, s.Release('8'))
	ev, ok := sc.Scan(m.Read(), 80)
	require.True(t, ok)
	require.Equal(t, keypad.Short('8'), ev)
}

func TestOpen(t *testing.T) {
	m, err := Open(Config{Driver: DriverSim}, keypad.DefaultLayout)
	require.NoError(t, err)
	_, ok := m.(Injector)
	require.True(t, ok)

	_, err = Open(Config{Driver: "serial"}, keypad.DefaultLayout)
	require.Error(t, err)
}
