package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/keypad"
)

type stuckPin struct {
	*gpiotest.Pin
}

func (p *stuckPin) In(gpio.Pull, gpio.Edge) error {
	return errors.New("stuck")
}

func testGPIO() *GPIO {
	m := &GPIO{}
	for i := range m.rows {
		m.rows[i] = &gpiotest.Pin{N: "row", L: gpio.High}
	}
	for i := range m.columns {
		m.columns[i] = &gpiotest.Pin{N: "col", L: gpio.High}
	}
	return m
}

func TestGPIORead(t *testing.T) {
	m := testGPIO()
	require.Equal(t, keypad.IdleSnapshot(), m.Read())

	// a grounded row reads low under every strobed column
	m.rows[1].(*gpiotest.Pin).L = gpio.Low
	expected := keypad.IdleSnapshot()
	for c := 0; c < keypad.Columns; c++ {
		expected[keypad.Columns+c] = keypad.Low
	}
	require.Equal(t, expected, m.Read())
	for _, col := range m.columns {
		require.Equal(t, gpio.High, col.Read())
	}
}

func TestGPIOClose(t *testing.T) {
	m := testGPIO()
	require.NoError(t, m.Close())

	m.columns[0] = &stuckPin{Pin: &gpiotest.Pin{N: "col0"}}
	m.columns[2] = &stuckPin{Pin: &gpiotest.Pin{N: "col2"}}
	err := m.Close()
	require.Error(t, err)
	require.Len(t, err.(*fx.AggregatedError).Errors, 2)
	require.Contains(t, err.Error(), "release column 2: stuck")
}
