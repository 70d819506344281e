// Package device provides key matrix implementations.
//
// Only two are available: the GPIO matrix wired to the board and
// Sim, a software double used by tests and the simulator. The caller
// picks one when composing the device.
package device

import (
	"errors"
	"io"

	"github.com/robotalks/phone.go/pkg/keypad"
)

// Matrix reads the state of all key matrix lines.
type Matrix interface {
	io.Closer
	// Name returns a human readable description.
	Name() string
	// Read takes one snapshot of all lines, row-major, low is active.
	Read() keypad.Snapshot
}

// Injector is implemented by matrices whose lines can be driven in software.
type Injector interface {
	Press(key rune) error
	Release(key rune) error
}

// ErrUnknownKey indicates the key is not on the layout.
var ErrUnknownKey = errors.New("unknown key")
