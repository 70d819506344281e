// Package dial accumulates key events into dialed text.
package dial

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/phone.go/pkg/keypad"
)

// Capacity is the maximum number of characters a Buffer holds.
// Characters pushed beyond it are dropped and logged.
const Capacity = 128

// Terminator is the key whose long press completes a dialed number.
const Terminator = '#'

// Mode is the policy deciding when buffered input is complete.
type Mode int

// Modes
const (
	// DialAccumulation buffers short presses until a long press of Terminator.
	DialAccumulation Mode = iota
	// ImmediateRelay completes on every short press, also buffering it.
	ImmediateRelay
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case DialAccumulation:
		return "dial"
	case ImmediateRelay:
		return "relay"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dial":
		return DialAccumulation, nil
	case "relay":
		return ImmediateRelay, nil
	}
	return DialAccumulation, fmt.Errorf("unknown mode %q", s)
}

// Buffer is a bounded, mode-tagged text buffer.
// The zero value is empty in DialAccumulation mode.
type Buffer struct {
	mode    Mode
	text    [Capacity]rune
	n       int
	dropped int
}

// Mode returns the mode the content was collected under.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// Text returns the buffered characters.
func (b *Buffer) Text() string {
	return string(b.text[:b.n])
}

// Len returns the number of buffered characters.
func (b *Buffer) Len() int {
	return b.n
}

// Dropped returns how many characters were discarded on overflow
// since the last reset.
func (b *Buffer) Dropped() int {
	return b.dropped
}

// Clear empties the buffer, keeping the mode.
func (b *Buffer) Clear() {
	b.n, b.dropped = 0, 0
}

// Push feeds one event under mode and reports whether a unit of
// input is complete. Switching mode discards buffered content first.
func (b *Buffer) Push(mode Mode, ev keypad.KeyEvent) bool {
	if mode != b.mode {
		b.Clear()
		b.mode = mode
	}
	switch b.mode {
	case DialAccumulation:
		if ev.IsLong() {
			return ev.Key() == Terminator
		}
		b.append(ev.Key())
		return false
	case ImmediateRelay:
		if ev.IsLong() {
			return false
		}
		b.append(ev.Key())
		return true
	}
	return false
}

func (b *Buffer) append(c rune) {
	if b.n >= Capacity {
		b.dropped++
		glog.V(1).Infof("event buffer full, dropped %q (%d)", c, b.dropped)
		return
	}
	b.text[b.n] = c
	b.n++
}
