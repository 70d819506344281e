package keypad

import "fmt"

// EventKind distinguishes short and long presses.
type EventKind int

// Event kinds
const (
	ShortPress EventKind = iota
	LongPress
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case ShortPress:
		return "short"
	case LongPress:
		return "long"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// KeyEvent is a debounced key transition.
type KeyEvent struct {
	Kind EventKind
	key  rune
}

// Short creates a ShortPress event.
func Short(key rune) KeyEvent {
	return KeyEvent{Kind: ShortPress, key: key}
}

// Long creates a LongPress event.
func Long(key rune) KeyEvent {
	return KeyEvent{Kind: LongPress, key: key}
}

// Key returns the key label, regardless of kind.
func (e KeyEvent) Key() rune {
	return e.key
}

// IsLong indicates a LongPress.
func (e KeyEvent) IsLong() bool {
	return e.Kind == LongPress
}

// String implements fmt.Stringer.
func (e KeyEvent) String() string {
	return fmt.Sprintf("%s(%c)", e.Kind, e.key)
}
