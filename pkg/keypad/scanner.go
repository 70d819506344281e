// Package keypad turns raw key matrix readings into debounced key events.
package keypad

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/phone.go/pkg/clock"
)

// Timing windows.
const (
	// DebounceWindow is how long a key must stay down after its press
	// edge before the press is trusted.
	DebounceWindow = 25 * time.Millisecond
	// LongPressWindow is the press duration from which a transition
	// classifies as a long press.
	LongPressWindow = time.Second
)

// KeyState tracks a single matrix position.
type KeyState struct {
	Key       rune
	Raw       bool
	Debounced bool
	LastEdge  clock.Instant
}

// set stores the raw reading and reports whether it changed.
// LastEdge only moves on a press edge.
func (s *KeyState) set(now clock.Instant, active bool) bool {
	changed := s.Raw != active
	s.Raw = active
	if changed && active {
		s.LastEdge = now
	}
	return changed
}

// debounce refreshes Debounced and returns the value from the previous call.
func (s *KeyState) debounce(now clock.Instant) (prev bool) {
	prev = s.Debounced
	s.Debounced = s.Raw && now.Sub(s.LastEdge) >= DebounceWindow
	return
}

func (s *KeyState) long(now clock.Instant) bool {
	return now.Sub(s.LastEdge) >= LongPressWindow
}

// Scanner debounces a 4x3 key matrix. Only one active key is tracked at
// a time; chords are not detected.
type Scanner struct {
	states [Keys]KeyState
}

// NewScanner creates a Scanner with labels from layout.
func NewScanner(layout Layout) *Scanner {
	s := &Scanner{}
	for i, key := range layout {
		s.states[i].Key = key
	}
	return s
}

// Scan consumes one snapshot and returns at most one event.
// Keys are examined in row-major order and scanning stops at the
// first key producing an event, so callers poll repeatedly to drain
// nearly simultaneous presses.
func (s *Scanner) Scan(levels Snapshot, now clock.Instant) (KeyEvent, bool) {
	for i := range s.states {
		st := &s.states[i]
		changed := st.set(now, levels[i].Active())
		prev := st.debounce(now)
		if !changed || !prev {
			continue
		}
		ev := Short(st.Key)
		if st.long(now) {
			ev = Long(st.Key)
		}
		s.reset(now)
		if glog.V(1) {
			glog.Infof("keypad %s at %s", ev, now)
		}
		return ev, true
	}
	return KeyEvent{}, false
}

// reset forgets timing of every key so a second key changing in the
// same tick cannot fire.
func (s *Scanner) reset(now clock.Instant) {
	for i := range s.states {
		s.states[i].LastEdge = now
		s.states[i].Debounced = false
	}
}

// States returns a copy of all key states.
func (s *Scanner) States() [Keys]KeyState {
	return s.states
}
