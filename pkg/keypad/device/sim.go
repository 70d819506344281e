package device

import (
	"sync"

	"github.com/robotalks/phone.go/pkg/keypad"
)

// Sim is a software key matrix. Lines are high until pressed.
type Sim struct {
	layout keypad.Layout
	levels keypad.Snapshot
	lock   sync.Mutex
}

// NewSim creates a Sim with all keys released.
func NewSim(layout keypad.Layout) *Sim {
	return &Sim{layout: layout, levels: keypad.IdleSnapshot()}
}

// Name implements Matrix.
func (s *Sim) Name() string {
	return "sim"
}

// Read implements Matrix.
func (s *Sim) Read() keypad.Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.levels
}

// Set drives the line of a key to the level.
func (s *Sim) Set(key rune, level keypad.Level) error {
	index, ok := s.layout.IndexOf(key)
	if !ok {
		return ErrUnknownKey
	}
	s.lock.Lock()
	s.levels[index] = level
	s.lock.Unlock()
	return nil
}

// Press implements Injector.
func (s *Sim) Press(key rune) error {
	return s.Set(key, keypad.Low)
}

// Release implements Injector.
func (s *Sim) Release(key rune) error {
	return s.Set(key, keypad.High)
}

// Close implements Matrix.
func (s *Sim) Close() error {
	return nil
}
