package msgs

import (
	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/number"
)

// KeyPressedFrom converts a scanner event.
func KeyPressedFrom(ev keypad.KeyEvent) *KeyPressed {
	return &KeyPressed{Key: string(ev.Key()), Long: ev.IsLong()}
}

// NumberDialedFrom creates the event for text parsed as n.
func NumberDialedFrom(text string, n number.PhoneNumber) *NumberDialed {
	return &NumberDialed{
		Text:       text,
		AreaCode:   uint32(n.AreaCode),
		Exchange:   uint32(n.Exchange),
		LineNumber: uint32(n.LineNumber),
	}
}

// Number returns the dialed number.
func (m *NumberDialed) Number() number.PhoneNumber {
	return number.New(uint16(m.AreaCode), uint16(m.Exchange), uint16(m.LineNumber))
}
