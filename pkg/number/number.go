// Package number parses dialed text into domestic telephone numbers.
package number

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoNumber is returned for any text that is not a telephone number.
var ErrNoNumber = errors.New("no number")

// PhoneNumber is a domestic number: area code, exchange and line number.
type PhoneNumber struct {
	AreaCode   uint16
	Exchange   uint16
	LineNumber uint16
}

// New creates a PhoneNumber.
func New(areaCode, exchange, lineNumber uint16) PhoneNumber {
	return PhoneNumber{AreaCode: areaCode, Exchange: exchange, LineNumber: lineNumber}
}

// Less orders numbers by area code, exchange, then line number.
func (n PhoneNumber) Less(o PhoneNumber) bool {
	if n.AreaCode != o.AreaCode {
		return n.AreaCode < o.AreaCode
	}
	if n.Exchange != o.Exchange {
		return n.Exchange < o.Exchange
	}
	return n.LineNumber < o.LineNumber
}

// Valid reports whether the number may be dialed. Every parsed
// number is accepted for now.
// TODO: reject area codes and exchanges starting with 0 or 1.
func (n PhoneNumber) Valid() bool {
	return true
}

// String renders the number as AAA-EEE-LLLL.
func (n PhoneNumber) String() string {
	return fmt.Sprintf("%03d-%03d-%04d", n.AreaCode, n.Exchange, n.LineNumber)
}

// Parse accepts either three dash separated digit groups, or exactly
// ten contiguous digits split 3-3-4. Each group must fit in 16 bits
// and the whole text must be consumed.
func Parse(text string) (PhoneNumber, error) {
	if n, ok := parseDelimited(text); ok {
		return n, nil
	}
	if n, ok := parseFixed(text); ok {
		return n, nil
	}
	return PhoneNumber{}, ErrNoNumber
}

// MustParse is Parse that panics on error.
func MustParse(text string) PhoneNumber {
	n, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("%q: %v", text, err))
	}
	return n
}

func parseDelimited(text string) (n PhoneNumber, ok bool) {
	groups := strings.Split(text, "-")
	if len(groups) != 3 {
		return
	}
	return fromGroups(groups[0], groups[1], groups[2])
}

func parseFixed(text string) (n PhoneNumber, ok bool) {
	if len(text) != 10 {
		return
	}
	return fromGroups(text[:3], text[3:6], text[6:])
}

func fromGroups(area, exchange, line string) (n PhoneNumber, ok bool) {
	if n.AreaCode, ok = parseGroup(area); !ok {
		return
	}
	if n.Exchange, ok = parseGroup(exchange); !ok {
		return
	}
	n.LineNumber, ok = parseGroup(line)
	return
}

func parseGroup(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
