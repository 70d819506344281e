// Package history keeps an append-only CBOR log of dial outcomes.
package history

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/robotalks/phone.go/pkg/number"
)

// Kind is the outcome recorded.
type Kind uint8

// Record kinds
const (
	KindDialed Kind = iota + 1
	KindRelayed
	KindRejected
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDialed:
		return "dialed"
	case KindRelayed:
		return "relayed"
	case KindRejected:
		return "rejected"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Record is a single history entry.
type Record struct {
	ID     uuid.UUID           `cbor:"1,keyasint"`
	Time   time.Time           `cbor:"2,keyasint"`
	Kind   Kind                `cbor:"3,keyasint"`
	Text   string              `cbor:"4,keyasint"`
	Number *number.PhoneNumber `cbor:"5,keyasint,omitempty"`
}

// NewRecord creates a Record with a fresh ID.
func NewRecord(at time.Time, kind Kind, text string) Record {
	return Record{ID: uuid.New(), Time: at, Kind: kind, Text: text}
}

// WithNumber attaches the parsed number.
func (r Record) WithNumber(n number.PhoneNumber) Record {
	r.Number = &n
	return r
}

// String implements fmt.Stringer.
func (r Record) String() string {
	s := fmt.Sprintf("%s %s %-8s %q", r.Time.Format(time.RFC3339), r.ID, r.Kind, r.Text)
	if r.Number != nil {
		s += " " + r.Number.String()
	}
	return s
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("history encoder mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyQuiet,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("history decoder mode: %v", err))
	}
}

// Log appends records to a file. A nil or disabled Log discards records.
type Log struct {
	disabled bool
	file     *os.File
	encoder  *cbor.Encoder
	lock     sync.Mutex
}

// Open opens the log at path for appending, creating it if needed.
// An empty path gives a disabled Log.
func Open(path string) (*Log, error) {
	if path == "" {
		return &Log{disabled: true}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Log{file: f, encoder: encMode.NewEncoder(f)}, nil
}

// Enabled indicates records are persisted.
func (l *Log) Enabled() bool {
	return l != nil && !l.disabled
}

// Append writes a record.
func (l *Log) Append(rec Record) error {
	if !l.Enabled() {
		return nil
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.encoder == nil {
		return os.ErrClosed
	}
	return l.encoder.Encode(rec)
}

// Close closes the file. It is safe to call more than once.
func (l *Log) Close() error {
	if !l.Enabled() {
		return nil
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file, l.encoder = nil, nil
	return err
}

// ReadAll decodes all records from r.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := decMode.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}

// ReadFile decodes all records in the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}
