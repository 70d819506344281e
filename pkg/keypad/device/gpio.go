package device

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/keypad"
)

// Pins names the GPIO lines of the matrix as known by periph's registry.
type Pins struct {
	Rows    [keypad.Rows]string    `yaml:"rows"`
	Columns [keypad.Columns]string `yaml:"columns"`
}

// DefaultPins is the reference board wiring (BCM numbering).
var DefaultPins = Pins{
	Rows:    [keypad.Rows]string{"GPIO5", "GPIO6", "GPIO13", "GPIO19"},
	Columns: [keypad.Columns]string{"GPIO17", "GPIO27", "GPIO22"},
}

// DefaultSettle is the delay between strobing a column and sampling rows.
const DefaultSettle = 10 * time.Microsecond

// GPIO is the hardware key matrix. Rows are inputs with pull-ups,
// columns are driven low one at a time.
type GPIO struct {
	Settle time.Duration

	pins    Pins
	rows    [keypad.Rows]gpio.PinIO
	columns [keypad.Columns]gpio.PinIO
}

// OpenGPIO initializes the host drivers and configures the matrix lines.
func OpenGPIO(pins Pins) (*GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %v", err)
	}
	m := &GPIO{Settle: DefaultSettle, pins: pins}
	for i, name := range pins.Rows {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("row %d: unknown pin %q", i, name)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("row %d (%s): %v", i, name, err)
		}
		m.rows[i] = p
	}
	for i, name := range pins.Columns {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("column %d: unknown pin %q", i, name)
		}
		if err := p.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("column %d (%s): %v", i, name, err)
		}
		m.columns[i] = p
	}
	glog.Infof("key matrix on rows %v columns %v", pins.Rows, pins.Columns)
	return m, nil
}

// Name implements Matrix.
func (m *GPIO) Name() string {
	return fmt.Sprintf("gpio rows=%v cols=%v", m.pins.Rows, m.pins.Columns)
}

// Read implements Matrix.
func (m *GPIO) Read() (s keypad.Snapshot) {
	s = keypad.IdleSnapshot()
	for c, col := range m.columns {
		if err := col.Out(gpio.Low); err != nil {
			glog.Errorf("strobe column %d: %v", c, err)
			continue
		}
		if m.Settle > 0 {
			time.Sleep(m.Settle)
		}
		for r, row := range m.rows {
			if row.Read() == gpio.Low {
				s[r*keypad.Columns+c] = keypad.Low
			}
		}
		if err := col.Out(gpio.High); err != nil {
			glog.Errorf("release column %d: %v", c, err)
		}
	}
	return
}

// Close implements Matrix. Columns are left floating.
func (m *GPIO) Close() error {
	var errs fx.AggregatedError
	for c, col := range m.columns {
		if col == nil {
			continue
		}
		if err := col.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			errs.Add(fmt.Errorf("release column %d: %v", c, err))
		}
	}
	return errs.Aggregate()
}
