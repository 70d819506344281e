package device

import (
	"fmt"

	"github.com/robotalks/phone.go/pkg/keypad"
)

// Drivers
const (
	DriverSim  = "sim"
	DriverGPIO = "gpio"
)

// Config selects and configures a matrix.
type Config struct {
	Driver string `yaml:"driver"`
	Pins   Pins   `yaml:"pins"`
}

// Open creates the matrix selected by conf.Driver.
func Open(conf Config, layout keypad.Layout) (Matrix, error) {
	switch conf.Driver {
	case DriverSim:
		return NewSim(layout), nil
	case DriverGPIO, "":
		return OpenGPIO(conf.Pins)
	default:
		return nil, fmt.Errorf("unknown matrix driver: %q", conf.Driver)
	}
}
