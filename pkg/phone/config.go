package phone

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/phone.go/pkg/dial"
	"github.com/robotalks/phone.go/pkg/history"
	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/keypad/device"
	"github.com/robotalks/phone.go/pkg/l1"
)

// Config defines the configurations for the controller.
type Config struct {
	Device device.Config `yaml:"device"`
	// ScanInterval is the loop period, well below the debounce window.
	ScanInterval time.Duration `yaml:"scan_interval"`
	// Mode is the initial accumulation mode, "dial" or "relay".
	Mode string `yaml:"mode"`
	// HistoryPath is the dial history file, empty to disable.
	HistoryPath string `yaml:"history"`
}

// DefaultScanInterval is the default loop period.
const DefaultScanInterval = 5 * time.Millisecond

var (
	defaultConfig = Config{
		Device: device.Config{
			Driver: device.DriverGPIO,
			Pins:   device.DefaultPins,
		},
		ScanInterval: DefaultScanInterval,
		Mode:         dial.DialAccumulation.String(),
	}

	configFile string
)

func init() {
	if val := os.Getenv("PHONE_DEVICE"); val != "" {
		defaultConfig.Device.Driver = val
	}
	if val := os.Getenv("PHONE_HISTORY"); val != "" {
		defaultConfig.HistoryPath = val
	}
	configFile = os.Getenv("PHONE_CONFIG")
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, overrides defaults and flags.")
	flag.StringVar(&defaultConfig.Device.Driver, "device", defaultConfig.Device.Driver, "Key matrix driver: gpio or sim.")
	flag.DurationVar(&defaultConfig.ScanInterval, "scan-interval", defaultConfig.ScanInterval, "Key matrix scan interval.")
	flag.StringVar(&defaultConfig.Mode, "mode", defaultConfig.Mode, "Initial mode: dial or relay.")
	flag.StringVar(&defaultConfig.HistoryPath, "history", defaultConfig.HistoryPath, "Dial history file.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults, then applies the config
// file given by -config or PHONE_CONFIG.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			return nil, err
		}
	}
	return &conf, nil
}

// MustNewConfig is NewConfig failing on error.
func MustNewConfig() *Config {
	conf, err := NewConfig()
	if err != nil {
		log.Fatalln(err)
	}
	return conf
}

// LoadFile overrides the fields present in the YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.Parse(data)
}

// Parse overrides the fields present in YAML data.
func (c *Config) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	return c.Validate()
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if c.ScanInterval <= 0 || c.ScanInterval >= keypad.DebounceWindow {
		return fmt.Errorf("scan interval %v must be positive and below %v", c.ScanInterval, keypad.DebounceWindow)
	}
	if _, err := dial.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// NewController opens the matrix and history and creates a controller.
func (c *Config) NewController(reg l1.Registrar) (*Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := dial.ParseMode(c.Mode)
	matrix, err := device.Open(c.Device, keypad.DefaultLayout)
	if err != nil {
		return nil, fmt.Errorf("open %s matrix error: %v", c.Device.Driver, err)
	}
	h, err := history.Open(c.HistoryPath)
	if err != nil {
		matrix.Close()
		return nil, fmt.Errorf("open history error: %v", err)
	}
	return NewController(reg, matrix).WithMode(mode).WithHistory(h), nil
}

// MustNewController is NewController failing on error.
func (c *Config) MustNewController(reg l1.Registrar) *Controller {
	ctl, err := c.NewController(reg)
	if err != nil {
		log.Fatalln(err)
	}
	return ctl
}
