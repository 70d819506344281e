// Package connector sets up how clients reach phones.
package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/phone.go/pkg/l1"
	"github.com/robotalks/phone.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/phone.go/pkg/l1/comm/stream"
	"github.com/robotalks/phone.go/pkg/l1/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref l1.ControllerRef

	// RegistryURL specifies where phones are found.
	// mqtt://host:port/topic-prefix discovers phones on a broker,
	// tcp://host:port and ws://host:port/path reach one phone directly.
	RegistryURL string
}

var defaultConfig = Config{
	Ref:         l1.ControllerRef{Type: "phone"},
	RegistryURL: "mqtt://localhost:1883/phone/",
}

func init() {
	if val := os.Getenv("PHONE_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("PHONE_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("PHONE_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "phone-type", defaultConfig.Ref.Type, "Phone type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "phone-id", defaultConfig.Ref.ID, "Phone ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "phone-reg", defaultConfig.RegistryURL, "Phone registry URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (l1.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "mqtts":
		return mqtt.NewConnector(c.RegistryURL)
	case "tcp":
		return &stream.Connector{Addr: parsedURL.Host}, nil
	case "ws", "wss":
		return &websocket.Connector{URL: c.RegistryURL}, nil
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() l1.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to a phone.
func (c *Config) Connect(ctx context.Context) (l1.ControllerConn, error) {
	if !c.Ref.IsValid() {
		return nil, fmt.Errorf("phone type and id must be specified")
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(ctx, c.Ref)
}

// MustConnect connects to a phone or fails.
func (c *Config) MustConnect(ctx context.Context) l1.ControllerConn {
	conn, err := c.Connect(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
