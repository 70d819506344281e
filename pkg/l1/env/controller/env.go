// Package controller sets up the registrars of a phone daemon.
package controller

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1"
	"github.com/robotalks/phone.go/pkg/l1/comm"
	"github.com/robotalks/phone.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/phone.go/pkg/l1/comm/stream"
	"github.com/robotalks/phone.go/pkg/l1/comm/websocket"
	"github.com/robotalks/phone.go/pkg/l1/env"
)

// Config provides common options to setup an env for L1 controllers.
type Config struct {
	Info l1.ControllerInfo

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// Listen is a comma separated list of endpoints served directly,
	// e.g. tcp://:7070,ws://:7071/phone
	Listen string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/phone/",
}

func init() {
	if val, ok := os.LookupEnv("PHONE_MQTT_URL"); ok {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("PHONE_LISTEN"); val != "" {
		defaultConfig.Listen = val
	}
	if val := os.Getenv("PHONE_ID"); val != "" {
		defaultConfig.Info.Ref.ID = val
	} else {
		defaultConfig.Info.Ref.ID = env.MachineID()
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Type, "type", defaultConfig.Info.Ref.Type, "Controller type")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Controller ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	flag.StringVar(&defaultConfig.Listen, "listen", defaultConfig.Listen, "Serve directly on tcp:// or ws:// endpoints, comma separated")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// SetControllerType should be called in init with basic info about the controller.
func SetControllerType(typ string, meta l1.ControllerMeta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// Env is the env for L1 controllers.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewListener creates a Registrar serving endpoint, tcp://host:port or
// ws://host:port/path.
func NewListener(endpoint string) (l1.Registrar, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %v", endpoint, err)
	}
	switch u.Scheme {
	case "tcp":
		return stream.NewServer(u.Host), nil
	case "ws":
		return websocket.NewServer(u.Host, u.Path), nil
	default:
		return nil, fmt.Errorf("unknown endpoint scheme: %q", u.Scheme)
	}
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	env := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		env.Registrar.Add(reg)
		env.RegistryURLs = append(env.RegistryURLs, c.MQTTBrokerURL)
	}
	for _, endpoint := range strings.Split(c.Listen, ",") {
		if endpoint = strings.TrimSpace(endpoint); endpoint == "" {
			continue
		}
		reg, err := NewListener(endpoint)
		if err != nil {
			return nil, err
		}
		env.Registrar.Add(reg)
		env.RegistryURLs = append(env.RegistryURLs, endpoint)
	}
	if len(env.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// AddToLoop adds registrars and the fallback for unhandled commands.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
