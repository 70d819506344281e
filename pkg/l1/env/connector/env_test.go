package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/phone.go/pkg/l1/comm/stream"
	"github.com/robotalks/phone.go/pkg/l1/comm/websocket"
)

func TestNewConnector(t *testing.T) {
	conf := NewConfig()
	cases := []struct {
		url  string
		kind interface{}
	}{
		{"mqtt://localhost:1883/phone/", &mqtt.Connector{}},
		{"tcp://10.0.0.2:7070", &stream.Connector{}},
		{"ws://10.0.0.2:7071/phone", &websocket.Connector{}},
	}
	for _, c := range cases {
		t.Run(c.url, func(t *testing.T) {
			conf.RegistryURL = c.url
			connector, err := conf.NewConnector()
			require.NoError(t, err)
			require.IsType(t, c.kind, connector)
		})
	}

	conf.RegistryURL = "udp://10.0.0.2"
	_, err := conf.NewConnector()
	require.Error(t, err)
}

func TestDefaultRef(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "phone", conf.Ref.Type)
	conf.Ref.ID = ""
	_, err := conf.Connect(context.Background())
	require.Error(t, err)
}
