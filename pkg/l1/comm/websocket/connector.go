package websocket

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/websocket"

	"github.com/robotalks/phone.go/pkg/l1"
	"github.com/robotalks/phone.go/pkg/l1/comm"
)

// Connector connects to a single phone serving websocket at URL.
type Connector struct {
	URL string
}

// Discover implements Connector.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return nil, fmt.Errorf("discovery not supported on %s", c.URL)
}

// Connect implements Connector. ref is informational.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	conf, err := websocket.NewConfig(c.URL, originOf(c.URL))
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := websocket.DialConfig(conf)
	if err != nil {
		return nil, err
	}
	cc := &comm.ControllerConn{}
	cc.Init(New(conn))
	return cc, nil
}

func originOf(wsURL string) string {
	if strings.HasPrefix(wsURL, "wss://") {
		return "https://" + strings.TrimPrefix(wsURL, "wss://")
	}
	return "http://" + strings.TrimPrefix(wsURL, "ws://")
}
