package stream

import (
	"context"
	"fmt"
	"net"

	"github.com/robotalks/phone.go/pkg/l1"
	"github.com/robotalks/phone.go/pkg/l1/comm"
)

// Connector connects to a single phone serving on a TCP address.
type Connector struct {
	Addr string
}

// Discover implements Connector. A stream endpoint serves exactly one
// controller whose identity is only known after connecting.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return nil, fmt.Errorf("discovery not supported on tcp://%s", c.Addr)
}

// Connect implements Connector. ref is informational.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	cc := &comm.ControllerConn{}
	cc.Init(New(conn))
	return cc, nil
}
