package stream

import (
	"context"
	"net"

	"github.com/golang/glog"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1/comm"
)

// Server accepts TCP connections and serves each as a Registrar.
type Server struct {
	comm.Hub
	Addr string
}

// NewServer creates a Server listening on addr when run.
func NewServer(addr string) *Server {
	return &Server{Addr: addr}
}

// Name implements Named.
func (s *Server) Name() string {
	return "tcp:" + s.Addr
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("listening on tcp://%s", ln.Addr())
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		glog.V(1).Infof("accepted %s", conn.RemoteAddr())
		go s.Serve(ctx, New(conn))
	}
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}
