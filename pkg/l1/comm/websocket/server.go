package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1/comm"
)

// Server serves websocket connections on Path, each as a Registrar.
type Server struct {
	comm.Hub
	Addr string
	Path string
}

// NewServer creates a Server.
func NewServer(addr, path string) *Server {
	if path == "" {
		path = "/"
	}
	return &Server{Addr: addr, Path: path}
}

// Name implements Named.
func (s *Server) Name() string {
	return "ws:" + s.Addr + s.Path
}

// Handler returns the http.Handler serving websocket peers with ctx.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		glog.V(1).Infof("accepted %s", conn.Request().RemoteAddr)
		s.Serve(ctx, New(conn))
	})
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(s.Path, s.Handler(ctx))
	srv := &http.Server{Handler: mux}
	glog.Infof("listening on ws://%s%s", ln.Addr(), s.Path)
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err = srv.Serve(ln); err == http.ErrServerClosed {
		return ctx.Err()
	}
	return err
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}
