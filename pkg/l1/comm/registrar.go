package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1"
	"github.com/robotalks/phone.go/pkg/l1/msgs"
)

// Registrar implements l1.Registrar with a Pipe running in a Loop.
// Received commands are posted as l1.CommandMsg, events as is.
type Registrar struct {
	pipe Pipe
}

// Init initializes the Registrar with defaults.
func (r *Registrar) Init(rw PacketReadWriter) {
	r.pipe.ReadWriter = rw
	r.pipe.Handler = msgs.HandleTypedMsgFunc(r.handleTypedMsg)
}

func (r *Registrar) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if typed.IsReply() {
		return nil
	}
	loopCtl := fx.LoopCtlFrom(ctx)
	if typed.IsCommand() {
		msg = &l1.CommandMsg{Command: &command{seq: typed.Sequence, msg: msg, pipe: &r.pipe}}
	}
	loopCtl.PostMessage(msg)
	loopCtl.TriggerNext()
	return nil
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.pipe.SendEventMsg(msg)
}

// Run runs the underlying pipe.
func (r *Registrar) Run(ctx context.Context) error {
	return r.pipe.Run(ctx)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.Add(&r.pipe)
}

type command struct {
	seq  uint32
	msg  fx.Message
	pipe *Pipe
}

func (c *command) Msg() fx.Message {
	return c.msg
}

func (c *command) Done(msg fx.Message) error {
	return c.pipe.SendCommandMsg(msg, c.seq)
}

// Hub is a Registrar for servers: every accepted connection gets its
// own Registrar and events are broadcast to all of them.
type Hub struct {
	lock  sync.RWMutex
	peers map[*Registrar]struct{}
}

// Serve runs a Registrar over rw until the connection fails.
// ctx must carry the loop control, i.e. be derived from a Runnable in the loop.
func (h *Hub) Serve(ctx context.Context, rw PacketReadWriter) error {
	reg := &Registrar{}
	reg.Init(rw)
	h.lock.Lock()
	if h.peers == nil {
		h.peers = make(map[*Registrar]struct{})
	}
	h.peers[reg] = struct{}{}
	glog.V(1).Infof("peer joined, %d connected", len(h.peers))
	h.lock.Unlock()

	err := reg.Run(ctx)

	h.lock.Lock()
	delete(h.peers, reg)
	glog.V(1).Infof("peer left (%v), %d connected", err, len(h.peers))
	h.lock.Unlock()
	return err
}

// Peers returns the number of connected peers.
func (h *Hub) Peers() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.peers)
}

// SendEvent implements Registrar.
func (h *Hub) SendEvent(ctx context.Context, msg fx.Message) error {
	var errs fx.AggregatedError
	h.lock.RLock()
	defer h.lock.RUnlock()
	for reg := range h.peers {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// RegistrarMux registers L1 controller with multiple Registrars.
type RegistrarMux struct {
	Registrars []l1.Registrar
}

// SendEvent implements Registrar.
func (r *RegistrarMux) SendEvent(ctx context.Context, msg fx.Message) error {
	var errs fx.AggregatedError
	for _, reg := range r.Registrars {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (r *RegistrarMux) AddToLoop(l *fx.Loop) {
	for _, reg := range r.Registrars {
		if adder, ok := reg.(fx.LoopAdder); ok {
			l.Add(adder)
		}
	}
}

// Add adds more registrars.
func (r *RegistrarMux) Add(regs ...l1.Registrar) {
	r.Registrars = append(r.Registrars, regs...)
}

// UnsupportedCommands replies left-over commands as unsupported.
type UnsupportedCommands struct {
}

// Control implements Controller.
func (c *UnsupportedCommands) Control(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg); ok {
			mctx.MessageTaken()
			errs.Add(cmdMsg.Command.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand)))
		}
	}))
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (c *UnsupportedCommands) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvIdle, c)
}
