// Package phone runs the keypad pipeline of a telephone in a control
// loop: the matrix is scanned into key events, key events accumulate
// into dialed text, and completed text is parsed and published.
package phone

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/phone.go/pkg/clock"
	"github.com/robotalks/phone.go/pkg/dial"
	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/history"
	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/keypad/device"
	"github.com/robotalks/phone.go/pkg/l1"
	l1msgs "github.com/robotalks/phone.go/pkg/l1/msgs"
	"github.com/robotalks/phone.go/pkg/number"
	"github.com/robotalks/phone.go/pkg/phone/msgs"
)

// Key injection timing.
const (
	DefaultInjectHold = 100 * time.Millisecond
	InjectGap         = 50 * time.Millisecond
)

// KeyEventMsg carries a scanned key event within an iteration.
type KeyEventMsg struct {
	Event keypad.KeyEvent
}

// NewMessage implements Message.
func (m *KeyEventMsg) NewMessage() fx.Message { return &KeyEventMsg{} }

// Controller is the L1 controller of a phone.
type Controller struct {
	Registrar l1.Registrar
	Matrix    device.Matrix
	Clock     *clock.Counter
	History   *history.Log

	layout   keypad.Layout
	scanner  *keypad.Scanner
	mode     dial.Mode
	buffer   dial.Buffer
	injector keyInjector

	events        []fx.Message
	records       []history.Record
	statusChanged bool
}

// NewController creates a Controller scanning matrix with the default layout.
func NewController(reg l1.Registrar, matrix device.Matrix) *Controller {
	return (&Controller{
		Registrar:     reg,
		Matrix:        matrix,
		Clock:         clock.NewCounter(),
		statusChanged: true,
	}).WithLayout(keypad.DefaultLayout)
}

// WithLayout sets the labels of the matrix positions, which must
// match the layout the matrix was created with.
func (c *Controller) WithLayout(layout keypad.Layout) *Controller {
	c.layout = layout
	c.scanner = keypad.NewScanner(layout)
	return c
}

// Layout returns the labels of the matrix positions.
func (c *Controller) Layout() keypad.Layout {
	return c.layout
}

// WithMode sets the accumulation mode.
func (c *Controller) WithMode(mode dial.Mode) *Controller {
	c.setMode(mode)
	return c
}

// WithHistory sets where outcomes are recorded.
func (c *Controller) WithHistory(h *history.Log) *Controller {
	c.History = h
	return c
}

// Mode returns the current accumulation mode.
func (c *Controller) Mode() dial.Mode {
	return c.mode
}

// AddToLoop implements LoopAdder. The loop is stamped by the
// controller's clock which is also started with the loop, and the
// controller is closed when the loop stops.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.WithClock(c.Clock).AddRunnable(c.Clock).AddCloser(c)
	loop.AddController(fx.PrLvSense, fx.ControlFunc(c.sense))
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.publish))
}

// Close releases the matrix and the history.
func (c *Controller) Close() error {
	var errs fx.AggregatedError
	errs.Add(c.Matrix.Close(), c.History.Close())
	return errs.Aggregate()
}

// Status returns a snapshot of the accumulator.
func (c *Controller) Status() *msgs.PhoneStatus {
	return &msgs.PhoneStatus{
		Mode:    c.mode.String(),
		Text:    c.buffer.Text(),
		Dropped: uint32(c.buffer.Dropped()),
		Device:  c.Matrix.Name(),
	}
}

func (c *Controller) sense(cc fx.ControlContext) error {
	now := cc.Instant()
	if inj, ok := c.Matrix.(device.Injector); ok {
		if err := c.injector.run(inj, now); err != nil {
			return err
		}
	}
	if ev, ok := c.scanner.Scan(c.Matrix.Read(), now); ok {
		cc.Messages().AddMessages(&KeyEventMsg{Event: ev})
	}
	return nil
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *KeyEventMsg:
			mctx.MessageTaken()
			c.handleKey(cc, msg.Event)
		case *l1.CommandMsg:
			if reply := c.handleCommand(cc, msg.Command.Msg()); reply != nil {
				mctx.MessageTaken()
				errs.Add(msg.Command.Done(reply))
			}
		}
	}))
	return errs.Aggregate()
}

func (c *Controller) handleKey(cc fx.ControlContext, ev keypad.KeyEvent) {
	c.events = append(c.events, msgs.KeyPressedFrom(ev))
	c.statusChanged = true
	if !c.buffer.Push(c.mode, ev) {
		return
	}
	text := c.buffer.Text()
	switch c.buffer.Mode() {
	case dial.DialAccumulation:
		n, err := number.Parse(text)
		if err != nil {
			glog.Infof("rejected %q: %v", text, err)
			c.emit(&msgs.NumberRejected{Text: text},
				history.NewRecord(cc.Time(), history.KindRejected, text))
		} else {
			glog.Infof("dialed %s", n)
			c.emit(msgs.NumberDialedFrom(text, n),
				history.NewRecord(cc.Time(), history.KindDialed, text).WithNumber(n))
		}
		c.buffer.Clear()
	case dial.ImmediateRelay:
		key := string(ev.Key())
		glog.V(1).Infof("relayed %s", key)
		c.emit(&msgs.DigitRelayed{Key: key, Text: text},
			history.NewRecord(cc.Time(), history.KindRelayed, key))
	}
}

func (c *Controller) emit(msg fx.Message, rec history.Record) {
	c.events = append(c.events, msg)
	c.records = append(c.records, rec)
}

// handleCommand returns nil for commands not handled here.
func (c *Controller) handleCommand(cc fx.ControlContext, cmd fx.Message) fx.Message {
	switch m := cmd.(type) {
	case *msgs.ModeSet:
		mode, err := dial.ParseMode(m.Mode)
		if err != nil {
			return l1msgs.NewCommandErr(err)
		}
		c.setMode(mode)
	case *msgs.BufferClear:
		c.buffer.Clear()
		c.statusChanged = true
	case *msgs.StatusQuery:
		return &msgs.StatusReply{Status: c.Status()}
	case *msgs.KeyInject:
		if err := c.inject(m); err != nil {
			return l1msgs.NewCommandErr(err)
		}
	default:
		return nil
	}
	return l1msgs.NewCommandOK()
}

func (c *Controller) setMode(mode dial.Mode) {
	if mode != c.mode {
		glog.Infof("mode %s", mode)
		c.buffer.Clear()
		c.mode = mode
		c.statusChanged = true
	}
}

func (c *Controller) inject(m *msgs.KeyInject) error {
	if _, ok := c.Matrix.(device.Injector); !ok {
		return errNotInjectable
	}
	keys := []rune(m.Key)
	if len(keys) != 1 {
		return device.ErrUnknownKey
	}
	if _, ok := c.layout.IndexOf(keys[0]); !ok {
		return device.ErrUnknownKey
	}
	hold := DefaultInjectHold
	if m.HoldMs > 0 {
		hold = time.Duration(m.HoldMs) * time.Millisecond
	}
	c.injector.enqueue(keys[0], hold)
	return nil
}

func (c *Controller) publish(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	if c.statusChanged {
		c.statusChanged = false
		c.events = append(c.events, c.Status())
	}
	for _, rec := range c.records {
		errs.Add(c.History.Append(rec))
	}
	if c.Registrar != nil {
		for _, ev := range c.events {
			errs.Add(c.Registrar.SendEvent(cc.Context(), ev))
		}
	}
	c.events, c.records = c.events[:0], c.records[:0]
	return errs.Aggregate()
}
