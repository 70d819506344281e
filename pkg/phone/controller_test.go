package phone

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

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

const step = 5 * time.Millisecond

type fakeRegistrar struct {
	events []fx.Message
}

func (r *fakeRegistrar) SendEvent(ctx context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

type fakeCommand struct {
	msg   fx.Message
	reply fx.Message
}

func (c *fakeCommand) Msg() fx.Message { return c.msg }

func (c *fakeCommand) Done(reply fx.Message) error {
	c.reply = reply
	return nil
}

type fixedMatrix struct{}

func (m fixedMatrix) Name() string          { return "fixed" }
func (m fixedMatrix) Read() keypad.Snapshot { return keypad.IdleSnapshot() }
func (m fixedMatrix) Close() error          { return nil }

type rig struct {
	t    *testing.T
	sim  *device.Sim
	reg  *fakeRegistrar
	ctl  *Controller
	loop *fx.Loop
	now  uint64
}

func newRig(t *testing.T) *rig {
	return newRigWithLayout(t, keypad.DefaultLayout)
}

func newRigWithLayout(t *testing.T, layout keypad.Layout) *rig {
	r := &rig{
		t:   t,
		sim: device.NewSim(layout),
		reg: &fakeRegistrar{},
	}
	r.ctl = NewController(r.reg, r.sim).WithLayout(layout)
	r.loop = fx.NewLoop().Add(r.ctl)
	r.advance(step)
	r.reg.events = nil
	return r
}

// advance runs one iteration per scan step until d elapsed.
func (r *rig) advance(d time.Duration) {
	for end := r.now + uint64(d/time.Millisecond); r.now < end; {
		r.now += uint64(step / time.Millisecond)
		r.ctl.Clock.Set(r.now)
		r.loop.RunIteration(context.Background())
	}
}

func (r *rig) tap(key rune, hold time.Duration) {
	require.NoError(r.t, r.sim.Press(key))
	r.advance(hold)
	require.NoError(r.t, r.sim.Release(key))
	r.advance(50 * time.Millisecond)
}

func (r *rig) dial(keys string) {
	for _, key := range keys {
		r.tap(key, 100*time.Millisecond)
	}
}

func (r *rig) command(msg fx.Message) fx.Message {
	cmd := &fakeCommand{msg: msg}
	r.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	r.advance(step)
	return cmd.reply
}

func (r *rig) keys() string {
	var sb strings.Builder
	for _, ev := range r.reg.events {
		if kp, ok := ev.(*msgs.KeyPressed); ok {
			sb.WriteString(kp.Key)
			if kp.Long {
				sb.WriteString("!")
			}
		}
	}
	return sb.String()
}

func (r *rig) outcomes() []fx.Message {
	var out []fx.Message
	for _, ev := range r.reg.events {
		switch ev.(type) {
		case *msgs.NumberDialed, *msgs.NumberRejected, *msgs.DigitRelayed:
			out = append(out, ev)
		}
	}
	return out
}

func TestControllerDialsNumber(t *testing.T) {
	r := newRig(t)
	path := filepath.Join(t.TempDir(), "history.cbor")
	h, err := history.Open(path)
	require.NoError(t, err)
	r.ctl.WithHistory(h)

	r.dial("5551234567")
	require.Equal(t, "5551234567", r.ctl.Status().Text)
	r.tap('#', 1100*time.Millisecond)

	require.Equal(t, "5551234567#!", r.keys())
	require.Equal(t, []fx.Message{
		msgs.NumberDialedFrom("5551234567", number.New(555, 123, 4567)),
	}, r.outcomes())
	require.Empty(t, r.ctl.Status().Text)

	require.NoError(t, r.ctl.Close())
	records, err := history.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, history.KindDialed, records[0].Kind)
	require.Equal(t, "555-123-4567", records[0].Number.String())
}

func TestControllerNumberMatchesParser(t *testing.T) {
	r := newRig(t)
	r.dial("8005550100")
	r.tap('#', 1500*time.Millisecond)
	out := r.outcomes()
	require.Len(t, out, 1)
	require.Equal(t, number.MustParse("800-555-0100"), out[0].(*msgs.NumberDialed).Number())
}

func TestControllerRejectsText(t *testing.T) {
	r := newRig(t)
	r.dial("12*")
	r.tap('#', 1100*time.Millisecond)
	require.Equal(t, []fx.Message{&msgs.NumberRejected{Text: "12*"}}, r.outcomes())
	require.Empty(t, r.ctl.Status().Text)

	// a short '#' is just a character
	r.reg.events = nil
	r.dial("#")
	require.Empty(t, r.outcomes())
	require.Equal(t, "#", r.ctl.Status().Text)
}

func TestControllerLongPressIgnored(t *testing.T) {
	r := newRig(t)
	r.dial("9")
	r.tap('5', 1200*time.Millisecond)
	require.Equal(t, "95!", r.keys())
	require.Empty(t, r.outcomes())
	require.Equal(t, "9", r.ctl.Status().Text)
}

func TestControllerRelayMode(t *testing.T) {
	r := newRig(t)
	r.ctl.WithMode(dial.ImmediateRelay)
	r.dial("78")
	r.tap('#', 1100*time.Millisecond)
	require.Equal(t, []fx.Message{
		&msgs.DigitRelayed{Key: "7", Text: "7"},
		&msgs.DigitRelayed{Key: "8", Text: "78"},
	}, r.outcomes())
	require.Equal(t, "78", r.ctl.Status().Text)
}

func TestControllerStatusEvents(t *testing.T) {
	r := newRig(t)
	r.dial("4")
	var status *msgs.PhoneStatus
	for _, ev := range r.reg.events {
		if s, ok := ev.(*msgs.PhoneStatus); ok {
			status = s
		}
	}
	require.Equal(t, &msgs.PhoneStatus{Mode: "dial", Text: "4", Device: "sim"}, status)

	// nothing changes, nothing published
	r.reg.events = nil
	r.advance(100 * time.Millisecond)
	require.Empty(t, r.reg.events)
}

func TestControllerCommands(t *testing.T) {
	r := newRig(t)
	r.dial("12")

	require.Equal(t, l1msgs.NewCommandOK(), r.command(&msgs.ModeSet{Mode: "relay"}))
	require.Equal(t, dial.ImmediateRelay, r.ctl.Mode())
	require.Empty(t, r.ctl.Status().Text)

	reply := r.command(&msgs.ModeSet{Mode: "rotary"})
	require.IsType(t, &l1msgs.CommandErr{}, reply)

	reply = r.command(&msgs.StatusQuery{})
	require.Equal(t, &msgs.StatusReply{Status: &msgs.PhoneStatus{Mode: "relay", Device: "sim"}}, reply)

	r.dial("3")
	require.Equal(t, "3", r.ctl.Status().Text)
	require.Equal(t, l1msgs.NewCommandOK(), r.command(&msgs.BufferClear{}))
	require.Empty(t, r.ctl.Status().Text)

	// left for other controllers
	require.Nil(t, r.command(&l1msgs.CommandOK{}))
}

func TestControllerKeyInject(t *testing.T) {
	r := newRig(t)
	for _, key := range "5551234567" {
		require.Equal(t, l1msgs.NewCommandOK(), r.command(&msgs.KeyInject{Key: string(key)}))
	}
	require.Equal(t, l1msgs.NewCommandOK(), r.command(&msgs.KeyInject{Key: "#", HoldMs: 1200}))
	require.Equal(t, 11, r.ctl.injector.pending())
	r.advance(4 * time.Second)
	require.Equal(t, 0, r.ctl.injector.pending())

	require.Equal(t, "5551234567#!", r.keys())
	require.Equal(t, []fx.Message{
		msgs.NumberDialedFrom("5551234567", number.New(555, 123, 4567)),
	}, r.outcomes())
	require.Equal(t, keypad.IdleSnapshot(), r.sim.Read())
}

func TestControllerKeyInjectRejected(t *testing.T) {
	r := newRig(t)
	require.IsType(t, &l1msgs.CommandErr{}, r.command(&msgs.KeyInject{Key: "A"}))
	require.IsType(t, &l1msgs.CommandErr{}, r.command(&msgs.KeyInject{Key: "55"}))
	require.Equal(t, 0, r.ctl.injector.pending())

	reg := &fakeRegistrar{}
	ctl := NewController(reg, fixedMatrix{})
	loop := fx.NewLoop().Add(ctl)
	cmd := &fakeCommand{msg: &msgs.KeyInject{Key: "5"}}
	loop.PostMessage(&l1.CommandMsg{Command: cmd})
	loop.RunIteration(context.Background())
	require.Equal(t, l1msgs.NewCommandErr(errNotInjectable), cmd.reply)
}

func TestControllerOverflow(t *testing.T) {
	r := newRig(t)
	for i := 0; i < dial.Capacity+2; i++ {
		r.ctl.handleKey(nil, keypad.Short('1'))
	}
	status := r.ctl.Status()
	require.Len(t, status.Text, dial.Capacity)
	require.Equal(t, uint32(2), status.Dropped)
}

func TestControllerCustomLayout(t *testing.T) {
	layout := keypad.DefaultLayout
	layout[4] = 'A'
	r := newRigWithLayout(t, layout)
	require.Equal(t, layout, r.ctl.Layout())

	r.dial("1A")
	require.Equal(t, "1A", r.keys())
	require.Equal(t, "1A", r.ctl.Status().Text)

	require.Equal(t, l1msgs.NewCommandOK(), r.command(&msgs.KeyInject{Key: "A"}))
	require.IsType(t, &l1msgs.CommandErr{}, r.command(&msgs.KeyInject{Key: "5"}))
	r.advance(200 * time.Millisecond)
	require.Equal(t, "1AA", r.keys())
}

func TestControllerClosedWithLoop(t *testing.T) {
	h, err := history.Open(filepath.Join(t.TempDir(), "history.cbor"))
	require.NoError(t, err)
	ctl := NewController(&fakeRegistrar{}, device.NewSim(keypad.DefaultLayout)).WithHistory(h)
	loop := fx.NewLoop().Add(ctl)
	loop.Interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	require.Eventually(t, func() bool { return ctl.Clock.Now() > 0 }, time.Second, time.Millisecond)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
	require.Equal(t, os.ErrClosed, h.Append(history.NewRecord(time.Now(), history.KindDialed, "1")))
}
