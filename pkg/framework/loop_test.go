package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/clock"
)

type textMsg struct {
	text string
}

func (m *textMsg) NewMessage() Message { return &textMsg{} }

type recorder struct {
	seen []string
}

func (r *recorder) Control(cc ControlContext) error {
	cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
		if msg, ok := mctx.CurrentMessage().(*textMsg); ok {
			mctx.MessageTaken()
			r.seen = append(r.seen, msg.text)
		}
	}))
	return nil
}

func TestLoopMessagesFlowByPriority(t *testing.T) {
	c := clock.NewCounter()
	c.Set(42)
	loop := NewLoop().WithClock(c)
	rec := &recorder{}
	var instants []clock.Instant
	loop.AddController(PrLvSense, ControlFunc(func(cc ControlContext) error {
		instants = append(instants, cc.Instant())
		cc.Messages().AddMessages(&textMsg{text: "sensed"})
		return nil
	}))
	loop.AddController(PrLvControl, rec)
	loop.PostMessage(&textMsg{text: "posted"})

	loop.RunIteration(context.Background())
	require.Equal(t, []string{"posted", "sensed"}, rec.seen)
	require.Equal(t, []clock.Instant{42}, instants)

	loop.RunIteration(context.Background())
	require.Equal(t, []string{"posted", "sensed", "sensed"}, rec.seen)
}

func TestLoopStopProcessing(t *testing.T) {
	loop := NewLoop()
	var first []string
	loop.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			first = append(first, mctx.CurrentMessage().(*textMsg).text)
			mctx.MessageTaken()
			mctx.StopProcessing()
		}))
		return nil
	}))
	rec := &recorder{}
	loop.AddController(PrLvPostProc, rec)
	loop.PostMessage(&textMsg{text: "a"})
	loop.PostMessage(&textMsg{text: "b"})
	loop.PostMessage(&textMsg{text: "c"})
	loop.RunIteration(context.Background())
	require.Equal(t, []string{"a"}, first)
	require.Equal(t, []string{"b", "c"}, rec.seen)
}

func TestLoopHooksRunOnce(t *testing.T) {
	loop := NewLoop()
	var calls int
	loop.PostRunAt(PrLvIdle, ControlFunc(func(cc ControlContext) error {
		calls++
		return errors.New("logged only")
	}))
	loop.RunIteration(context.Background())
	loop.RunIteration(context.Background())
	require.Equal(t, 1, calls)
}

type countRunner struct {
	started chan struct{}
}

func (r *countRunner) Run(ctx context.Context) error {
	close(r.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestLoopRun(t *testing.T) {
	loop := NewLoop()
	loop.Interval = time.Millisecond
	r := &countRunner{started: make(chan struct{})}
	loop.AddRunnable(r)
	iterations := make(chan struct{}, 16)
	loop.AddController(PrLvNormal, ControlFunc(func(cc ControlContext) error {
		select {
		case iterations <- struct{}{}:
		default:
		}
		return nil
	}))
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	<-r.started
	<-iterations
	loop.TriggerNext()
	<-iterations
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

type closeRecorder struct {
	name   string
	err    error
	closed *[]string
}

func (c *closeRecorder) Close() error {
	*c.closed = append(*c.closed, c.name)
	return c.err
}

func TestLoopRunClosesOnExit(t *testing.T) {
	var closed []string
	bad := errors.New("close failed")
	loop := NewLoop().AddCloser(
		&closeRecorder{name: "first", closed: &closed},
		&closeRecorder{name: "second", err: bad, closed: &closed},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := loop.Run(ctx)
	require.Equal(t, []string{"second", "first"}, closed)
	require.Error(t, err)
	require.Equal(t, []error{context.Canceled, bad}, err.(*AggregatedError).Errors)

	closed = nil
	err = NewLoop().AddCloser(&closeRecorder{name: "only", closed: &closed}).Run(ctx)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, []string{"only"}, closed)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil, nil).Aggregate())
	err := errs.Add(errors.New("one"), nil, errors.New("two")).Aggregate()
	require.Error(t, err)
	require.Equal(t, "Multiple errors:\none\ntwo", err.Error())
}

func TestRunnerWait(t *testing.T) {
	r := NewRunner()
	boom := errors.New("boom")
	r.Go(
		RunnableFunc(func(context.Context) error { return boom }),
		RunnableFunc(func(context.Context) error { return context.Canceled }),
	)
	err := r.Wait()
	require.Error(t, err)
	require.Equal(t, []error{boom}, err.(*AggregatedError).Errors)
}
