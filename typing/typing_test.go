package typing_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/okbaghel/devfolio/typing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock hands every new timer to the test, which decides when it fires.
type manualClock struct {
	timers chan *manualTimer
}

func newManualClock() *manualClock {
	return &manualClock{timers: make(chan *manualTimer, 16)}
}

func (c *manualClock) NewTimer(d time.Duration) typing.Timer {
	timer := &manualTimer{d: d, c: make(chan time.Time, 1)}
	c.timers <- timer

	return timer
}

func (c *manualClock) next(t *testing.T) *manualTimer {
	t.Helper()

	select {
	case timer := <-c.timers:
		return timer
	case <-time.After(time.Second):
		t.Fatal("no timer was scheduled")

		return nil
	}
}

func (c *manualClock) assertIdle(t *testing.T) {
	t.Helper()

	select {
	case <-c.timers:
		t.Fatal("unexpected timer scheduled")
	case <-time.After(20 * time.Millisecond):
	}
}

type manualTimer struct {
	d       time.Duration
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (m *manualTimer) C() <-chan time.Time { return m.c }

func (m *manualTimer) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasActive := !m.stopped
	m.stopped = true

	return wasActive
}

func (m *manualTimer) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stopped
}

// Fire delivers a tick even if the timer was stopped, like a callback racing
// with cancellation.
func (m *manualTimer) Fire() {
	select {
	case m.c <- time.Now():
	default:
	}
}

func receiveFrame(t *testing.T, frames <-chan typing.Frame) typing.Frame {
	t.Helper()

	select {
	case f := <-frames:
		return f
	case <-time.After(time.Second):
		t.Fatal("no frame revealed")

		return typing.Frame{}
	}
}

func newRecorded(text string, clock typing.Clock) (*typing.Typewriter, chan typing.Frame) {
	frames := make(chan typing.Frame, 16)
	tw := typing.New(text, 10*time.Millisecond,
		typing.WithClock(clock),
		typing.WithOnReveal(func(f typing.Frame) error {
			frames <- f

			return nil
		}))

	return tw, frames
}

func TestRevealsOneCharacterPerInterval(t *testing.T) {
	clock := newManualClock()
	tw, frames := newRecorded("ready", clock)

	assert.Equal(t, "", tw.Displayed())
	assert.Equal(t, typing.Revealing, tw.State())

	tw.Mount(context.Background())

	var prev *manualTimer

	for i := 1; i <= 5; i++ {
		timer := clock.next(t)
		assert.Equal(t, 10*time.Millisecond, timer.d)

		if prev != nil {
			assert.True(t, prev.Stopped(), "timer is released before the next one is scheduled")
		}

		timer.Fire()

		frame := receiveFrame(t, frames)
		assert.Equal(t, "ready"[:i], frame.Text)
		assert.Equal(t, i, frame.Index)
		assert.Equal(t, i == 5, frame.Done)

		prev = timer
	}

	require.NoError(t, tw.Wait())
	assert.True(t, prev.Stopped())

	assert.Equal(t, "ready", tw.Displayed())
	assert.Equal(t, typing.Done, tw.State())

	// done is idle: nothing else gets scheduled or revealed
	clock.assertIdle(t)
	assert.Empty(t, frames)
	assert.Equal(t, 5, tw.Index())
}

func TestDisposeStopsReveal(t *testing.T) {
	clock := newManualClock()
	tw, frames := newRecorded("ready", clock)

	tw.Mount(context.Background())

	for i := 0; i < 2; i++ {
		clock.next(t).Fire()
		receiveFrame(t, frames)
	}

	pending := clock.next(t)

	tw.Dispose()

	assert.True(t, pending.Stopped(), "pending timer must be released on dispose")

	// the remaining intervals elapse anyway
	pending.Fire()
	clock.assertIdle(t)

	assert.Equal(t, "re", tw.Displayed())
	assert.Equal(t, 2, tw.Index())
	assert.Empty(t, frames)
	assert.ErrorIs(t, tw.Wait(), context.Canceled)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	clock := newManualClock()
	tw, frames := newRecorded("ready", clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- tw.Run(ctx) }()

	clock.next(t).Fire()
	receiveFrame(t, frames)

	pending := clock.next(t)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.True(t, pending.Stopped())
	assert.Equal(t, "r", tw.Displayed())
}

func TestRevealErrorStopsRun(t *testing.T) {
	clock := newManualClock()
	sendErr := errors.New("socket closed")
	tw := typing.New("ready", time.Millisecond,
		typing.WithClock(clock),
		typing.WithOnReveal(func(typing.Frame) error { return sendErr }))

	tw.Mount(context.Background())
	clock.next(t).Fire()

	require.ErrorIs(t, tw.Wait(), sendErr)
	assert.Equal(t, "r", tw.Displayed())
	clock.assertIdle(t)
}

func TestEmptySourceIsDone(t *testing.T) {
	clock := newManualClock()
	tw := typing.New("", time.Millisecond, typing.WithClock(clock))

	assert.Equal(t, typing.Done, tw.State())
	require.NoError(t, tw.Run(context.Background()))
	clock.assertIdle(t)
}

func TestCountsCharactersNotBytes(t *testing.T) {
	clock := newManualClock()
	tw, frames := newRecorded("héllo", clock)

	tw.Mount(context.Background())

	clock.next(t).Fire()
	receiveFrame(t, frames)
	clock.next(t).Fire()

	assert.Equal(t, "hé", receiveFrame(t, frames).Text)
	assert.Equal(t, 5, tw.Len())

	tw.Dispose()
}

func TestMountOnlyOnce(t *testing.T) {
	tw := typing.New("ok", time.Millisecond)

	tw.Mount(context.Background())
	tw.Mount(context.Background())

	require.NoError(t, tw.Wait())
	assert.Equal(t, "ok", tw.Displayed())

	tw.Dispose()
	tw.Mount(context.Background())
	assert.Equal(t, "ok", tw.Displayed())
}

func TestDisposeBeforeMount(t *testing.T) {
	clock := newManualClock()
	tw := typing.New("ready", time.Millisecond, typing.WithClock(clock))

	tw.Dispose()
	tw.Mount(context.Background())

	clock.assertIdle(t)
	assert.Equal(t, "", tw.Displayed())
	assert.NoError(t, tw.Wait())
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, typing.DefaultDelay, typing.New("x", 0).Delay())
	assert.Equal(t, typing.DefaultDelay, typing.New("x", -time.Second).Delay())
	assert.Equal(t, 50*time.Millisecond, typing.New("x", 50*time.Millisecond).Delay())
}
