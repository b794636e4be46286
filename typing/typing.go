// Package typing reveals a fixed string one character per interval, the way
// a terminal prints output.
package typing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/okbaghel/devfolio/logging"
)

// DefaultDelay applies when a non-positive delay is given.
const DefaultDelay = 100 * time.Millisecond

var ErrDisposed = errors.New("typewriter disposed")

type State int

const (
	Revealing State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}

	return "revealing"
}

// Frame is a snapshot of the reveal: Text is always the first Index characters
// of the source.
type Frame struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Done  bool   `json:"done"`
}

// RevealFunc observes every appended character. Returning an error stops the
// reveal; Run returns that error.
type RevealFunc func(Frame) error

type Option func(*Typewriter)

func WithClock(c Clock) Option {
	return func(t *Typewriter) { t.clock = c }
}

func WithOnReveal(f RevealFunc) Option {
	return func(t *Typewriter) { t.onReveal = f }
}

// Typewriter is a two-state machine: revealing until every character of the
// source is shown, then done. It never restarts.
type Typewriter struct {
	source   []rune
	delay    time.Duration
	clock    Clock
	onReveal RevealFunc

	mu       sync.Mutex
	next     int
	disposed bool
	mounted  bool
	cancel   context.CancelFunc
	err      error
	finished chan struct{}
}

func New(text string, delay time.Duration, opts ...Option) *Typewriter {
	if delay <= 0 {
		delay = DefaultDelay
	}

	t := &Typewriter{
		source:   []rune(text),
		delay:    delay,
		clock:    realClock{},
		finished: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Typewriter) Delay() time.Duration { return t.delay }

// Len is the number of characters in the source.
func (t *Typewriter) Len() int { return len(t.source) }

// Index is the reveal index: how many characters are shown.
func (t *Typewriter) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.next
}

func (t *Typewriter) Displayed() string {
	return t.Frame().Text
}

func (t *Typewriter) State() State {
	return t.Frame().state()
}

func (t *Typewriter) Frame() Frame {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.frameLocked()
}

func (t *Typewriter) frameLocked() Frame {
	return Frame{
		Text:  string(t.source[:t.next]),
		Index: t.next,
		Done:  t.next >= len(t.source),
	}
}

func (f Frame) state() State {
	if f.Done {
		return Done
	}

	return Revealing
}

// Run reveals the remaining characters, waiting one delay before each. Every
// step owns exactly one timer and releases it before the next is created.
// Run returns nil once the source is fully shown and ctx.Err() when cancelled.
func (t *Typewriter) Run(ctx context.Context) error {
	for {
		if t.State() == Done {
			return nil
		}

		if err := t.step(ctx); err != nil {
			return err
		}
	}
}

func (t *Typewriter) step(ctx context.Context) error {
	timer := t.clock.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C():
	}

	frame, err := t.reveal(ctx)
	if err != nil {
		return err
	}

	if t.onReveal != nil {
		return t.onReveal(frame)
	}

	return nil
}

// reveal appends one character unless the owner went away while the timer
// was pending.
func (t *Typewriter) reveal(ctx context.Context) (Frame, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return Frame{}, ErrDisposed
	}

	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	if t.next < len(t.source) {
		t.next++
	}

	return t.frameLocked(), nil
}

// Mount starts the reveal in the background. Only the first call has any
// effect; a disposed typewriter cannot be mounted.
func (t *Typewriter) Mount(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mounted || t.disposed {
		return
	}

	t.mounted = true

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	go func() {
		defer close(t.finished)
		defer cancel()

		err := t.Run(runCtx)

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()

		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrDisposed) {
			slog.DebugContext(logging.PackageCtx("typing"), "Reveal stopped", "error", err, "index", t.Index())
		}
	}()
}

// Wait blocks until a mounted typewriter stops and returns why it stopped.
func (t *Typewriter) Wait() error {
	t.mu.Lock()
	mounted := t.mounted
	t.mu.Unlock()

	if !mounted {
		return nil
	}

	<-t.finished

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Dispose cancels any pending timer and waits for the background reveal to
// exit. After Dispose returns no further characters are revealed. It must not
// be called from a RevealFunc.
func (t *Typewriter) Dispose() {
	t.mu.Lock()
	t.disposed = true
	cancel := t.cancel
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-t.finished
}
