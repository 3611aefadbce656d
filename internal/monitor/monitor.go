package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/logging"
)

// DefaultInterval is the minimum spacing between two sampling ticks
// when none is configured. Low tens of milliseconds keeps motion capture
// responsive without burning a core.
const DefaultInterval = 16 * time.Millisecond

// DefaultEventBuffer is the default capacity of the subscriber channel.
const DefaultEventBuffer = 256

// ErrAlreadyRunning is returned by Run when the monitor is running.
var ErrAlreadyRunning = errors.New("monitor: already running")

// Handler receives events synchronously, in dispatch order.
type Handler func(cursor.Event)

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval sets the minimum spacing between two sampling ticks.
// Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithLogger sets the activity logger.
func WithLogger(log *logging.Logger) Option {
	return func(m *Monitor) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock sets the time source used for timestamps. Tests use this to
// pin timestamps; the debounce sleep always uses real time.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		if now != nil {
			m.now = now
		}
	}
}

// WithEventBuffer sets the subscriber channel capacity.
func WithEventBuffer(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.eventBuffer = n
		}
	}
}

// Monitor owns the sampling loop and the shared state surface.
type Monitor struct {
	sampler     Sampler
	cache       *ShapeCache
	log         *logging.Logger
	interval    time.Duration
	now         func() time.Time
	eventBuffer int

	// state holds the latest published snapshot. Readers load the
	// pointer and get a complete immutable value; the loop publishes by
	// swapping the pointer, so no reader ever sees a torn state.
	state atomic.Pointer[cursor.State]

	handlerMu sync.RWMutex
	handler   Handler

	events chan Delivery
	drops  atomic.Uint64
	seq    uint64

	running atomic.Bool
}

// New creates a Monitor over the given sampler and shape resolver.
func New(sampler Sampler, resolver ShapeResolver, opts ...Option) *Monitor {
	m := &Monitor{
		sampler:     sampler,
		cache:       NewShapeCache(resolver),
		log:         logging.Nop(),
		interval:    DefaultInterval,
		now:         time.Now,
		eventBuffer: DefaultEventBuffer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.events = make(chan Delivery, m.eventBuffer)

	initial := cursor.NewState(m.now())
	m.state.Store(&initial)
	return m
}

// State returns the latest published snapshot. Safe to call from any
// goroutine, including concurrently with an in-progress tick.
func (m *Monitor) State() cursor.State {
	return *m.state.Load()
}

// SetHandler replaces the registered event handler. May be called before
// or after Run; a change takes effect from the next tick.
func (m *Monitor) SetHandler(h Handler) {
	m.handlerMu.Lock()
	m.handler = h
	m.handlerMu.Unlock()
}

// Run executes the sampling loop until ctx is cancelled. It returns an
// error immediately if the very first sample cannot be obtained (the
// platform capability is unavailable); after that, individual sample
// failures skip the tick and monitoring continues.
func (m *Monitor) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer m.running.Store(false)

	first, err := m.sampler.Sample()
	if err != nil {
		return fmt.Errorf("monitor: pointer sampling unavailable: %w", err)
	}

	state := m.buildState(first)
	m.state.Store(&state)
	m.log.Infof("Cursor Pos: %s | Type: %s", state.Position, state.CursorType)

	timer := time.NewTimer(m.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		start := time.Now()
		m.tick()

		// Sleep only the remainder of the interval. An overrunning
		// tick starts the next one immediately; missed intervals are
		// not replayed.
		remaining := m.interval - time.Since(start)
		if remaining < 0 {
			remaining = 0
		}
		timer.Reset(remaining)
	}
}

// tick performs one sample-diff-publish-dispatch cycle.
func (m *Monitor) tick() {
	raw, err := m.sampler.Sample()
	if err != nil {
		// Transient failure: keep the previous snapshot, retry on the
		// next tick.
		m.log.Debugf("sample skipped: %v", err)
		return
	}

	cur := m.buildState(raw)
	prev := m.State()

	events := Diff(prev, cur)
	m.state.Store(&cur)

	for _, ev := range events {
		m.dispatch(ev)
		m.logEvent(ev)
	}
}

// buildState assembles an immutable snapshot from a raw sample, stamping
// it with the current time and the resolved shape label.
func (m *Monitor) buildState(raw Sample) cursor.State {
	return cursor.State{
		Position:   raw.Position,
		CursorType: m.cache.Resolve(raw.Shape),
		LeftClick:  raw.LeftDown,
		RightClick: raw.RightDown,
		Timestamp:  cursor.Timestamp(m.now()),
	}
}

// logEvent writes the activity line for one event.
func (m *Monitor) logEvent(ev cursor.Event) {
	switch ev := ev.(type) {
	case cursor.Move:
		m.log.Infof("Cursor Pos: %s | Type: %s", ev.Position, ev.CursorType)
	case cursor.TypeChange:
		m.log.Infof("Cursor type changed to: %s", ev.NewType)
	case cursor.Click:
		m.log.Infof("%s click at position %s", buttonTitle(ev.Button), ev.Position)
	case cursor.Release:
		m.log.Infof("%s click released", buttonTitle(ev.Button))
	}
}

// buttonTitle capitalizes a button name for log lines.
func buttonTitle(b cursor.Button) string {
	switch b {
	case cursor.ButtonLeft:
		return "Left"
	case cursor.ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}
