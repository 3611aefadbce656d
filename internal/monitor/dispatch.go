package monitor

import (
	"github.com/google/uuid"

	"github.com/luuma/cursorwatch/internal/cursor"
)

// Delivery wraps an event for the subscriber channel. The ID correlates
// the delivery across log lines and hooks; Seq increases by one per
// dispatched event, so gaps on the channel reveal drops.
type Delivery struct {
	// ID is a unique identifier for this delivery.
	ID string

	// Seq is the monotonic dispatch sequence number, starting at 1.
	Seq uint64

	// Event is the delivered event.
	Event cursor.Event
}

// newDelivery stamps an event with an ID and the next sequence number.
// Called only from the sampling goroutine, so the counter needs no lock.
func (m *Monitor) newDelivery(ev cursor.Event) Delivery {
	m.seq++
	return Delivery{
		ID:    uuid.NewString(),
		Seq:   m.seq,
		Event: ev,
	}
}

// Events returns the subscriber channel. Deliveries preserve per-tick
// event order. The channel is buffered; when a subscriber falls behind,
// new deliveries are dropped (never reordered) and counted.
func (m *Monitor) Events() <-chan Delivery {
	return m.events
}

// Dropped returns the number of deliveries discarded because the
// subscriber channel was full.
func (m *Monitor) Dropped() uint64 {
	return m.drops.Load()
}

// dispatch delivers one event to the registered handler and the
// subscriber channel, in that order. The handler runs synchronously on
// the sampling goroutine; a slow handler delays the next tick rather
// than reordering events.
func (m *Monitor) dispatch(ev cursor.Event) {
	m.handlerMu.RLock()
	handler := m.handler
	m.handlerMu.RUnlock()

	if handler != nil {
		handler(ev)
	}

	select {
	case m.events <- m.newDelivery(ev):
	default:
		m.drops.Add(1)
	}
}
