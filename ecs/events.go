package ecs

// EventType names a frame event.
type EventType string

const (
	EventHazardContact EventType = "hazard_contact"
	EventFellOut       EventType = "fell_out"
	EventWon           EventType = "won"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue, drained once per frame by its owner.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Has reports whether an event of typ is queued.
func (q *EventQueue) Has(typ EventType) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			return true
		}
	}
	return false
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
