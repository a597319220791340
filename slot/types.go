package slot

import "go.uber.org/zap"

// EventType identifies a slot lifecycle event.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDestroyed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Event describes a slot lifecycle transition.
type Event struct {
	Handle   Handle
	RefCount uint32
	Type     EventType
}

// Observer receives notifications about slot lifecycle events.
//
// Observers are invoked synchronously from within the pool operation that
// caused the event, on the pool's single thread.
type Observer interface {
	OnSlotEvent(Event)
}

// NewLogObserver returns an Observer that writes lifecycle events to the
// given zap logger at debug level.
func NewLogObserver(logger *zap.Logger) Observer {
	return &logObserver{logger: logger}
}

type logObserver struct {
	logger *zap.Logger
}

func (o *logObserver) OnSlotEvent(e Event) {
	o.logger.Debug("slot event",
		zap.String("event", e.Type.String()),
		zap.Uint32("index", e.Handle.Index),
		zap.Uint32("generation", e.Handle.Generation),
		zap.Uint32("refcount", e.RefCount),
	)
}
