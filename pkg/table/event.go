package table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Event is a symbolic CRUD action raised by a table or form.
type Event int

// The closed set of table events.
const (
	EventCreate Event = iota + 1
	EventUpdate
	EventDelete
	EventDeleteByIDs
	EventList
)

// Dispatch errors.
var (
	// ErrUnknownEvent is returned for event names or values outside the
	// closed set. No request is issued.
	ErrUnknownEvent = errors.New("unknown table event")
	// ErrUnsupportedEvent is returned when a view has no handler for a
	// valid event. No request is issued.
	ErrUnsupportedEvent = errors.New("event not supported by view")
)

var eventNames = map[Event]string{
	EventCreate:      "create",
	EventUpdate:      "update",
	EventDelete:      "delete",
	EventDeleteByIDs: "deleteByIds",
	EventList:        "list",
}

// Events returns every event in declaration order.
func Events() []Event {
	return []Event{EventCreate, EventUpdate, EventDelete, EventDeleteByIDs, EventList}
}

// String returns the symbolic name used by renderers.
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Valid reports whether e belongs to the closed set.
func (e Event) Valid() bool {
	_, ok := eventNames[e]
	return ok
}

// ParseEvent maps a symbolic name to its event.
func ParseEvent(name string) (Event, error) {
	for ev, n := range eventNames {
		if n == name {
			return ev, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Event) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Event) UnmarshalText(b []byte) error {
	ev, err := ParseEvent(string(b))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// Handler serves one event. The payload is the raw JSON the renderer
// attached to the event.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Bind adapts a typed call into a Handler by decoding the payload into In.
// An empty payload decodes to the zero In.
func Bind[In, Out any](fn func(context.Context, In) (Out, error)) Handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var in In
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("decode %T payload: %w", in, err)
			}
		}
		out, err := fn(ctx, in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Forward adapts a call that takes the payload as is. Nothing is decoded,
// so unknown keys and zero values reach the call unchanged.
func Forward[Out any](fn func(context.Context, json.RawMessage) (Out, error)) Handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		out, err := fn(ctx, payload)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Handlers maps each event of the closed set to its handler. A nil field
// marks the event as unsupported by the view.
type Handlers struct {
	Create      Handler
	Update      Handler
	Delete      Handler
	DeleteByIDs Handler
	List        Handler
}

// For returns the handler registered for ev.
func (h Handlers) For(ev Event) (Handler, error) {
	var fn Handler
	switch ev {
	case EventCreate:
		fn = h.Create
	case EventUpdate:
		fn = h.Update
	case EventDelete:
		fn = h.Delete
	case EventDeleteByIDs:
		fn = h.DeleteByIDs
	case EventList:
		fn = h.List
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, ev)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, ev)
	}
	return fn, nil
}

// Supports reports whether the view handles ev.
func (h Handlers) Supports(ev Event) bool {
	_, err := h.For(ev)
	return err == nil
}

// Dispatch forwards ev to its handler. Unknown or unsupported events
// return an error without calling anything.
func (h Handlers) Dispatch(ctx context.Context, ev Event, payload json.RawMessage) (any, error) {
	fn, err := h.For(ev)
	if err != nil {
		return nil, err
	}
	return fn(ctx, payload)
}

// DispatchName parses name and dispatches it.
func (h Handlers) DispatchName(ctx context.Context, name string, payload json.RawMessage) (any, error) {
	ev, err := ParseEvent(name)
	if err != nil {
		return nil, err
	}
	return h.Dispatch(ctx, ev, payload)
}
