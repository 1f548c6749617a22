package table

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	for _, ev := range Events() {
		t.Run(ev.String(), func(t *testing.T) {
			got, err := ParseEvent(ev.String())
			require.NoError(t, err)
			assert.Equal(t, ev, got)
		})
	}

	_, err := ParseEvent("noop")
	assert.ErrorIs(t, err, ErrUnknownEvent)

	// Names are case sensitive, as renderers send them verbatim.
	_, err = ParseEvent("deleteByIDs")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestEvent_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal([]Event{EventDeleteByIDs, EventList})
	require.NoError(t, err)
	assert.JSONEq(t, `["deleteByIds","list"]`, string(b))

	var evs []Event
	require.NoError(t, json.Unmarshal(b, &evs))
	assert.Equal(t, []Event{EventDeleteByIDs, EventList}, evs)

	_, err = Event(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestHandlers_DispatchIsTotal(t *testing.T) {
	var called []Event
	record := func(ev Event) Handler {
		return func(ctx context.Context, payload json.RawMessage) (any, error) {
			called = append(called, ev)
			return ev.String(), nil
		}
	}
	h := Handlers{
		Create:      record(EventCreate),
		Update:      record(EventUpdate),
		Delete:      record(EventDelete),
		DeleteByIDs: record(EventDeleteByIDs),
		List:        record(EventList),
	}

	for _, ev := range Events() {
		got, err := h.Dispatch(context.Background(), ev, nil)
		require.NoError(t, err)
		assert.Equal(t, ev.String(), got)
	}
	assert.Equal(t, Events(), called)

	called = nil
	got, err := h.Dispatch(context.Background(), Event(0), nil)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.Nil(t, got)

	got, err = h.DispatchName(context.Background(), "noop", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.Nil(t, got)
	assert.Empty(t, called, "no handler may run for unknown events")
}

func TestHandlers_Unsupported(t *testing.T) {
	h := Handlers{List: func(context.Context, json.RawMessage) (any, error) { return "ok", nil }}

	assert.True(t, h.Supports(EventList))
	assert.False(t, h.Supports(EventCreate))

	_, err := h.Dispatch(context.Background(), EventDelete, json.RawMessage(`{"id":1}`))
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestBind(t *testing.T) {
	type page struct {
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}
	h := Bind(func(ctx context.Context, p page) (int, error) {
		return p.Page * p.PageSize, nil
	})

	got, err := h(context.Background(), json.RawMessage(`{"page":2,"page_size":10}`))
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	got, err = h(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = h(context.Background(), json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}
