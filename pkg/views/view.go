package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/logging"
	"github.com/blogadmin/console/pkg/table"
	"github.com/blogadmin/console/pkg/util"
)

// View is one admin page: a table hook bound to an entity client.
type View interface {
	table.Hook
	// Path is the page route, e.g. "article/category".
	Path() string
	// Entity is the backend entity segment, e.g. "category".
	Entity() string
	// Supports reports whether HandleAPI serves ev.
	Supports(ev table.Event) bool
	// HandleAPIByName is HandleAPI keyed by the symbolic event name. A name
	// outside the closed set returns a nil result and ErrUnknownEvent; no
	// request is issued.
	HandleAPIByName(ctx context.Context, name string, payload json.RawMessage) (any, error)
	// Find loads one record by id.
	Find(ctx context.Context, id int64) (any, error)
}

// ErrMissingID is returned for delete events whose payload has no id.
var ErrMissingID = errors.New("payload has no id")

// Option configures views.
type Option func(*settings)

type settings struct {
	locale  language.Tag
	log     *slog.Logger
	offline bool
}

func newSettings(opts []Option) settings {
	s := settings{locale: Supported[0], log: logging.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLocale selects the language of titles and labels.
func WithLocale(locale string) Option {
	return func(s *settings) { s.locale = MatchLocale(locale) }
}

// WithLogger sets the logger views report dispatched events to.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithoutOptions skips loading select options from the backend. Select
// fields are then published with empty option lists. Use it only where no
// form is rendered, such as descriptor export.
func WithoutOptions() Option {
	return func(s *settings) { s.offline = true }
}

// base carries what every view shares.
type base struct {
	path     string
	entity   string
	p        *message.Printer
	log      *slog.Logger
	handlers table.Handlers
}

func newBase(path, entity string, s settings, handlers table.Handlers) base {
	return base{
		path:     path,
		entity:   entity,
		p:        printer(s.locale),
		log:      logging.Component(s.log, "views").With("view", path),
		handlers: handlers,
	}
}

func (b *base) Path() string   { return b.path }
func (b *base) Entity() string { return b.entity }

func (b *base) Supports(ev table.Event) bool {
	return b.handlers.Supports(ev)
}

// HandleAPI forwards ev to the view's client.
func (b *base) HandleAPI(ctx context.Context, ev table.Event, payload json.RawMessage) (any, error) {
	b.log.Debug("event", "event", ev.String(), "payload", util.TruncateBody(string(payload), 0))
	return b.handlers.Dispatch(ctx, ev, payload)
}

// HandleAPIByName is HandleAPI keyed by the symbolic event name. Unknown
// names return nil and table.ErrUnknownEvent without issuing a request.
func (b *base) HandleAPIByName(ctx context.Context, name string, payload json.RawMessage) (any, error) {
	ev, err := table.ParseEvent(name)
	if err != nil {
		return nil, err
	}
	return b.HandleAPI(ctx, ev, payload)
}

func (b *base) t(key string) string {
	return b.p.Sprintf(key)
}

// selection, created and operation columns recur in every view.

func (b *base) selectionColumn() table.Column {
	return table.SelectionColumn(b.t("Batch"))
}

func (b *base) idColumn() table.Column {
	return table.Column{
		Key:      "id",
		Title:    b.t("ID"),
		DataKey:  "id",
		Width:    70,
		Align:    table.AlignCenter,
		Sortable: true,
	}
}

func (b *base) dateColumn(key, title string, width int) table.Column {
	return table.Column{
		Key:      key,
		Title:    b.t(title),
		DataKey:  key,
		Width:    width,
		Align:    table.AlignCenter,
		Sortable: true,
		Cell:     table.CellDate,
	}
}

func (b *base) textColumn(key, title string, width int) table.Column {
	return table.Column{
		Key:     key,
		Title:   b.t(title),
		DataKey: key,
		Width:   width,
		Align:   table.AlignCenter,
	}
}

func (b *base) editDeleteColumn(actions table.RowActions) table.Column {
	return table.ActionColumn(b.t("Operation"), 160, []table.Action{
		{Name: "edit", Label: b.t("Edit"), Style: table.StylePrimary, Run: actions.Edit},
		{Name: "delete", Label: b.t("Delete"), Style: table.StyleDanger, Confirm: b.t("Delete this record?"), Run: actions.Delete},
	})
}

func (b *base) statusSwitch() *table.Switch {
	return &table.Switch{
		ActiveValue:   0,
		InactiveValue: 1,
		ActiveText:    b.t("Normal"),
		InactiveText:  b.t("Disabled"),
	}
}

// crudHandlers maps the five table events onto a resource client. Create,
// update and list payloads are forwarded unchanged; delete events decode
// only the ids they address.
func crudHandlers[T any](r *adminclient.Resource[T]) table.Handlers {
	return table.Handlers{
		Create: table.Forward(r.CreateRaw),
		Update: table.Forward(r.UpdateRaw),
		Delete: table.Bind(func(ctx context.Context, req adminclient.IDRequest) (*adminclient.Response[adminclient.BatchResult], error) {
			if req.ID == 0 {
				return nil, ErrMissingID
			}
			return r.Delete(ctx, req.ID)
		}),
		DeleteByIDs: table.Bind(func(ctx context.Context, ids []int64) (*adminclient.Response[adminclient.BatchResult], error) {
			if len(ids) == 0 {
				return nil, fmt.Errorf("%w: empty id list", ErrMissingID)
			}
			return r.BatchDelete(ctx, ids)
		}),
		List: table.Forward(r.ListRaw),
	}
}

// findOn adapts a resource's Find to View.Find. The record is returned
// undecoded so dates keep the backend's representation.
func findOn[T any](ctx context.Context, r *adminclient.Resource[T], id int64) (any, error) {
	resp, err := r.FindRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// listAll fetches the first page of options with the backend's default
// page size.
func listAll[T any](ctx context.Context, r *adminclient.Resource[T]) ([]T, error) {
	resp, err := r.List(ctx, &adminclient.PageQuery{})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.Name(), err)
	}
	return resp.Data.List, nil
}
