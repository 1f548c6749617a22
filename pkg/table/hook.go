package table

import (
	"context"
	"encoding/json"
)

// Hook is the configuration contract between one view and a generic
// table/form renderer.
type Hook interface {
	// ColumnFields returns the ordered column descriptors. Row buttons
	// call back into actions.
	ColumnFields(actions RowActions) []Column
	// SearchFields returns the filters of the search bar.
	SearchFields() []FormField
	// FormFields returns the inputs of the create/edit form for model.
	// model may be nil for a blank form.
	FormFields(model Record) []FormField
	// HandleAPI forwards a table event to the matching API call.
	HandleAPI(ctx context.Context, ev Event, payload json.RawMessage) (any, error)
}

// Descriptors is the static configuration of a view, as published to
// renderers that cannot call back into Go.
type Descriptors struct {
	Columns []Column    `json:"columns" yaml:"columns"`
	Search  []FormField `json:"search" yaml:"search"`
	Form    []FormField `json:"form" yaml:"form"`
	Events  []Event     `json:"events" yaml:"events"`
}

func noopAction(context.Context, Record) error { return nil }

// Describe collects the static descriptors of h with every row action
// present. supports filters the advertised events; nil advertises all of
// them.
func Describe(h Hook, supports func(Event) bool) Descriptors {
	all := RowActions{Edit: noopAction, Delete: noopAction, Toggle: noopAction}
	d := Descriptors{
		Columns: h.ColumnFields(all),
		Search:  h.SearchFields(),
		Form:    h.FormFields(nil),
	}
	for _, ev := range Events() {
		if supports == nil || supports(ev) {
			d.Events = append(d.Events, ev)
		}
	}
	return d
}
