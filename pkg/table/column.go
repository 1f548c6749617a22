package table

import "context"

// Record is the JSON-object form of one entity row.
type Record map[string]any

// Align is the horizontal alignment of a column.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Fixed pins a column to one side of the table.
type Fixed string

// Pin sides.
const (
	FixedLeft  Fixed = "left"
	FixedRight Fixed = "right"
)

// ColumnType marks columns that are not bound to a data field.
type ColumnType string

// ColumnSelection is the row checkbox column used for batch operations.
const ColumnSelection ColumnType = "selection"

// CellKind selects a custom cell renderer.
type CellKind string

// Cell renderers.
const (
	CellText    CellKind = ""
	CellDate    CellKind = "date"
	CellTag     CellKind = "tag"
	CellTags    CellKind = "tags"
	CellImage   CellKind = "image"
	CellSwitch  CellKind = "switch"
	CellActions CellKind = "actions"
)

// ActionFunc is invoked with the row a row action was triggered on.
type ActionFunc func(ctx context.Context, row Record) error

// RowActions are the callbacks a view wires into its action columns.
// Nil callbacks leave the corresponding button out.
type RowActions struct {
	Edit   ActionFunc
	Delete ActionFunc
	Toggle ActionFunc
}

// ActionStyle is the button style of a row action.
type ActionStyle string

// Button styles.
const (
	StylePrimary ActionStyle = "primary"
	StyleDanger  ActionStyle = "danger"
)

// Action is one button in a row.
type Action struct {
	Name    string      `json:"name" yaml:"name"`
	Label   string      `json:"label" yaml:"label"`
	Style   ActionStyle `json:"style,omitempty" yaml:"style,omitempty"`
	Icon    string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Confirm string      `json:"confirm,omitempty" yaml:"confirm,omitempty"`
	Run     ActionFunc  `json:"-" yaml:"-"`
}

// Switch describes the two states of a CellSwitch column.
type Switch struct {
	ActiveValue   any    `json:"activeValue" yaml:"activeValue"`
	InactiveValue any    `json:"inactiveValue" yaml:"inactiveValue"`
	ActiveText    string `json:"activeText" yaml:"activeText"`
	InactiveText  string `json:"inactiveText" yaml:"inactiveText"`
}

// Column describes one table column.
type Column struct {
	Key      string     `json:"key" yaml:"key"`
	Type     ColumnType `json:"type,omitempty" yaml:"type,omitempty"`
	Title    string     `json:"title" yaml:"title"`
	DataKey  string     `json:"dataKey,omitempty" yaml:"dataKey,omitempty"`
	Width    int        `json:"width" yaml:"width"`
	Align    Align      `json:"align,omitempty" yaml:"align,omitempty"`
	Sortable bool       `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Fixed    Fixed      `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Cell     CellKind   `json:"cell,omitempty" yaml:"cell,omitempty"`
	// ItemKey names the field shown for each element of a CellTags list.
	ItemKey string   `json:"itemKey,omitempty" yaml:"itemKey,omitempty"`
	Switch  *Switch  `json:"switch,omitempty" yaml:"switch,omitempty"`
	Actions []Action `json:"actions,omitempty" yaml:"actions,omitempty"`
	// OnChange fires when a CellSwitch flips.
	OnChange ActionFunc `json:"-" yaml:"-"`
}

// SelectionColumn is the leading batch-selection column every view shares.
func SelectionColumn(title string) Column {
	return Column{
		Key:   "selection",
		Type:  ColumnSelection,
		Title: title,
		Width: 60,
		Align: AlignCenter,
	}
}

// ActionColumn builds the trailing operations column from the non-nil
// callbacks in actions.
func ActionColumn(title string, width int, actions []Action) Column {
	live := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.Run != nil {
			live = append(live, a)
		}
	}
	return Column{
		Key:     "operation",
		Title:   title,
		Width:   width,
		Align:   AlignCenter,
		Cell:    CellActions,
		Actions: live,
	}
}

// FindAction returns the named action of the column, if present.
func (c Column) FindAction(name string) (Action, bool) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// DataColumns returns the columns bound to record fields, in order.
func DataColumns(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Type == ColumnSelection || c.Cell == CellActions {
			continue
		}
		out = append(out, c)
	}
	return out
}
