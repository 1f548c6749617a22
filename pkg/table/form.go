package table

import "fmt"

// RenderType is the input widget of a form field.
type RenderType string

// The closed set of input widgets.
const (
	RenderInput       RenderType = "input"
	RenderTextarea    RenderType = "textarea"
	RenderNumber      RenderType = "number"
	RenderSelect      RenderType = "select"
	RenderMultiSelect RenderType = "multi-select"
	RenderSwitch      RenderType = "switch"
)

// Valid reports whether r is one of the known widgets.
func (r RenderType) Valid() bool {
	switch r {
	case RenderInput, RenderTextarea, RenderNumber, RenderSelect, RenderMultiSelect, RenderSwitch:
		return true
	}
	return false
}

// Search flags combine conditions.
const (
	FlagAnd = "and"
	FlagOr  = "or"
)

// Search rules compare a field with the entered value.
const (
	RuleLike  = "like"
	RuleEqual = "="
	RuleIn    = "in"
)

// SearchRule tells the list endpoint how a search field filters.
type SearchRule struct {
	Flag string `json:"flag" yaml:"flag"`
	Rule string `json:"rule" yaml:"rule"`
}

// Option is one choice of a select widget.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// FormField describes one input of a search bar or an edit form.
type FormField struct {
	Type        RenderType  `json:"type" yaml:"type"`
	Field       string      `json:"field" yaml:"field"`
	Label       string      `json:"label" yaml:"label"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []Option    `json:"options,omitempty" yaml:"options,omitempty"`
	SearchRules *SearchRule `json:"searchRules,omitempty" yaml:"searchRules,omitempty"`
}

// Validate checks the descriptor itself, not user input.
func (f FormField) Validate() error {
	if f.Field == "" {
		return fmt.Errorf("form field %q: missing field name", f.Label)
	}
	if !f.Type.Valid() {
		return fmt.Errorf("form field %q: unknown render type %q", f.Field, f.Type)
	}
	if (f.Type == RenderSelect || f.Type == RenderMultiSelect) && f.Options == nil {
		return fmt.Errorf("form field %q: %s without options", f.Field, f.Type)
	}
	return nil
}

// LikeSearch is the usual free-text search field.
func LikeSearch(field, label string) FormField {
	return FormField{
		Type:  RenderInput,
		Field: field,
		Label: label,
		SearchRules: &SearchRule{
			Flag: FlagAnd,
			Rule: RuleLike,
		},
	}
}
