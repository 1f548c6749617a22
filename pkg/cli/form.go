package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/blogadmin/console/pkg/cli/internal/parse"
	"github.com/blogadmin/console/pkg/table"
)

// fieldBinding holds the terminal input of one form field.
type fieldBinding struct {
	field   table.FormField
	text    string
	choice  string
	choices []string
	on      bool
}

// bindFields prepares one binding per field, prefilled from rec.
func bindFields(fields []table.FormField, rec table.Record) []*fieldBinding {
	out := make([]*fieldBinding, 0, len(fields))
	for _, f := range fields {
		b := &fieldBinding{field: f}
		current, ok := rec[f.Field]
		if ok && current != nil {
			switch f.Type {
			case table.RenderSelect:
				b.choice = optionKey(f.Options, current)
			case table.RenderMultiSelect:
				if items, ok := current.([]any); ok {
					for _, item := range items {
						if key := optionKey(f.Options, refValue(item)); key != "" {
							b.choices = append(b.choices, key)
						}
					}
				}
			case table.RenderSwitch:
				b.on = truthy(current)
			default:
				b.text = fmt.Sprint(current)
			}
		}
		out = append(out, b)
	}
	return out
}

// optionKey returns the index key of the option whose value equals v.
func optionKey(opts []table.Option, v any) string {
	want := fmt.Sprint(v)
	for i, o := range opts {
		if fmt.Sprint(o.Value) == want {
			return strconv.Itoa(i)
		}
	}
	return ""
}

// refValue reduces a referenced object to its id.
func refValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		if id, ok := m["id"]; ok {
			return id
		}
	}
	return v
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case string:
		return x == "1" || strings.EqualFold(x, "true")
	}
	return false
}

func (b *fieldBinding) huhField() huh.Field {
	f := b.field
	required := func(s string) error {
		if f.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", f.Label)
		}
		return nil
	}

	switch f.Type {
	case table.RenderTextarea:
		return huh.NewText().Title(f.Label).Placeholder(f.Placeholder).Value(&b.text).Validate(required)
	case table.RenderNumber:
		return huh.NewInput().Title(f.Label).Placeholder(f.Placeholder).Value(&b.text).Validate(func(s string) error {
			if err := required(s); err != nil || s == "" {
				return err
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return errors.New("enter a number")
			}
			return nil
		})
	case table.RenderSelect:
		return huh.NewSelect[string]().Title(f.Label).Options(huhOptions(f.Options)...).Value(&b.choice)
	case table.RenderMultiSelect:
		return huh.NewMultiSelect[string]().Title(f.Label).Options(huhOptions(f.Options)...).Value(&b.choices)
	case table.RenderSwitch:
		return huh.NewConfirm().Title(f.Label).Value(&b.on)
	default:
		return huh.NewInput().Title(f.Label).Placeholder(f.Placeholder).Value(&b.text).Validate(required)
	}
}

func huhOptions(opts []table.Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for i, o := range opts {
		out = append(out, huh.NewOption(o.Label, strconv.Itoa(i)))
	}
	return out
}

// value converts the entered input back to a payload value. ok is false
// when the field was left empty.
func (b *fieldBinding) value() (v any, ok bool, err error) {
	f := b.field
	switch f.Type {
	case table.RenderSelect:
		if b.choice == "" {
			return nil, false, nil
		}
		o, err := pick(f.Options, b.choice)
		if err != nil {
			return nil, false, err
		}
		return o.Value, true, nil
	case table.RenderMultiSelect:
		values := make([]any, 0, len(b.choices))
		for _, key := range b.choices {
			o, err := pick(f.Options, key)
			if err != nil {
				return nil, false, err
			}
			values = append(values, o.Value)
		}
		return values, true, nil
	case table.RenderSwitch:
		if b.on {
			return 1, true, nil
		}
		return 0, true, nil
	case table.RenderNumber:
		if b.text == "" {
			return nil, false, nil
		}
		n, err := strconv.ParseFloat(b.text, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %q is not a number", f.Field, b.text)
		}
		return n, true, nil
	default:
		if b.text == "" {
			return nil, false, nil
		}
		return b.text, true, nil
	}
}

func pick(opts []table.Option, key string) (table.Option, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(opts) {
		return table.Option{}, fmt.Errorf("unknown option %q", key)
	}
	return opts[i], nil
}

// collect merges the entered values over base.
func collect(bindings []*fieldBinding, base table.Record) (table.Record, error) {
	out := make(table.Record, len(base)+len(bindings))
	for k, v := range base {
		out[k] = v
	}
	for _, b := range bindings {
		v, ok, err := b.value()
		if err != nil {
			return nil, err
		}
		if ok {
			out[b.field.Field] = v
		}
	}
	return out, nil
}

// runForm asks for every field of a view form on the terminal.
func (a *app) runForm(fields []table.FormField, base table.Record) (table.Record, error) {
	bindings := bindFields(fields, base)
	group := make([]huh.Field, 0, len(bindings))
	for _, b := range bindings {
		group = append(group, b.huhField())
	}
	form := huh.NewForm(huh.NewGroup(group...)).WithInput(a.stdin).WithOutput(a.stderr)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return collect(bindings, base)
}

// assignments applies --set pairs over base.
func assignments(pairs []string, base table.Record) (table.Record, error) {
	values, err := parse.Assignments(pairs)
	if err != nil {
		return nil, err
	}
	out := make(table.Record, len(base)+len(values))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range values {
		out[k] = v
	}
	return out, nil
}
