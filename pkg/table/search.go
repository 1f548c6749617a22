package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blogadmin/console/pkg/adminclient"
)

// ErrUnknownField is returned when a filter or sort names a field the view
// does not declare.
var ErrUnknownField = errors.New("unknown field")

// SearchQuery builds a list query from the values entered into a view's
// search bar. Empty values are skipped; values for fields that are not
// search fields are rejected.
func SearchQuery(fields []FormField, values map[string]any, page, size int) (*adminclient.PageQuery, error) {
	byName := make(map[string]FormField, len(fields))
	for _, f := range fields {
		byName[f.Field] = f
	}

	q := &adminclient.PageQuery{Page: page, PageSize: size}
	// Conditions follow the declaration order of the search fields.
	for _, f := range fields {
		v, ok := values[f.Field]
		if !ok || isEmpty(v) {
			continue
		}
		flag, rule := FlagAnd, RuleEqual
		if f.SearchRules != nil {
			flag, rule = f.SearchRules.Flag, f.SearchRules.Rule
		}
		q.Conditions = append(q.Conditions, &adminclient.PageCondition{
			Field:    f.Field,
			Value:    v,
			Logic:    flag,
			Operator: rule,
		})
	}
	for name := range values {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q is not searchable", ErrUnknownField, name)
		}
	}
	return q, nil
}

// ParseSort turns "field" or "field:asc|desc" into a sort on a sortable
// column.
func ParseSort(cols []Column, spec string) (*adminclient.PageSort, error) {
	field, order, _ := strings.Cut(spec, ":")
	if order == "" {
		order = "asc"
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return nil, fmt.Errorf("invalid sort order %q (want asc or desc)", order)
	}
	for _, c := range cols {
		key := c.DataKey
		if key == "" {
			key = c.Key
		}
		if key == field {
			if !c.Sortable {
				return nil, fmt.Errorf("column %q is not sortable", field)
			}
			return &adminclient.PageSort{Field: field, Order: order}, nil
		}
	}
	return nil, fmt.Errorf("%w: no column %q", ErrUnknownField, field)
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	}
	return false
}
