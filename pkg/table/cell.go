package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ohler55/ojg/jp"
)

// DateLayout is how CellDate columns print timestamps.
const DateLayout = "2006-01-02 15:04:05"

var exprCache sync.Map // path -> jp.Expr

func compilePath(path string) (jp.Expr, error) {
	if cached, ok := exprCache.Load(path); ok {
		return cached.(jp.Expr), nil
	}
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid data key path %q: %w", path, err)
	}
	exprCache.Store(path, expr)
	return expr, nil
}

// columnPath is the JSONPath a column reads from a row. Tag lists project
// each element onto ItemKey.
func columnPath(c Column) string {
	key := c.DataKey
	if key == "" {
		key = c.Key
	}
	if c.Cell == CellTags {
		if c.ItemKey != "" {
			return "$." + key + "[*]." + c.ItemKey
		}
		return "$." + key + "[*]"
	}
	return "$." + key
}

// CellValues returns every value the column selects from row.
func CellValues(c Column, row Record) ([]any, error) {
	expr, err := compilePath(columnPath(c))
	if err != nil {
		return nil, err
	}
	return expr.Get(map[string]any(row)), nil
}

// CellValue returns the first value the column selects from row, or nil.
func CellValue(c Column, row Record) any {
	values, err := CellValues(c, row)
	if err != nil || len(values) == 0 {
		return nil
	}
	return values[0]
}

// FormatCell renders one cell as plain text according to the column's
// renderer kind.
func FormatCell(c Column, row Record) string {
	switch c.Cell {
	case CellActions:
		labels := make([]string, 0, len(c.Actions))
		for _, a := range c.Actions {
			labels = append(labels, a.Label)
		}
		return strings.Join(labels, " | ")
	case CellTags:
		values, _ := CellValues(c, row)
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if s := scalarText(v); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case CellDate:
		return formatDate(CellValue(c, row))
	case CellSwitch:
		v := CellValue(c, row)
		if c.Switch == nil || v == nil {
			return scalarText(v)
		}
		if scalarText(v) == scalarText(c.Switch.ActiveValue) {
			return c.Switch.ActiveText
		}
		return c.Switch.InactiveText
	default:
		return scalarText(CellValue(c, row))
	}
}

// Row renders the data columns of one record.
func Row(cols []Column, row Record) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = FormatCell(c, row)
	}
	return out
}

func scalarText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case []any, map[string]any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

// formatDate accepts RFC 3339 strings (printed in their own offset) and
// unix seconds (printed in UTC).
func formatDate(v any) string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return ""
		}
		t, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return x
		}
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	case float64:
		if x <= 0 {
			return ""
		}
		return time.Unix(int64(x), 0).UTC().Format(DateLayout)
	case int64:
		if x <= 0 {
			return ""
		}
		return time.Unix(x, 0).UTC().Format(DateLayout)
	default:
		return scalarText(v)
	}
}

// ToRecord flattens a typed entity into its JSON-object form.
func ToRecord(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return r, nil
}

// ToRecords flattens a slice of typed entities.
func ToRecords(v any) ([]Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	var rs []Record
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return rs, nil
}

// ID returns the numeric id field of a record.
func (r Record) ID() (int64, bool) {
	switch v := r["id"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}
	return 0, false
}
