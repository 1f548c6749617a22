package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cli/internal/output"
	"github.com/blogadmin/console/pkg/table"
	"github.com/blogadmin/console/pkg/views"
)

// dispatch sends one table event to v and unwraps the envelope. A
// non-success envelope code is returned as an error.
func (a *app) dispatch(ctx context.Context, v views.View, ev table.Event, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", ev, err)
	}
	resp, err := v.HandleAPI(ctx, ev, body)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// unwrap re-reads a typed envelope as raw data.
func unwrap(resp any) (json.RawMessage, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var env adminclient.Response[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// find loads one record of v.
func (a *app) find(ctx context.Context, v views.View, id int64) (table.Record, error) {
	resp, err := v.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := unwrap(resp)
	if err != nil {
		return nil, err
	}
	var rec table.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", v.Entity(), id, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %d: %w", v.Entity(), id, adminclient.ErrNotFound)
	}
	return rec, nil
}

// header renders column titles as table headings.
func (a *app) header(cols []table.Column) string {
	caser := cases.Title(views.MatchLocale(a.cfg.Locale), cases.NoLower)
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = caser.String(c.Title)
	}
	return strings.Join(titles, "\t")
}

// printRecord writes one record as field/value lines.
func (a *app) printRecord(v views.View, rec table.Record) error {
	return a.printResult(rec, func() error {
		w := output.Table(a.stdout)
		for _, c := range table.DataColumns(v.ColumnFields(table.RowActions{})) {
			fmt.Fprintf(w, "%s:\t%s\n", c.Title, table.FormatCell(c, rec))
		}
		return w.Flush()
	})
}

// printChange reports a mutation result.
func (a *app) printChange(verb string, v views.View, data json.RawMessage) error {
	return a.printResult(data, func() error {
		var res adminclient.BatchResult
		if err := json.Unmarshal(data, &res); err == nil && res.SuccessCount > 0 {
			fmt.Fprintf(a.stdout, "%s %d %s record(s)\n", verb, res.SuccessCount, v.Entity())
			return nil
		}
		var rec table.Record
		if err := json.Unmarshal(data, &rec); err == nil && rec != nil {
			if id, ok := rec.ID(); ok {
				fmt.Fprintf(a.stdout, "%s %s %d\n", verb, v.Entity(), id)
				return nil
			}
		}
		fmt.Fprintf(a.stdout, "%s %s\n", verb, v.Entity())
		return nil
	})
}

func noopRowAction(context.Context, table.Record) error { return nil }

// findActionColumn returns the operations column of cols.
func findActionColumn(cols []table.Column) (table.Column, bool) {
	for _, c := range cols {
		if c.Cell == table.CellActions {
			return c, true
		}
	}
	return table.Column{}, false
}
