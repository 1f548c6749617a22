package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cli/internal/flags"
	"github.com/blogadmin/console/pkg/cli/internal/output"
	"github.com/blogadmin/console/pkg/cli/internal/parse"
	"github.com/blogadmin/console/pkg/table"
)

func newListCmd(a *app) *cobra.Command {
	var (
		page    int
		size    int
		filters flags.StringSlice
		sorts   flags.StringSlice
	)
	cmd := &cobra.Command{
		Use:   "list <view>",
		Short: "List the records of a view",
		Long: `List one page of records of a view, e.g. "article/category" or "tag".

Filters apply to the view's search fields (see "blogadmin describe"):

  blogadmin list user --filter nickname=ada --sort login_at:desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := a.view(ctx, args[0], true)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = a.cfg.PageSize
			}

			values, err := parse.Assignments(filters)
			if err != nil {
				return err
			}
			q, err := table.SearchQuery(v.SearchFields(), values, page, size)
			if err != nil {
				return err
			}
			cols := v.ColumnFields(table.RowActions{})
			for _, s := range sorts {
				sort, err := table.ParseSort(cols, s)
				if err != nil {
					return err
				}
				q.Sorts = append(q.Sorts, sort)
			}

			data, err := a.dispatch(ctx, v, table.EventList, q)
			if err != nil {
				return err
			}
			var result adminclient.PageResult[table.Record]
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("decode %s list: %w", v.Entity(), err)
			}

			return a.printResult(result, func() error {
				dataCols := table.DataColumns(cols)
				w := output.Table(a.stdout)
				fmt.Fprintln(w, a.header(dataCols))
				for _, rec := range result.List {
					row := table.Row(dataCols, rec)
					for i, cell := range row {
						if i > 0 {
							fmt.Fprint(w, "\t")
						}
						fmt.Fprint(w, cell)
					}
					fmt.Fprintln(w)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "\n%d of %d (page %d)\n", len(result.List), result.Total, page)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", 0, "Page size (default from config)")
	cmd.Flags().Var(&filters, "filter", "Search filter field=value (repeatable)")
	cmd.Flags().Var(&sorts, "sort", "Sort by field[:asc|desc] (repeatable)")
	return cmd
}
