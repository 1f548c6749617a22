package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cli/internal/parse"
	"github.com/blogadmin/console/pkg/table"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <view> <id>...",
		Short: "Delete one or more records",
		Long: `Delete records by id. A single id deletes one record; several ids are
removed in one batch request.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := a.view(ctx, args[0], true)
			if err != nil {
				return err
			}
			ids, err := parse.IDs(args[1:])
			if err != nil {
				return err
			}

			ev := table.EventDelete
			var payload any = adminclient.IDRequest{ID: ids[0]}
			if len(ids) > 1 {
				ev, payload = table.EventDeleteByIDs, ids
			}
			if !v.Supports(ev) {
				return table.ErrUnsupportedEvent
			}

			if !yes {
				title := "Delete this record?"
				if col, ok := findActionColumn(v.ColumnFields(table.RowActions{Delete: noopRowAction})); ok {
					if act, ok := col.FindAction("delete"); ok && act.Confirm != "" {
						title = act.Confirm
					}
				}
				confirmed := false
				confirm := huh.NewConfirm().Title(title).Value(&confirmed)
				if err := huh.NewForm(huh.NewGroup(confirm)).WithInput(a.stdin).WithOutput(a.stderr).Run(); err != nil {
					return err
				}
				if !confirmed {
					return ErrNotConfirmed
				}
			}

			data, err := a.dispatch(ctx, v, ev, payload)
			if err != nil {
				return err
			}
			return a.printChange("deleted", v, data)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
