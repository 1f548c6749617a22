package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cli/internal/parse"
	"github.com/blogadmin/console/pkg/table"
	"github.com/blogadmin/console/pkg/views"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserStatusCmd(a))
	return cmd
}

func newUserStatusCmd(a *app) *cobra.Command {
	var enable, disable bool
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Enable or disable a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := parse.IDs(args)
			if err != nil {
				return err
			}
			v, err := a.view(ctx, "system/user", true)
			if err != nil {
				return err
			}
			users, ok := v.(*views.UserView)
			if !ok {
				return fmt.Errorf("system/user is a %T", v)
			}

			status := adminclient.UserStatusNormal
			if disable {
				status = adminclient.UserStatusDisabled
			}
			row := table.Record{"id": ids[0], "status": status}

			// the status column's switch callback performs the update
			var label string
			for _, c := range users.ColumnFields(table.RowActions{Toggle: users.SetStatus}) {
				if c.Key != "status" || c.OnChange == nil {
					continue
				}
				if err := c.OnChange(ctx, row); err != nil {
					return err
				}
				label = table.FormatCell(c, row)
			}
			return a.printResult(adminclient.UpdateUserStatusRequest{UserID: ids[0], Status: status}, func() error {
				fmt.Fprintf(a.stdout, "user %d: %s\n", ids[0], label)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&enable, "enable", false, "Allow the user to sign in")
	cmd.Flags().BoolVar(&disable, "disable", false, "Block the user")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")
	cmd.MarkFlagsOneRequired("enable", "disable")
	return cmd
}
