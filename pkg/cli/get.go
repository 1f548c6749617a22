package cli

import (
	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/cli/internal/parse"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <view> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
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
			rec, err := a.find(ctx, v, ids[0])
			if err != nil {
				return err
			}
			return a.printRecord(v, rec)
		},
	}
}
