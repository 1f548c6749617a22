package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/cli/internal/flags"
	"github.com/blogadmin/console/pkg/cli/internal/parse"
	"github.com/blogadmin/console/pkg/table"
	"github.com/blogadmin/console/pkg/views"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		sets        flags.StringSlice
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "create <view>",
		Short: "Create a record",
		Long: `Create a record from --set field=value pairs, or fill the view's form
interactively with -i. Values that parse as JSON are sent as such:

  blogadmin create category --set category_name=Go
  blogadmin create article -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := a.view(ctx, args[0], !interactive)
			if err != nil {
				return err
			}
			if !v.Supports(table.EventCreate) {
				return fmt.Errorf("%s: %w", v.Path(), table.ErrUnsupportedEvent)
			}
			if len(sets) == 0 && !interactive {
				return ErrNoValues
			}

			rec, err := a.edit(v, table.Record{}, sets, interactive)
			if err != nil {
				return err
			}
			data, err := a.dispatch(ctx, v, table.EventCreate, rec)
			if err != nil {
				return err
			}
			return a.printChange("created", v, data)
		},
	}
	cmd.Flags().Var(&sets, "set", "Field value field=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the form interactively")
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var (
		sets        flags.StringSlice
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "update <view> <id>",
		Short: "Update a record",
		Long: `Update a record. The current record is loaded first; --set pairs or the
interactive form (-i) change it before it is sent back:

  blogadmin update tag 3 --set tag_name=golang
  blogadmin update user 7 --set roles=[1,2]`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := a.view(ctx, args[0], !interactive)
			if err != nil {
				return err
			}
			if !v.Supports(table.EventUpdate) {
				return fmt.Errorf("%s: %w", v.Path(), table.ErrUnsupportedEvent)
			}
			if len(sets) == 0 && !interactive {
				return ErrNoValues
			}
			ids, err := parse.IDs(args[1:])
			if err != nil {
				return err
			}

			current, err := a.find(ctx, v, ids[0])
			if err != nil {
				return err
			}
			rec, err := a.edit(v, current, sets, interactive)
			if err != nil {
				return err
			}
			rec["id"] = ids[0]

			data, err := a.dispatch(ctx, v, table.EventUpdate, rec)
			if err != nil {
				return err
			}
			return a.printChange("updated", v, data)
		},
	}
	cmd.Flags().Var(&sets, "set", "Field value field=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the form interactively")
	return cmd
}

// edit applies the form, then --set pairs, over base and checks the
// required fields of the view's form.
func (a *app) edit(v views.View, base table.Record, sets []string, interactive bool) (table.Record, error) {
	fields := v.FormFields(base)
	rec := base
	if interactive {
		var err error
		if rec, err = a.runForm(fields, rec); err != nil {
			return nil, err
		}
	}
	rec, err := assignments(sets, rec)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := table.ValidateForm(fields, payload); err != nil {
		return nil, err
	}
	return rec, nil
}
