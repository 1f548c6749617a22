package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/cli/internal/output"
	"github.com/blogadmin/console/pkg/table"
)

// ViewDescriptors is the exported configuration of one view.
type ViewDescriptors struct {
	Path              string `json:"path" yaml:"path"`
	Entity            string `json:"entity" yaml:"entity"`
	table.Descriptors `yaml:",inline"`
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		format  string
		offline bool
	)
	cmd := &cobra.Command{
		Use:   "describe [pattern]",
		Short: "Export the table descriptors of views",
		Long: `Export the column, search and form descriptors of every view whose path
matches the glob pattern (default "**"), e.g. "article/*" or "**/user".

Select options fed by the backend (categories, tags, roles) are loaded
unless --offline is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			reg, err := a.registry(cmd.Context(), offline)
			if err != nil {
				return err
			}
			matched, err := reg.Match(pattern)
			if err != nil {
				return err
			}
			if len(matched) == 0 {
				return fmt.Errorf("no view matches %q", pattern)
			}

			out := make([]ViewDescriptors, 0, len(matched))
			for _, v := range matched {
				out = append(out, ViewDescriptors{
					Path:        v.Path(),
					Entity:      v.Entity(),
					Descriptors: table.Describe(v, v.Supports),
				})
			}

			switch format {
			case "json":
				return output.JSON(a.stdout, out)
			case "yaml":
				return output.YAML(a.stdout, out)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "Output format (json, yaml)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Do not load select options from the backend")
	return cmd
}
