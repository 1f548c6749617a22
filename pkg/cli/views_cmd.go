package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/cli/internal/output"
	"github.com/blogadmin/console/pkg/table"
)

// ViewSummary is one line of `blogadmin views`.
type ViewSummary struct {
	Path   string        `json:"path"`
	Entity string        `json:"entity"`
	Events []table.Event `json:"events"`
}

func newViewsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the console views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd.Context(), true)
			if err != nil {
				return err
			}

			var out []ViewSummary
			for _, v := range reg.All() {
				s := ViewSummary{Path: v.Path(), Entity: v.Entity()}
				for _, ev := range table.Events() {
					if v.Supports(ev) {
						s.Events = append(s.Events, ev)
					}
				}
				out = append(out, s)
			}

			return a.printResult(out, func() error {
				w := output.Table(a.stdout)
				fmt.Fprintln(w, "PATH\tENTITY\tEVENTS")
				for _, s := range out {
					names := make([]string, 0, len(s.Events))
					for _, ev := range s.Events {
						names = append(names, ev.String())
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", s.Path, s.Entity, strings.Join(names, ","))
				}
				return w.Flush()
			})
		},
	}
}
