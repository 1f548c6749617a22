package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/adminclient"
)

func newEndpointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Show the backend API tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Endpoints().ListDetails(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
			tree := resp.Data.List
			return a.printResult(tree, func() error {
				for _, node := range tree {
					printEndpoint(a.stdout, node, 0)
				}
				return nil
			})
		},
	}
}

func printEndpoint(w io.Writer, e *adminclient.EndpointDetails, depth int) {
	if e == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if e.Path == "" {
		fmt.Fprintf(w, "%s%s\n", indent, e.Name)
	} else {
		fmt.Fprintf(w, "%s%-6s %s  %s\n", indent, e.Method, e.Path, e.Name)
	}
	for _, child := range e.Children {
		printEndpoint(w, child, depth+1)
	}
}
