package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/cli/internal/output"
	"github.com/blogadmin/console/pkg/cliconfig"
)

// ConfigEntry is one line of `blogadmin config`.
type ConfigEntry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Display the effective configuration and where each value came from
(default, global, local, env or flag). An invalid configuration is shown
together with what is wrong with it.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliconfig.LoadAll()
			if err != nil {
				return err
			}
			a.applyFlags(cmd, cfg)
			a.cfg = cfg
			a.jsonOutput = cfg.JSON
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := make([]ConfigEntry, 0, len(cliconfig.Keys))
			for _, key := range cliconfig.Keys {
				entries = append(entries, ConfigEntry{Key: key, Value: a.cfg.Value(key), Source: a.cfg.Sources[key]})
			}
			invalid := a.cfg.Validate()

			err := a.printResult(entries, func() error {
				w := output.Table(a.stdout)
				fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
				}
				return w.Flush()
			})
			if err != nil {
				return err
			}
			if invalid != nil {
				return fmt.Errorf("invalid configuration: %w", invalid)
			}
			return nil
		},
	}
}
