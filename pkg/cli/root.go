package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cliconfig"
	"github.com/blogadmin/console/pkg/logging"
	"github.com/blogadmin/console/pkg/views"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app carries what one invocation resolves before its command runs.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// persistent flag values; applied over the loaded config when changed
	baseURL    string
	token      string
	timeout    int
	locale     string
	logLevel   string
	jsonOutput bool

	cfg    *cliconfig.CLIConfig
	log    *slog.Logger
	client *adminclient.Client
}

// NewRootCmd builds the blogadmin command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blogadmin",
		Short: "blogadmin manages a blog from the terminal",
		Long: `blogadmin is the admin console of the blog CMS. It lists, creates, edits
and deletes categories, tags, articles, roles and users through the blog's
admin API, and exports the table descriptors each console page is built from.

Configuration can be provided via flags, BLOGADMIN_* environment variables,
.blogadminrc.yaml in the current directory, or the global config file
$XDG_CONFIG_HOME/blogadmin/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Main prints errors
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.baseURL, "base-url", cliconfig.DefaultBaseURL, "Admin API base URL")
	pf.StringVar(&a.token, "token", "", "Bearer token sent with every request")
	pf.IntVar(&a.timeout, "timeout", cliconfig.DefaultTimeout, "Request timeout in seconds")
	pf.StringVar(&a.locale, "locale", cliconfig.DefaultLocale, "Language of titles and labels (en, zh)")
	pf.StringVar(&a.logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.BoolVar(&a.jsonOutput, "json", false, "Output command results in JSON format")

	rootCmd.AddCommand(
		newViewsCmd(a),
		newDescribeCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newUserCmd(a),
		newEndpointsCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup resolves configuration, logging and the API client.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll()
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.jsonOutput = cfg.JSON

	a.log = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: a.stderr,
	})
	opts := []adminclient.Option{
		adminclient.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
		adminclient.WithLogger(a.log),
	}
	if cfg.Token != "" {
		opts = append(opts, adminclient.WithToken(cfg.Token))
	}
	a.client = adminclient.New(cfg.BaseURL, opts...)
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *cliconfig.CLIConfig) {
	flags := cmd.Flags()
	set := func(key string) bool {
		if !flags.Changed(flagNames[key]) {
			return false
		}
		cfg.Sources[key] = cliconfig.SourceFlag
		return true
	}
	if set("baseUrl") {
		cfg.BaseURL = a.baseURL
	}
	if set("token") {
		cfg.Token = a.token
	}
	if set("timeout") {
		cfg.Timeout = a.timeout
	}
	if set("locale") {
		cfg.Locale = a.locale
	}
	if set("logLevel") {
		cfg.LogLevel = a.logLevel
	}
	if set("json") {
		cfg.JSON = a.jsonOutput
	}
}

// flagNames maps config keys to their persistent flags.
var flagNames = map[string]string{
	"baseUrl":  "base-url",
	"token":    "token",
	"timeout":  "timeout",
	"locale":   "locale",
	"logLevel": "log-level",
	"json":     "json",
}

// registry builds the console views. Offline registries skip loading select
// options and issue no request.
func (a *app) registry(ctx context.Context, offline bool) (*views.Registry, error) {
	opts := []views.Option{
		views.WithLocale(a.cfg.Locale),
		views.WithLogger(a.log),
	}
	if offline {
		opts = append(opts, views.WithoutOptions())
	}
	return views.NewRegistry(ctx, a.client, opts...)
}

// view resolves one view by path or entity name.
func (a *app) view(ctx context.Context, name string, offline bool) (views.View, error) {
	reg, err := a.registry(ctx, offline)
	if err != nil {
		return nil, err
	}
	return reg.Get(name)
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}

// Execute runs the CLI and exits. It is called by main.main().
func Execute() {
	os.Exit(Main())
}
