// Package cli implements ledgerctl, the operator tool for migrating and inspecting the ledger.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/cli/ui"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	env       string
	configDir string
	tenant    string
	verbose   bool
	noColor   bool
}

// NewRootCommand builds the ledgerctl command tree
func NewRootCommand(version string) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the agency ledger database",
		Long: `Operator tool for the agency ledger.

Runs schema migrations and prints balances, summaries and
reconciliation reports straight from the database.

Example usage:
  ledgerctl migrate --env production
  ledgerctl balance --tenant agency-1
  ledgerctl reconcile --all`,
		Version: version,
	}

	root.PersistentFlags().StringVar(&flags.env, "env", "", "configuration environment (defaults to LEDGER_ENV or development)")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "directory holding <env>.yaml")
	root.PersistentFlags().StringVarP(&flags.tenant, "tenant", "t", "", "tenant to inspect (defaults to ledger.defaultTenant)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colors")

	// Silence usage on error - we'll print our own messages
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newMigrateCommand(flags),
		newBalanceCommand(flags),
		newSummaryCommand(flags),
		newReconcileCommand(flags),
	)
	return root
}

// Execute runs ledgerctl and returns the process exit code
func Execute(version string) int {
	root := NewRootCommand(version)
	if err := root.Execute(); err != nil {
		out := ui.New(os.Stderr)
		fmt.Fprintln(os.Stderr, out.Error(err.Error()))
		return 1
	}
	return 0
}

// session is an opened ledger plus the writer-bound UI of one command run
type session struct {
	app    *app.App
	ui     *ui.UI
	out    io.Writer
	tenant string
}

func openSession(ctx context.Context, cmd *cobra.Command, flags *globalFlags, opts app.Options) (*session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(flags.verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	ledger, err := app.New(ctx, cfg, log, timeProvider.NewRealTimeProvider(), opts)
	if err != nil {
		_ = log.Flush()
		return nil, err
	}

	out := cmd.OutOrStdout()
	u := ui.New(out)
	if flags.noColor {
		u.NoColor = true
	}

	tenant := flags.tenant
	if tenant == "" {
		tenant = cfg.Ledger.DefaultTenant
	}

	return &session{app: ledger, ui: u, out: out, tenant: tenant}, nil
}

func (s *session) close() {
	s.app.Close()
	_ = s.app.Logger.Flush()
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.env == "" && flags.configDir == "" {
		return config.LoadConfig()
	}

	env := flags.env
	if env == "" {
		env = config.Development
		if fromEnv := os.Getenv(config.EnvPrefix + "_ENV"); fromEnv != "" {
			env = fromEnv
		}
	}
	paths := config.ConfigPaths
	if flags.configDir != "" {
		paths = []string{flags.configDir}
	}
	return config.LoadConfigFrom(env, paths)
}

// newLogger keeps ledgerctl quiet on stderr unless --verbose is set
func newLogger(verbose bool) (coreport.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.NewZapLogger(logger.Options{
		Level:  level,
		Format: "console",
		Output: "stderr",
	})
}
