package cli

import (
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/spf13/cobra"
)

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and open the configured tenant accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), cmd, flags, app.Options{Migrate: true, SkipCache: true})
			if err != nil {
				return err
			}
			defer s.close()

			version, err := s.app.DB.MigrationManager().GetCurrentVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("read schema version: %w", err)
			}

			s.println(s.ui.Success(fmt.Sprintf("Schema is at version %s (%s)", version, s.app.DB.Driver())))
			return nil
		},
	}
}
