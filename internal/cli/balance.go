package cli

import (
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/cli/ui"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newBalanceCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the running balances of a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), cmd, flags, app.Options{SkipCache: true})
			if err != nil {
				return err
			}
			defer s.close()

			balances, err := s.app.Query.GetCurrentBalances(cmd.Context(), s.tenant)
			if err != nil {
				return fmt.Errorf("read balances of %s: %w", s.tenant, err)
			}

			s.println(s.ui.Header("Balances of " + s.tenant))
			s.println(s.ui.Block(balanceRows(balances)))
			return nil
		},
	}
}

func balanceRows(b entity.Balances) []ui.KV {
	return []ui.KV{
		{Key: "Cash", Value: entity.FormatCents(b.Cash)},
		{Key: "Card", Value: entity.FormatCents(b.Card)},
		{Key: "Transfer", Value: entity.FormatCents(b.Transfer)},
		{Key: "Total", Value: entity.FormatCents(b.Total)},
	}
}
