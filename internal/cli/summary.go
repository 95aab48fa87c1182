package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/cli/ui"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print balances with today, month and all-time totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), cmd, flags, app.Options{SkipCache: true})
			if err != nil {
				return err
			}
			defer s.close()

			summary, err := s.app.Query.GetBalanceSummary(cmd.Context(), s.tenant)
			if err != nil {
				return fmt.Errorf("read summary of %s: %w", s.tenant, err)
			}

			s.println(s.ui.Header("Summary of " + s.tenant))
			s.println(s.ui.Block(balanceRows(summary.Current)))
			for _, p := range []struct {
				title  string
				totals entity.PeriodTotals
			}{
				{"Today", summary.Today},
				{"This month", summary.Month},
				{"All time", summary.AllTime},
			} {
				s.println("")
				s.println(s.ui.Muted(p.title))
				s.println(s.ui.Block(periodRows(p.totals)))
			}

			s.println("")
			s.println(reconciliationLine(s.ui, summary.TenantID, summary.Reconciliation))
			s.println(s.ui.Muted("Generated at " + summary.GeneratedAt.Format(time.RFC3339)))
			return nil
		},
	}
}

func periodRows(p entity.PeriodTotals) []ui.KV {
	return []ui.KV{
		{Key: "Income", Value: entity.FormatCents(p.Income)},
		{Key: "Expense", Value: entity.FormatCents(p.Expense)},
		{Key: "Net", Value: entity.FormatCents(p.Net())},
		{Key: "Transactions", Value: strconv.FormatInt(p.Count, 10)},
	}
}
