package cli

import (
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/cli/ui"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newReconcileCommand(flags *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare running balances with the sum of active transactions",
		Long: `Recomputes each payment method from the active transactions and compares it
with the stored running balance. Exits non-zero when any tenant drifted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), cmd, flags, app.Options{SkipCache: true})
			if err != nil {
				return err
			}
			defer s.close()

			tenants := []string{s.tenant}
			if all {
				tenants, err = s.app.Query.ListTenants(cmd.Context())
				if err != nil {
					return fmt.Errorf("list tenants: %w", err)
				}
			}

			drifted := 0
			for _, tenant := range tenants {
				rec, err := s.app.Query.Reconcile(cmd.Context(), tenant)
				if err != nil {
					return fmt.Errorf("reconcile %s: %w", tenant, err)
				}
				s.println(reconciliationLine(s.ui, tenant, rec))
				if !rec.Balanced {
					drifted++
					s.println(s.ui.Block(driftRows(rec)))
				}
			}

			if drifted > 0 {
				return fmt.Errorf("%d of %d tenants out of balance", drifted, len(tenants))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reconcile every tenant that owns a balance account")
	return cmd
}

func reconciliationLine(u *ui.UI, tenant string, rec entity.Reconciliation) string {
	if rec.Balanced {
		return u.Success(tenant + " balanced")
	}
	return u.Error(tenant + " out of balance")
}

// driftRows lists ledger and account values of every method that disagrees
func driftRows(rec entity.Reconciliation) []ui.KV {
	var rows []ui.KV
	for _, m := range entity.AllPaymentMethods {
		ledger, account := rec.Ledger.Method(m), rec.Account.Method(m)
		if ledger == account {
			continue
		}
		rows = append(rows, ui.KV{
			Key:   string(m),
			Value: fmt.Sprintf("ledger %s, account %s", entity.FormatCents(ledger), entity.FormatCents(account)),
		})
	}
	if rec.Ledger.Total != rec.Account.Total {
		rows = append(rows, ui.KV{
			Key:   "total",
			Value: fmt.Sprintf("ledger %s, account %s", entity.FormatCents(rec.Ledger.Total), entity.FormatCents(rec.Account.Total)),
		})
	}
	return rows
}
