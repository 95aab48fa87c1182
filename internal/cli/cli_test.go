package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const cliConfig = `database:
  driver: "sqlite"
  database: "%s"
  maxOpenConns: 1
  maxIdleConns: 1
  retryAttempts: 1
  logLevel: "silent"
  autoMigrate: false

ledger:
  defaultTenant: "agency-1"
  tenants: ["agency-2"]
  timezone: "UTC"
`

// writeConfig points a cli.yaml at a fresh sqlite file and returns the flags selecting it
func writeConfig(t *testing.T) (dir, dbPath string) {
	t.Helper()
	dir = t.TempDir()
	dbPath = filepath.Join(dir, "ledger.db")
	content := fmt.Sprintf(cliConfig, dbPath)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli.yaml"), []byte(content), 0o600))
	return dir, dbPath
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env", "cli", "--config-dir", dir, "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateOpensConfiguredTenants(t *testing.T) {
	dir, _ := writeConfig(t)

	out, err := run(t, dir, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Schema is at version")
	assert.Contains(t, out, "sqlite")

	out, err = run(t, dir, "reconcile", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] agency-1 balanced")
	assert.Contains(t, out, "[OK] agency-2 balanced")
}

func TestBalanceAndSummaryReflectPostedEntries(t *testing.T) {
	dir, _ := writeConfig(t)
	_, err := run(t, dir, "migrate")
	require.NoError(t, err)

	cfg, err := config.LoadConfigFrom("cli", []string{dir})
	require.NoError(t, err)
	ledger, err := app.New(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider(), app.Options{SkipCache: true})
	require.NoError(t, err)
	_, err = ledger.Posting.Post(context.Background(), entity.TransactionDraft{
		TenantID:      "agency-1",
		Type:          "income",
		Category:      "deposit",
		Amount:        "150.00",
		PaymentMethod: "card",
		Source:        "manual",
	})
	require.NoError(t, err)
	ledger.Close()

	out, err := run(t, dir, "balance")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Balances of agency-1 ===")
	assert.Contains(t, out, "Card:")
	assert.Contains(t, out, "150.00")

	out, err = run(t, dir, "summary", "--tenant", "agency-1")
	require.NoError(t, err)
	assert.Contains(t, out, "All time")
	assert.Contains(t, out, "Transactions:")
	assert.Contains(t, out, "[OK] agency-1 balanced")

	out, err = run(t, dir, "balance", "--tenant", "agency-2")
	require.NoError(t, err)
	assert.Contains(t, out, "0.00")
	assert.NotContains(t, out, "150.00")
}

func TestReconcileReportsDrift(t *testing.T) {
	dir, dbPath := writeConfig(t)
	_, err := run(t, dir, "migrate")
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		"UPDATE balance_accounts SET transfer_balance = 500, total_balance = 500 WHERE tenant_id = ?", "agency-2",
	).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	out, err := run(t, dir, "reconcile", "--all")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 tenants out of balance", err.Error())
	assert.Contains(t, out, "[OK] agency-1 balanced")
	assert.Contains(t, out, "[FAILED] agency-2 out of balance")
	assert.Contains(t, out, "ledger 0.00, account 5.00")
	assert.NotContains(t, out, "cash:")
}

func TestMissingConfigFileFails(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "balance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read cli config")
}
