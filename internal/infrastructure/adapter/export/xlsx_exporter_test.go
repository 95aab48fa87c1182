package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_WriteTransactions(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	cancelled := created.Add(time.Hour)

	txs := []*entity.Transaction{
		{
			ID: uuid.New(), TenantID: "agency-1", TransactionNumber: 1,
			Type: entity.TypeIncome, Category: entity.CategoryAppointmentPayment,
			Amount: 125050, PaymentMethod: entity.MethodCard, Source: entity.SourceAutomatic,
			LinkedDocument: &entity.LinkedDocument{Kind: entity.DocumentAppointment, ID: "apt-7"},
			BalanceBefore:  0, BalanceAfter: 125050, IsActive: true,
			CustomerRef: "cust-1", CreatedBy: "system", CreatedAt: created,
		},
		{
			ID: uuid.New(), TenantID: "agency-1", TransactionNumber: 2,
			Type: entity.TypeExpense, Category: entity.CategoryExpense,
			Amount: 5000, PaymentMethod: entity.MethodCash, Source: entity.SourceManual,
			Description: "Office supplies", BalanceBefore: 125050, BalanceAfter: 120050,
			IsActive: false, CancelledAt: &cancelled, CancellationReason: "typo",
			CreatedBy: "clerk", CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	exporter := NewXLSXExporter(time.UTC)
	require.NoError(t, exporter.WriteTransactions(&buf, txs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "TRX-000001", rows[1][0])
	assert.Equal(t, "2024-05-01 09:30", rows[1][1])
	assert.Equal(t, "appointment:apt-7", rows[1][11])
	assert.Equal(t, "active", rows[1][9])

	assert.Equal(t, "cancelled", rows[2][9])
	assert.Equal(t, "typo", rows[2][15])

	raw, err := f.GetCellValue(SheetName, "G2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1250.5", raw)
}

func TestXLSXExporter_EmptyExportHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter(nil).WriteTransactions(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestXLSXExporter_FileName(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	name := NewXLSXExporter(loc).FileName("agency-1", time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC))
	assert.Equal(t, "ledger_agency-1_20240502_010000.xlsx", name)
}
