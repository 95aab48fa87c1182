package export

import (
	"fmt"
	"io"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the exported transactions
const SheetName = "Transactions"

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// builtin number format "#,##0.00"
const amountNumFmt = 4

var headers = []string{
	"Reference", "Date", "Type", "Category", "Payment method", "Source",
	"Amount", "Balance before", "Balance after", "Status", "Customer",
	"Linked document", "Description", "Created by", "Cancelled at", "Cancellation reason",
}

// XLSXExporter renders ledger entries as an xlsx workbook
type XLSXExporter struct {
	location *time.Location
}

// NewXLSXExporter creates an exporter that prints dates in loc
func NewXLSXExporter(loc *time.Location) *XLSXExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &XLSXExporter{location: loc}
}

// FileName returns the download name of an export generated at now
func (e *XLSXExporter) FileName(tenantID string, now time.Time) string {
	return fmt.Sprintf("ledger_%s_%s.xlsx", tenantID, now.In(e.location).Format("20060102_150405"))
}

// WriteTransactions writes one header row and one row per transaction to w
func (e *XLSXExporter) WriteTransactions(w io.Writer, txs []*entity.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, tx := range txs {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, e.rowValues(tx)); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if len(txs) > 0 {
		last := len(txs) + 1
		if err := f.SetCellStyle(SheetName, "G2", fmt.Sprintf("I%d", last), amountStyle); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(SheetName, "A", "B", 18)
	_ = f.SetColWidth(SheetName, "M", "M", 40)

	return f.Write(w)
}

func (e *XLSXExporter) rowValues(tx *entity.Transaction) *[]interface{} {
	status := "active"
	cancelledAt := ""
	if !tx.IsActive {
		status = "cancelled"
		if tx.CancelledAt != nil {
			cancelledAt = tx.CancelledAt.In(e.location).Format("2006-01-02 15:04")
		}
	}
	linked := ""
	if tx.LinkedDocument != nil {
		linked = tx.LinkedDocument.String()
	}

	return &[]interface{}{
		tx.Reference(),
		tx.CreatedAt.In(e.location).Format("2006-01-02 15:04"),
		string(tx.Type),
		string(tx.Category),
		string(tx.PaymentMethod),
		string(tx.Source),
		entity.CentsToDecimal(tx.Amount).InexactFloat64(),
		entity.CentsToDecimal(tx.BalanceBefore).InexactFloat64(),
		entity.CentsToDecimal(tx.BalanceAfter).InexactFloat64(),
		status,
		tx.CustomerRef,
		linked,
		tx.Description,
		tx.CreatedBy,
		cancelledAt,
		tx.CancellationReason,
	}
}
