package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID                 string  `gorm:"primaryKey;type:varchar(36)"`
	TenantID           string  `gorm:"not null;size:64;uniqueIndex:idx_transactions_tenant_number,priority:1;uniqueIndex:idx_transactions_tenant_idempotency,priority:1;index:idx_transactions_tenant_created,priority:1"`
	TransactionNumber  int64   `gorm:"not null;uniqueIndex:idx_transactions_tenant_number,priority:2"`
	Reference          string  `gorm:"not null;size:32;index"`
	Type               string  `gorm:"column:entry_type;not null;size:20"`
	Category           string  `gorm:"not null;size:40"`
	Amount             int64   `gorm:"not null"` // minor units
	PaymentMethod      string  `gorm:"not null;size:20"`
	Source             string  `gorm:"not null;size:20"`
	Description        string  `gorm:"size:500"`
	Notes              string  `gorm:"type:text"`
	CustomerRef        string  `gorm:"size:64;index"`
	LinkedDocumentKind *string `gorm:"size:20"`
	LinkedDocumentID   *string `gorm:"size:64;index"`
	IdempotencyKey     *string `gorm:"size:100;uniqueIndex:idx_transactions_tenant_idempotency,priority:2"`
	BalanceBefore      int64   `gorm:"not null"`
	BalanceAfter       int64   `gorm:"not null"`
	IsActive           bool    `gorm:"not null;index"`
	CancelledAt        *time.Time
	CancellationReason string    `gorm:"type:text"`
	CancelledBy        string    `gorm:"size:64"`
	CreatedBy          string    `gorm:"not null;size:64"`
	CreatedAt          time.Time `gorm:"not null;index:idx_transactions_tenant_created,priority:2"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
