package model

import (
	"time"
)

// BalanceAccount represents the database model for per-tenant running balances
type BalanceAccount struct {
	ID                    uint64    `gorm:"primaryKey;autoIncrement"`
	TenantID              string    `gorm:"uniqueIndex;not null;size:64"`
	CashBalance           int64     `gorm:"not null"` // Balance in cents
	CardBalance           int64     `gorm:"not null"`
	TransferBalance       int64     `gorm:"not null"`
	TotalBalance          int64     `gorm:"not null"`
	Version               int64     `gorm:"not null"`
	LastTransactionNumber int64     `gorm:"not null"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for BalanceAccount
func (BalanceAccount) TableName() string {
	return "balance_accounts"
}
