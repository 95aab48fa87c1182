package model

import (
	"time"
)

// BalanceAdjustment represents the compensating movement of a cancellation
type BalanceAdjustment struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	TenantID      string    `gorm:"not null;size:64;index"`
	TransactionID string    `gorm:"not null;type:varchar(36);uniqueIndex"`
	PaymentMethod string    `gorm:"not null;size:20"`
	Delta         int64     `gorm:"not null"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	Reason        string    `gorm:"type:text;not null"`
	CreatedBy     string    `gorm:"not null;size:64"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for BalanceAdjustment
func (BalanceAdjustment) TableName() string {
	return "balance_adjustments"
}
