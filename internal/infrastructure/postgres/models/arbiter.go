package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ArbiterModel struct {
	ID             string          `gorm:"primaryKey"`
	Specialization string          `gorm:"index"`
	DepositAmount  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Rating         float64         `gorm:"index"`
	CasesResolved  int
	TotalEarned    decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsActive       bool            `gorm:"index"`
	RegisteredAt   time.Time
}
