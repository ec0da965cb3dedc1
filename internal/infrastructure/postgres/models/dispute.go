package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisputeModel struct {
	ID                    string  `gorm:"primaryKey"`
	InitiatorID           string  `gorm:"index"`
	RespondentID          *string `gorm:"index"`
	RespondentUsername    string
	Amount                decimal.Decimal `gorm:"type:decimal(12,2)"`
	Description           string
	Category              string
	Deposit               decimal.Decimal `gorm:"type:decimal(12,2)"`
	ArbiterFee            decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status                string          `gorm:"index"`
	ArbiterID             *string         `gorm:"index"`
	InitiatorDepositPaid  bool
	RespondentDepositPaid bool
	InitiatorShare        *int
	ResolutionText        *string
	AppealCount           int
	Deadline              *time.Time `gorm:"index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
