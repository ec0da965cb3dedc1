package models

import "time"

type DecisionModel struct {
	ID             string `gorm:"primaryKey"`
	DisputeID      string `gorm:"index"`
	ArbiterID      string `gorm:"index"`
	InitiatorShare int
	Reasoning      string
	CreatedAt      time.Time
	IsAppealed     bool

	Dispute DisputeModel `gorm:"foreignKey:DisputeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
