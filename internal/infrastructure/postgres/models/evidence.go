package models

import "time"

type EvidenceModel struct {
	ID          string `gorm:"primaryKey"`
	DisputeID   string `gorm:"index"`
	UploaderID  string
	Kind        string
	Description string
	FileHash    string
	FileURL     string
	UploadedAt  time.Time

	Dispute DisputeModel `gorm:"foreignKey:DisputeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
