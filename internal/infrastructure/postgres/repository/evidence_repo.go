package repository

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultEvidenceRepository struct {
	db *gorm.DB
}

func NewDefaultEvidenceRepository(db *gorm.DB) *DefaultEvidenceRepository {
	return &DefaultEvidenceRepository{db: db}
}

func (r *DefaultEvidenceRepository) AddEvidence(evidence *domain.Evidence) error {
	evidenceModel := mappers.ToGORMEvidence(evidence)
	return r.db.Create(&evidenceModel).Error
}

func (r *DefaultEvidenceRepository) GetDisputeEvidence(disputeID string) ([]*domain.Evidence, error) {
	var evidenceModels []models.EvidenceModel
	if err := r.db.Model(&models.EvidenceModel{}).
		Where("dispute_id = ?", disputeID).
		Order("uploaded_at ASC").
		Find(&evidenceModels).Error; err != nil {
		return nil, err
	}

	evidence := make([]*domain.Evidence, len(evidenceModels))
	for i, evidenceModel := range evidenceModels {
		evidence[i] = mappers.ToDomainEvidence(&evidenceModel)
	}
	return evidence, nil
}
