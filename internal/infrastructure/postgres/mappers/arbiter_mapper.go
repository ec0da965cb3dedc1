package mappers

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
)

func ToGORMArbiter(a *domain.Arbiter) *models.ArbiterModel {
	return &models.ArbiterModel{
		ID:             a.ID,
		Specialization: string(a.Specialization),
		DepositAmount:  a.DepositAmount,
		Rating:         a.Rating,
		CasesResolved:  a.CasesResolved,
		TotalEarned:    a.TotalEarned,
		IsActive:       a.IsActive,
		RegisteredAt:   a.RegisteredAt,
	}
}

func ToDomainArbiter(m *models.ArbiterModel) *domain.Arbiter {
	return &domain.Arbiter{
		ID:             m.ID,
		Specialization: domain.ArbiterSpecialization(m.Specialization),
		DepositAmount:  m.DepositAmount,
		Rating:         m.Rating,
		CasesResolved:  m.CasesResolved,
		TotalEarned:    m.TotalEarned,
		IsActive:       m.IsActive,
		RegisteredAt:   m.RegisteredAt,
	}
}

func ToGORMDecision(d *domain.Decision) *models.DecisionModel {
	return &models.DecisionModel{
		ID:             d.ID,
		DisputeID:      d.DisputeID,
		ArbiterID:      d.ArbiterID,
		InitiatorShare: d.InitiatorShare,
		Reasoning:      d.Reasoning,
		CreatedAt:      d.CreatedAt,
		IsAppealed:     d.IsAppealed,
	}
}

func ToDomainDecision(m *models.DecisionModel) *domain.Decision {
	return &domain.Decision{
		ID:             m.ID,
		DisputeID:      m.DisputeID,
		ArbiterID:      m.ArbiterID,
		InitiatorShare: m.InitiatorShare,
		Reasoning:      m.Reasoning,
		CreatedAt:      m.CreatedAt,
		IsAppealed:     m.IsAppealed,
	}
}

func ToGORMEvidence(e *domain.Evidence) *models.EvidenceModel {
	return &models.EvidenceModel{
		ID:          e.ID,
		DisputeID:   e.DisputeID,
		UploaderID:  e.UploaderID,
		Kind:        string(e.Kind),
		Description: e.Description,
		FileHash:    e.FileHash,
		FileURL:     e.FileURL,
		UploadedAt:  e.UploadedAt,
	}
}

func ToDomainEvidence(m *models.EvidenceModel) *domain.Evidence {
	return &domain.Evidence{
		ID:          m.ID,
		DisputeID:   m.DisputeID,
		UploaderID:  m.UploaderID,
		Kind:        domain.EvidenceKind(m.Kind),
		Description: m.Description,
		FileHash:    m.FileHash,
		FileURL:     m.FileURL,
		UploadedAt:  m.UploadedAt,
	}
}
