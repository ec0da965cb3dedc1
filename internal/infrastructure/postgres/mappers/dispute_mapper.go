package mappers

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
)

func ToGORMDispute(d *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:                    d.ID,
		InitiatorID:           d.InitiatorID,
		RespondentID:          d.RespondentID,
		RespondentUsername:    d.RespondentUsername,
		Amount:                d.Amount,
		Description:           d.Description,
		Category:              string(d.Category),
		Deposit:               d.Deposit,
		ArbiterFee:            d.ArbiterFee,
		Status:                string(d.Status),
		ArbiterID:             d.ArbiterID,
		InitiatorDepositPaid:  d.InitiatorDepositPaid,
		RespondentDepositPaid: d.RespondentDepositPaid,
		InitiatorShare:        d.InitiatorShare,
		ResolutionText:        d.ResolutionText,
		AppealCount:           d.AppealCount,
		Deadline:              d.Deadline,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func ToDomainDispute(m *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:                    m.ID,
		InitiatorID:           m.InitiatorID,
		RespondentID:          m.RespondentID,
		RespondentUsername:    m.RespondentUsername,
		Amount:                m.Amount,
		Description:           m.Description,
		Category:              domain.DisputeCategory(m.Category),
		Deposit:               m.Deposit,
		ArbiterFee:            m.ArbiterFee,
		Status:                domain.DisputeStatus(m.Status),
		ArbiterID:             m.ArbiterID,
		InitiatorDepositPaid:  m.InitiatorDepositPaid,
		RespondentDepositPaid: m.RespondentDepositPaid,
		InitiatorShare:        m.InitiatorShare,
		ResolutionText:        m.ResolutionText,
		AppealCount:           m.AppealCount,
		Deadline:              m.Deadline,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
