package dispute

import (
	"github.com/escrowline/dispute-service/internal/domain"
	disputedto "github.com/escrowline/dispute-service/internal/usecase/dto/dispute"
)

func (uc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	return uc.disputeRepo.GetDisputeByID(disputeID)
}

func (uc *DefaultDisputeUsecase) GetDisputes(input *disputedto.GetDisputesInput) ([]*domain.Dispute, int64, error) {
	filter := domain.GetDisputesFilter{
		UserID:    input.UserID,
		ArbiterID: input.ArbiterID,
		Page:      input.Page,
		Limit:     input.Limit,
	}
	if input.Status != nil {
		s := domain.DisputeStatus(*input.Status)
		filter.Status = &s
	}
	return uc.disputeRepo.GetDisputes(filter)
}
