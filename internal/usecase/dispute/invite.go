package dispute

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SendInvite marks the respondent invitation as dispatched. The actual
// message delivery belongs to the layer consuming dispute events.
func (uc *DefaultDisputeUsecase) SendInvite(disputeID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	return uc.applyTransition(&transitionOp{
		Dispute: dispute,
		Events:  []domain.Event{domain.EventSendInvite},
	})
}

// AcceptInvite binds the respondent to the dispute and moves it straight to
// awaiting deposits.
func (uc *DefaultDisputeUsecase) AcceptInvite(disputeID, respondentID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if respondentID == dispute.InitiatorID {
		return status.Error(codes.FailedPrecondition, domain.ErrInvalidParty.Error())
	}
	dispute.RespondentID = &respondentID
	return uc.applyTransition(&transitionOp{
		Dispute: dispute,
		Events:  []domain.Event{domain.EventAcceptInvite, domain.EventRequestDeposits},
	})
}
