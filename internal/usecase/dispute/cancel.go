package dispute

import (
	"errors"

	"github.com/escrowline/dispute-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CancelDispute voluntarily terminates the dispute. Before any deposit was
// paid it lands in CANCELLED; once collateral is held the cancellation
// requires reversal and lands in REFUNDED instead.
func (uc *DefaultDisputeUsecase) CancelDispute(disputeID, requesterID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if !dispute.IsParty(requesterID) {
		return status.Error(codes.PermissionDenied, domain.ErrInvalidParty.Error())
	}

	op := &transitionOp{
		Dispute: dispute,
		Events:  []domain.Event{domain.EventCancel},
	}
	if dispute.InitiatorDepositPaid || dispute.RespondentDepositPaid {
		op.Events = []domain.Event{domain.EventRefund}
	}

	if err := uc.applyTransition(op); err != nil {
		var invalid *domain.InvalidTransitionError
		if errors.As(err, &invalid) {
			return status.Error(codes.FailedPrecondition, invalid.Error())
		}
		return err
	}
	return nil
}
