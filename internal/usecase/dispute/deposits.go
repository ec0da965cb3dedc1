package dispute

import (
	"errors"

	"github.com/escrowline/dispute-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MarkDepositPaid records a confirmed deposit for one of the two parties.
// The flag lands as a targeted column update, so both parties can pay
// concurrently without losing a write; whichever payer re-reads both flags
// set advances the dispute into arbiter selection, and the loser of that
// race treats the conflict as already done.
func (uc *DefaultDisputeUsecase) MarkDepositPaid(disputeID, partyID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.StatusAwaitingDeposits {
		return status.Error(codes.FailedPrecondition, "dispute is not awaiting deposits")
	}

	var initiator bool
	switch {
	case partyID == dispute.InitiatorID:
		initiator = true
	case dispute.RespondentID != nil && partyID == *dispute.RespondentID:
		initiator = false
	default:
		return status.Error(codes.PermissionDenied, domain.ErrInvalidParty.Error())
	}

	if err := uc.disputeRepo.SetDepositPaid(disputeID, initiator, domain.StatusAwaitingDeposits); err != nil {
		return err
	}

	// Re-read: the other party may have paid in the meantime.
	dispute, err = uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.StatusAwaitingDeposits {
		return nil
	}
	if !dispute.InitiatorDepositPaid || !dispute.RespondentDepositPaid {
		return nil
	}

	err = uc.applyTransition(&transitionOp{
		Dispute: dispute,
		Events:  []domain.Event{domain.EventDepositsPaid, domain.EventStartSelection},
	})
	if errors.Is(err, domain.ErrConflict) {
		// The other payer advanced the dispute first.
		return nil
	}
	return err
}
