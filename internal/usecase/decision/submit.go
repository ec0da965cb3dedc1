package decision

import (
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SubmitDecision records the assigned arbiter's ruling, resolves the dispute
// and posts the arbiter's earnings. On an appeal review the new ruling
// replaces the original split and finalizes the dispute.
func (uc *DefaultDecisionUsecase) SubmitDecision(input *SubmitDecisionInput) (*domain.Decision, error) {
	if input.InitiatorShare < 0 || input.InitiatorShare > 100 {
		return nil, status.Error(codes.InvalidArgument, domain.ErrInvalidShare.Error())
	}
	if input.Reasoning == "" {
		return nil, status.Error(codes.InvalidArgument, domain.ErrEmptyReasoning.Error())
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.StatusUnderReview && dispute.Status != domain.StatusAppealReview {
		return nil, status.Error(codes.FailedPrecondition, "dispute is not under review")
	}
	if dispute.ArbiterID == nil || *dispute.ArbiterID != input.ArbiterID {
		return nil, status.Error(codes.PermissionDenied, domain.ErrNotAssignedArbiter.Error())
	}

	now := time.Now()
	decision := domain.Decision{
		ID:             uuid.New().String(),
		DisputeID:      dispute.ID,
		ArbiterID:      input.ArbiterID,
		InitiatorShare: input.InitiatorShare,
		Reasoning:      input.Reasoning,
		CreatedAt:      now,
	}

	expected := dispute.Status
	event := domain.EventResolve
	if dispute.Status == domain.StatusAppealReview {
		event = domain.EventAppealResolve
	}

	dispute.InitiatorShare = &decision.InitiatorShare
	dispute.ResolutionText = &decision.Reasoning
	if err := uc.machine.Apply(dispute, event, now); err != nil {
		return nil, err
	}

	// The decision row and the arbiter's stats land in one transaction,
	// before the status flip: if the save below loses its race the dispute
	// is untouched and the ruling can be resubmitted, whereas a resolved
	// dispute must never lack its decision.
	if err := uc.decisionRepo.CreateDecision(&decision, dispute.ArbiterFee); err != nil {
		return nil, err
	}
	if err := uc.disputeRepo.SaveDispute(dispute, expected); err != nil {
		return nil, err
	}

	payout := uc.ComputePayout(dispute)
	if uc.Metrics != nil {
		fee, _ := payout.ArbiterFee.Float64()
		uc.Metrics.RecordDisputeResolved(string(dispute.Category), fee)
		uc.Metrics.RecordStatusTransition(string(expected), string(dispute.Status))
	}
	slog.Info("dispute resolved",
		"dispute_id", dispute.ID,
		"arbiter_id", decision.ArbiterID,
		"initiator_share", decision.InitiatorShare,
		"initiator_amount", payout.InitiatorAmount.StringFixed(2),
		"respondent_amount", payout.RespondentAmount.StringFixed(2),
		"arbiter_fee", payout.ArbiterFee.StringFixed(2),
	)

	go func(event domain.DisputeEvent) {
		if err := uc.publisher.PublishDisputeEvent(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(domain.DisputeEvent{
		Type:           domain.EventTypeDecisionRecorded,
		DisputeID:      dispute.ID,
		FromStatus:     expected,
		ToStatus:       dispute.Status,
		ArbiterID:      decision.ArbiterID,
		InitiatorShare: dispute.InitiatorShare,
		Amount:         dispute.Amount.StringFixed(2),
		OccurredAt:     now,
	})

	return &decision, nil
}

// ComputePayout derives the final partition for a resolved dispute.
func (uc *DefaultDecisionUsecase) ComputePayout(dispute *domain.Dispute) Payout {
	share := 0
	if dispute.InitiatorShare != nil {
		share = *dispute.InitiatorShare
	}
	initiator, respondent := uc.ledger.Payout(dispute.Amount, share)
	return Payout{
		InitiatorAmount:  initiator,
		RespondentAmount: respondent,
		ArbiterFee:       uc.ledger.ArbiterFee(dispute.Amount),
	}
}
