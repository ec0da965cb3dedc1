package decision

import (
	"errors"
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FileAppeal re-opens a resolved dispute once, inside the appeal window. The
// original arbiter is unbound so assignment can pick a replacement.
func (uc *DefaultDecisionUsecase) FileAppeal(disputeID, requesterID, reason string) error {
	if reason == "" {
		return status.Error(codes.InvalidArgument, domain.ErrEmptyReasoning.Error())
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if !dispute.IsParty(requesterID) {
		return status.Error(codes.PermissionDenied, domain.ErrInvalidParty.Error())
	}

	expected := dispute.Status
	now := time.Now()
	if err := uc.machine.Apply(dispute, domain.EventAppeal, now); err != nil {
		switch {
		case errors.Is(err, domain.ErrAppealExhausted), errors.Is(err, domain.ErrAppealWindowClosed):
			return status.Error(codes.FailedPrecondition, err.Error())
		}
		return err
	}
	dispute.AppealCount++
	dispute.ArbiterID = nil

	// Flag the ruling before the status flip. MarkAppealed is idempotent, so
	// a failed save leaves the dispute RESOLVED and the appeal retryable;
	// the reverse order would strand an APPEALED dispute whose decision was
	// never flagged.
	original, err := uc.decisionRepo.GetLatestDecision(dispute.ID)
	if err != nil {
		return err
	}
	if err := uc.decisionRepo.MarkAppealed(original.ID); err != nil {
		return err
	}

	if err := uc.disputeRepo.SaveDispute(dispute, expected); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordStatusTransition(string(expected), string(dispute.Status))
	}

	go func(event domain.DisputeEvent) {
		if err := uc.publisher.PublishDisputeEvent(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(domain.DisputeEvent{
		Type:       domain.EventTypeStatusChanged,
		DisputeID:  dispute.ID,
		FromStatus: expected,
		ToStatus:   dispute.Status,
		OccurredAt: now,
	})
	return nil
}
