package arbiter

import (
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
)

func (uc *DefaultAssignmentUsecase) applyTransition(d *domain.Dispute, expected domain.DisputeStatus, events []domain.Event) error {
	now := time.Now()
	for _, event := range events {
		if err := uc.machine.Apply(d, event, now); err != nil {
			return err
		}
	}
	if err := uc.disputeRepo.SaveDispute(d, expected); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordStatusTransition(string(expected), string(d.Status))
	}

	arbiterID := ""
	if d.ArbiterID != nil {
		arbiterID = *d.ArbiterID
	}
	go func(event domain.DisputeEvent) {
		if err := uc.publisher.PublishDisputeEvent(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(domain.DisputeEvent{
		Type:       domain.EventTypeStatusChanged,
		DisputeID:  d.ID,
		FromStatus: expected,
		ToStatus:   d.Status,
		ArbiterID:  arbiterID,
		OccurredAt: now,
	})
	return nil
}
