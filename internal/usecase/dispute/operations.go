package dispute

import (
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
)

// transitionOp describes one guarded status change: the events to fire in
// order and the status the stored row must still hold for the save to win.
// The repository save is the compare-and-swap; a loser gets ErrConflict and
// the dispute is left exactly as another writer advanced it.
type transitionOp struct {
	Dispute *domain.Dispute
	Events  []domain.Event
}

func (uc *DefaultDisputeUsecase) applyTransition(op *transitionOp) error {
	d := op.Dispute
	expected := d.Status
	now := time.Now()

	for _, event := range op.Events {
		if err := uc.machine.Apply(d, event, now); err != nil {
			return err
		}
	}

	if err := uc.disputeRepo.SaveDispute(d, expected); err != nil {
		return err
	}

	uc.publishStatusChanged(d, expected)
	if uc.Metrics != nil {
		uc.Metrics.RecordStatusTransition(string(expected), string(d.Status))
	}
	return nil
}

// publishStatusChanged hands the event to the notification sink without
// blocking the operation; delivery failures are logged only.
func (uc *DefaultDisputeUsecase) publishStatusChanged(d *domain.Dispute, from domain.DisputeStatus) {
	event := domain.DisputeEvent{
		Type:       domain.EventTypeStatusChanged,
		DisputeID:  d.ID,
		FromStatus: from,
		ToStatus:   d.Status,
		OccurredAt: time.Now(),
	}
	go func(event domain.DisputeEvent) {
		if err := uc.publisher.PublishDisputeEvent(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(event)
}
