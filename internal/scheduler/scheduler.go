package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/metrics"
)

// Scheduler periodically scans disputes whose deadline has passed and applies
// the involuntary transition for their phase. Every per-dispute update is an
// independent compare-and-swap save, so a scan racing a user-triggered
// transition on the same dispute loses cleanly with ErrConflict and moves on.
type Scheduler struct {
	disputeRepo domain.DisputeRepository
	machine     *domain.StateMachine
	publisher   domain.EventPublisher
	Metrics     *metrics.DisputeMetrics
	interval    time.Duration
	logger      *slog.Logger
}

func NewScheduler(
	disputeRepo domain.DisputeRepository,
	machine *domain.StateMachine,
	publisher domain.EventPublisher,
	m *metrics.DisputeMetrics,
	interval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		disputeRepo: disputeRepo,
		machine:     machine,
		publisher:   publisher,
		Metrics:     m,
		interval:    interval,
		logger:      logger,
	}
}

// Start runs scan cycles until the context is cancelled. An in-flight scan is
// not interrupted.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("starting deadline scheduler", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping deadline scheduler")
			return
		case <-ticker.C:
			if err := s.RunScan(time.Now()); err != nil {
				s.logger.Error("deadline scan failed", "error", err)
			}
		}
	}
}

// RunScan processes every dispute due at now. Errors on one dispute are
// logged and do not abort the rest of the scan.
func (s *Scheduler) RunScan(now time.Time) error {
	if s.Metrics != nil {
		start := time.Now()
		defer func() {
			s.Metrics.ObserveScanDuration(time.Since(start).Seconds())
		}()
	}

	due, err := s.disputeRepo.ListDueDeadlines(now)
	if err != nil {
		return fmt.Errorf("failed to list due deadlines: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	s.logger.Info("processing due deadlines", "count", len(due))

	for _, dispute := range due {
		if err := s.expireOne(dispute, now); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				// Another writer advanced the dispute first; nothing to do.
				continue
			}
			s.logger.Error("failed to process due dispute", "dispute_id", dispute.ID, "status", dispute.Status, "error", err)
		}
	}
	return nil
}

func (s *Scheduler) expireOne(d *domain.Dispute, now time.Time) error {
	expected := d.Status

	var event domain.Event
	switch d.Status {
	case domain.StatusEvidenceUpload:
		// An engaged arbiter forces deliberation on whatever evidence exists;
		// otherwise the dispute dies of the missed deadline.
		event = domain.EventBeginReview
		if d.ArbiterID == nil {
			event = domain.EventExpire
		}
	case domain.StatusUnderReview:
		event = domain.EventExpire
	case domain.StatusResolved:
		event = domain.EventCloseAppealWindow
	default:
		return fmt.Errorf("dispute %s holds a deadline in untimed status %s", d.ID, d.Status)
	}

	if err := s.machine.Apply(d, event, now); err != nil {
		return err
	}
	if err := s.disputeRepo.SaveDispute(d, expected); err != nil {
		return err
	}

	if s.Metrics != nil {
		s.Metrics.RecordStatusTransition(string(expected), string(d.Status))
		if d.Status == domain.StatusExpired {
			s.Metrics.RecordDisputeExpired(string(expected))
		}
	}

	eventType := domain.EventTypeStatusChanged
	if d.Status == domain.StatusExpired {
		eventType = domain.EventTypeDisputeExpired
	}
	if err := s.publisher.PublishDisputeEvent(domain.DisputeEvent{
		Type:       eventType,
		DisputeID:  d.ID,
		FromStatus: expected,
		ToStatus:   d.Status,
		OccurredAt: now,
	}); err != nil {
		s.logger.Error("failed to publish dispute event", "dispute_id", d.ID, "error", err)
	}
	return nil
}
