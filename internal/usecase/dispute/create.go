package dispute

import (
	"log/slog"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	disputedto "github.com/escrowline/dispute-service/internal/usecase/dto/dispute"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateDispute validates the commercial terms, derives deposit and arbiter
// fee from the amount and stores the dispute in CREATED.
func (uc *DefaultDisputeUsecase) CreateDispute(input *disputedto.CreateDisputeInput) (*domain.Dispute, error) {
	if err := uc.ledger.ValidateAmount(input.Amount); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	category := domain.DisputeCategory(input.Category)
	if !category.Valid() {
		return nil, status.Error(codes.InvalidArgument, domain.ErrInvalidCategory.Error())
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dispute := domain.Dispute{
		ID:                 idGenerator(),
		InitiatorID:        input.InitiatorID,
		RespondentUsername: input.RespondentUsername,
		Amount:             input.Amount,
		Description:        input.Description,
		Category:           category,
		Deposit:            uc.ledger.Deposit(input.Amount),
		ArbiterFee:         uc.ledger.ArbiterFee(input.Amount),
		Status:             domain.StatusCreated,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.disputeRepo.CreateDispute(&dispute); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		amount, _ := dispute.Amount.Float64()
		uc.Metrics.RecordDisputeCreated(string(dispute.Category), amount)
	}

	go func(event domain.DisputeEvent) {
		if err := uc.publisher.PublishDisputeEvent(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(domain.DisputeEvent{
		Type:       domain.EventTypeDisputeCreated,
		DisputeID:  dispute.ID,
		ToStatus:   dispute.Status,
		Amount:     dispute.Amount.StringFixed(2),
		OccurredAt: now,
	})

	return &dispute, nil
}
