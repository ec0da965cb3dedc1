package dispute

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/escrow"
	"github.com/escrowline/dispute-service/internal/infrastructure/metrics"
	disputedto "github.com/escrowline/dispute-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	CreateDispute(input *disputedto.CreateDisputeInput) (*domain.Dispute, error)
	SendInvite(disputeID string) error
	AcceptInvite(disputeID, respondentID string) error
	MarkDepositPaid(disputeID, partyID string) error
	CancelDispute(disputeID, requesterID string) error
	AddEvidence(input *disputedto.AddEvidenceInput) (*domain.Evidence, error)
	BeginReview(disputeID string) error
	GetDisputeByID(disputeID string) (*domain.Dispute, error)
	GetDisputes(input *disputedto.GetDisputesInput) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeUsecase struct {
	disputeRepo  domain.DisputeRepository
	evidenceRepo domain.EvidenceRepository
	machine      *domain.StateMachine
	ledger       *escrow.Ledger
	publisher    domain.EventPublisher
	Metrics      *metrics.DisputeMetrics
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	evidenceRepo domain.EvidenceRepository,
	machine *domain.StateMachine,
	ledger *escrow.Ledger,
	publisher domain.EventPublisher,
	m *metrics.DisputeMetrics,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo:  disputeRepo,
		evidenceRepo: evidenceRepo,
		machine:      machine,
		ledger:       ledger,
		publisher:    publisher,
		Metrics:      m,
	}
}
