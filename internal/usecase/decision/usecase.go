package decision

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/escrow"
	"github.com/escrowline/dispute-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type DecisionUsecase interface {
	SubmitDecision(input *SubmitDecisionInput) (*domain.Decision, error)
	FileAppeal(disputeID, requesterID, reason string) error
}

type SubmitDecisionInput struct {
	DisputeID      string
	ArbiterID      string
	InitiatorShare int
	Reasoning      string
}

// Payout is the final partition of the escrowed amount for a ruling.
type Payout struct {
	InitiatorAmount  decimal.Decimal
	RespondentAmount decimal.Decimal
	ArbiterFee       decimal.Decimal
}

type DefaultDecisionUsecase struct {
	disputeRepo  domain.DisputeRepository
	decisionRepo domain.DecisionRepository
	arbiterRepo  domain.ArbiterRepository
	machine      *domain.StateMachine
	ledger       *escrow.Ledger
	publisher    domain.EventPublisher
	Metrics      *metrics.DisputeMetrics
}

func NewDefaultDecisionUsecase(
	disputeRepo domain.DisputeRepository,
	decisionRepo domain.DecisionRepository,
	arbiterRepo domain.ArbiterRepository,
	machine *domain.StateMachine,
	ledger *escrow.Ledger,
	publisher domain.EventPublisher,
	m *metrics.DisputeMetrics,
) *DefaultDecisionUsecase {
	return &DefaultDecisionUsecase{
		disputeRepo:  disputeRepo,
		decisionRepo: decisionRepo,
		arbiterRepo:  arbiterRepo,
		machine:      machine,
		ledger:       ledger,
		publisher:    publisher,
		Metrics:      m,
	}
}
