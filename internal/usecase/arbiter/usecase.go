package arbiter

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/metrics"
)

type AssignmentUsecase interface {
	SelectCandidates(category domain.DisputeCategory, specialization *domain.ArbiterSpecialization, limit int) ([]*domain.Arbiter, error)
	Assign(disputeID, arbiterID string) error
	AssignRandom(disputeID string) error
}

type DefaultAssignmentUsecase struct {
	disputeRepo  domain.DisputeRepository
	arbiterRepo  domain.ArbiterRepository
	decisionRepo domain.DecisionRepository
	machine      *domain.StateMachine
	publisher    domain.EventPublisher
	Metrics      *metrics.DisputeMetrics
}

func NewDefaultAssignmentUsecase(
	disputeRepo domain.DisputeRepository,
	arbiterRepo domain.ArbiterRepository,
	decisionRepo domain.DecisionRepository,
	machine *domain.StateMachine,
	publisher domain.EventPublisher,
	m *metrics.DisputeMetrics,
) *DefaultAssignmentUsecase {
	return &DefaultAssignmentUsecase{
		disputeRepo:  disputeRepo,
		arbiterRepo:  arbiterRepo,
		decisionRepo: decisionRepo,
		machine:      machine,
		publisher:    publisher,
		Metrics:      m,
	}
}
