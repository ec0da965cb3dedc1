package decision

import (
	"sync"
	"testing"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/escrow"
	arbiteruc "github.com/escrowline/dispute-service/internal/usecase/arbiter"
	disputeuc "github.com/escrowline/dispute-service/internal/usecase/dispute"
	disputedto "github.com/escrowline/dispute-service/internal/usecase/dto/dispute"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEvidenceRepo struct {
	mu       sync.Mutex
	evidence []*domain.Evidence
}

func (r *memEvidenceRepo) AddEvidence(evidence *domain.Evidence) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *evidence
	r.evidence = append(r.evidence, &copied)
	return nil
}

func (r *memEvidenceRepo) GetDisputeEvidence(disputeID string) ([]*domain.Evidence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Evidence
	for _, item := range r.evidence {
		if item.DisputeID == disputeID {
			result = append(result, item)
		}
	}
	return result, nil
}

// Walks a dispute from creation to resolution through the real operations,
// sharing one store across the lifecycle, assignment and decision layers.
func TestDisputeLifecycleEndToEnd(t *testing.T) {
	disputeRepo := newMemDisputeRepo()
	arbiterRepo := newMemArbiterRepo()
	decisionRepo := &memDecisionRepo{arbiterRepo: arbiterRepo}
	evidenceRepo := &memEvidenceRepo{}
	publisher := &stubPublisher{}
	machine := domain.NewStateMachine(domain.Windows{
		Evidence: 72 * time.Hour,
		Decision: 120 * time.Hour,
		Appeal:   24 * time.Hour,
	})
	ledger := escrow.NewLedger(escrow.Config{
		DepositRate:       0.10,
		FeeRate:           0.07,
		MinAmount:         10,
		MaxAmount:         10000,
		RoundingPrecision: 2,
	})

	lifecycle := disputeuc.NewDefaultDisputeUsecase(disputeRepo, evidenceRepo, machine, ledger, publisher, nil)
	assignment := arbiteruc.NewDefaultAssignmentUsecase(disputeRepo, arbiterRepo, decisionRepo, machine, publisher, nil)
	decisions := NewDefaultDecisionUsecase(disputeRepo, decisionRepo, arbiterRepo, machine, ledger, publisher, nil)

	seedArbiter(t, arbiterRepo, "arb-1")

	created, err := lifecycle.CreateDispute(&disputedto.CreateDisputeInput{
		InitiatorID:        "user-init",
		RespondentUsername: "counterparty",
		Amount:             decimal.NewFromInt(200),
		Description:        "undelivered order",
		Category:           "goods_sale",
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", created.Deposit.StringFixed(2))
	assert.Equal(t, "14.00", created.ArbiterFee.StringFixed(2))

	require.NoError(t, lifecycle.SendInvite(created.ID))
	require.NoError(t, lifecycle.AcceptInvite(created.ID, "user-resp"))
	require.NoError(t, lifecycle.MarkDepositPaid(created.ID, "user-init"))
	require.NoError(t, lifecycle.MarkDepositPaid(created.ID, "user-resp"))

	stored, err := disputeRepo.GetDisputeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusChoosingArbiter, stored.Status)

	require.NoError(t, assignment.Assign(created.ID, "arb-1"))

	_, err = lifecycle.AddEvidence(&disputedto.AddEvidenceInput{
		DisputeID:   created.ID,
		UploaderID:  "user-init",
		Kind:        "text",
		Description: "order was never shipped",
	})
	require.NoError(t, err)

	require.NoError(t, lifecycle.BeginReview(created.ID))

	_, err = decisions.SubmitDecision(&SubmitDecisionInput{
		DisputeID:      created.ID,
		ArbiterID:      "arb-1",
		InitiatorShare: 60,
		Reasoning:      "partial delivery confirmed by the courier log",
	})
	require.NoError(t, err)

	stored, err = disputeRepo.GetDisputeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, stored.Status)

	payout := decisions.ComputePayout(stored)
	assert.Equal(t, "14.00", payout.ArbiterFee.StringFixed(2))
	assert.Equal(t, "111.60", payout.InitiatorAmount.StringFixed(2))
	assert.Equal(t, "74.40", payout.RespondentAmount.StringFixed(2))
}
