package arbiter

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memDisputeRepo struct {
	mu       sync.Mutex
	disputes map[string]*domain.Dispute
}

func newMemDisputeRepo() *memDisputeRepo {
	return &memDisputeRepo{disputes: make(map[string]*domain.Dispute)}
}

func (r *memDisputeRepo) CreateDispute(dispute *domain.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *dispute
	r.disputes[dispute.ID] = &copied
	return nil
}

func (r *memDisputeRepo) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.disputes[disputeID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *memDisputeRepo) SaveDispute(dispute *domain.Dispute, expectedStatus domain.DisputeStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.disputes[dispute.ID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	if stored.Status != expectedStatus {
		return domain.ErrConflict
	}
	copied := *dispute
	r.disputes[dispute.ID] = &copied
	return nil
}

func (r *memDisputeRepo) SetDepositPaid(disputeID string, initiator bool, expectedStatus domain.DisputeStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.disputes[disputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	if stored.Status != expectedStatus {
		return domain.ErrConflict
	}
	if initiator {
		stored.InitiatorDepositPaid = true
	} else {
		stored.RespondentDepositPaid = true
	}
	return nil
}

func (r *memDisputeRepo) ListDueDeadlines(now time.Time) ([]*domain.Dispute, error) {
	return nil, nil
}

func (r *memDisputeRepo) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
	return nil, 0, nil
}

type memArbiterRepo struct {
	mu       sync.Mutex
	arbiters map[string]*domain.Arbiter
}

func newMemArbiterRepo() *memArbiterRepo {
	return &memArbiterRepo{arbiters: make(map[string]*domain.Arbiter)}
}

func (r *memArbiterRepo) CreateArbiter(arbiter *domain.Arbiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *arbiter
	r.arbiters[arbiter.ID] = &copied
	return nil
}

func (r *memArbiterRepo) GetArbiterByID(arbiterID string) (*domain.Arbiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.arbiters[arbiterID]
	if !ok {
		return nil, domain.ErrArbiterNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *memArbiterRepo) SelectCandidates(specialization domain.ArbiterSpecialization, limit int) ([]*domain.Arbiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Arbiter
	for _, stored := range r.arbiters {
		if !stored.IsActive {
			continue
		}
		if stored.Specialization != specialization && stored.Specialization != domain.SpecGeneral {
			continue
		}
		copied := *stored
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].CasesResolved > matched[j].CasesResolved
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memArbiterRepo) UpdateArbiterStats(arbiterID string, casesIncrement int, earned decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.arbiters[arbiterID]
	if !ok {
		return domain.ErrArbiterNotFound
	}
	stored.CasesResolved += casesIncrement
	stored.TotalEarned = stored.TotalEarned.Add(earned)
	return nil
}

type memDecisionRepo struct {
	mu        sync.Mutex
	decisions []*domain.Decision
}

func (r *memDecisionRepo) CreateDecision(decision *domain.Decision, earned decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *decision
	r.decisions = append(r.decisions, &copied)
	return nil
}

func (r *memDecisionRepo) GetLatestDecision(disputeID string) (*domain.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.decisions) - 1; i >= 0; i-- {
		if r.decisions[i].DisputeID == disputeID {
			copied := *r.decisions[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrDecisionNotFound
}

func (r *memDecisionRepo) MarkAppealed(decisionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, decision := range r.decisions {
		if decision.ID == decisionID {
			decision.IsAppealed = true
			return nil
		}
	}
	return domain.ErrDecisionNotFound
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.DisputeEvent
}

func (p *stubPublisher) PublishDisputeEvent(event domain.DisputeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newTestUsecase() (*DefaultAssignmentUsecase, *memDisputeRepo, *memArbiterRepo, *memDecisionRepo) {
	disputeRepo := newMemDisputeRepo()
	arbiterRepo := newMemArbiterRepo()
	decisionRepo := &memDecisionRepo{}
	machine := domain.NewStateMachine(domain.Windows{
		Evidence: 72 * time.Hour,
		Decision: 120 * time.Hour,
		Appeal:   24 * time.Hour,
	})
	uc := NewDefaultAssignmentUsecase(disputeRepo, arbiterRepo, decisionRepo, machine, &stubPublisher{}, nil)
	return uc, disputeRepo, arbiterRepo, decisionRepo
}

func seedDispute(t *testing.T, repo *memDisputeRepo, status domain.DisputeStatus) *domain.Dispute {
	t.Helper()
	respondent := "user-resp"
	dispute := &domain.Dispute{
		ID:           "disp-1",
		InitiatorID:  "user-init",
		RespondentID: &respondent,
		Amount:       decimal.NewFromInt(200),
		Category:     domain.CategoryGoodsSale,
		Status:       status,
	}
	require.NoError(t, repo.CreateDispute(dispute))
	return dispute
}

func seedArbiter(t *testing.T, repo *memArbiterRepo, id string, spec domain.ArbiterSpecialization, rating float64, cases int) {
	t.Helper()
	require.NoError(t, repo.CreateArbiter(&domain.Arbiter{
		ID:             id,
		Specialization: spec,
		Rating:         rating,
		CasesResolved:  cases,
		IsActive:       true,
	}))
}

func TestAssignOpensEvidenceWindow(t *testing.T) {
	uc, disputeRepo, arbiterRepo, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)
	seedArbiter(t, arbiterRepo, "arb-1", domain.SpecGoodsElectronics, 4.8, 12)

	require.NoError(t, uc.Assign(dispute.ID, "arb-1"))

	stored, err := disputeRepo.GetDisputeByID(dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEvidenceUpload, stored.Status)
	require.NotNil(t, stored.ArbiterID)
	assert.Equal(t, "arb-1", *stored.ArbiterID)
	require.NotNil(t, stored.Deadline)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), *stored.Deadline, time.Minute)
}

func TestAssignRejectsSecondArbiter(t *testing.T) {
	uc, disputeRepo, arbiterRepo, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)
	seedArbiter(t, arbiterRepo, "arb-1", domain.SpecGeneral, 4.0, 3)
	seedArbiter(t, arbiterRepo, "arb-2", domain.SpecGeneral, 4.5, 7)

	require.NoError(t, uc.Assign(dispute.ID, "arb-1"))
	err := uc.Assign(dispute.ID, "arb-2")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestAssignRejectsInactiveArbiter(t *testing.T) {
	uc, disputeRepo, arbiterRepo, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)
	require.NoError(t, arbiterRepo.CreateArbiter(&domain.Arbiter{
		ID:             "arb-1",
		Specialization: domain.SpecGeneral,
		IsActive:       false,
	}))

	err := uc.Assign(dispute.ID, "arb-1")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestAssignRejectsDisputeParty(t *testing.T) {
	uc, disputeRepo, arbiterRepo, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)
	seedArbiter(t, arbiterRepo, "user-resp", domain.SpecGeneral, 5.0, 20)

	err := uc.Assign(dispute.ID, "user-resp")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestAssignOnAppealExcludesOriginalArbiter(t *testing.T) {
	uc, disputeRepo, arbiterRepo, decisionRepo := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusAppealed)
	seedArbiter(t, arbiterRepo, "arb-1", domain.SpecGeneral, 4.2, 9)
	seedArbiter(t, arbiterRepo, "arb-2", domain.SpecGeneral, 4.0, 5)
	require.NoError(t, decisionRepo.CreateDecision(&domain.Decision{
		ID:        "dec-1",
		DisputeID: dispute.ID,
		ArbiterID: "arb-1",
	}, decimal.Zero))

	err := uc.Assign(dispute.ID, "arb-1")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	require.NoError(t, uc.Assign(dispute.ID, "arb-2"))
	stored, err := disputeRepo.GetDisputeByID(dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAppealReview, stored.Status)
	require.NotNil(t, stored.ArbiterID)
	assert.Equal(t, "arb-2", *stored.ArbiterID)
}

func TestAssignRandomSkipsIneligibleCandidates(t *testing.T) {
	uc, disputeRepo, arbiterRepo, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)

	// A party and an inactive arbiter surround the single eligible one.
	seedArbiter(t, arbiterRepo, "user-init", domain.SpecGoodsElectronics, 5.0, 30)
	require.NoError(t, arbiterRepo.CreateArbiter(&domain.Arbiter{
		ID:             "arb-sleeping",
		Specialization: domain.SpecGoodsElectronics,
		Rating:         4.9,
		IsActive:       false,
	}))
	seedArbiter(t, arbiterRepo, "arb-only", domain.SpecGeneral, 3.1, 2)

	require.NoError(t, uc.AssignRandom(dispute.ID))

	stored, err := disputeRepo.GetDisputeByID(dispute.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ArbiterID)
	assert.Equal(t, "arb-only", *stored.ArbiterID)
	assert.Equal(t, domain.StatusEvidenceUpload, stored.Status)
}

func TestAssignRandomNoCandidates(t *testing.T) {
	uc, disputeRepo, _, _ := newTestUsecase()
	dispute := seedDispute(t, disputeRepo, domain.StatusChoosingArbiter)

	err := uc.AssignRandom(dispute.ID)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSelectCandidatesOrderingAndLimit(t *testing.T) {
	uc, _, arbiterRepo, _ := newTestUsecase()
	seedArbiter(t, arbiterRepo, "arb-low", domain.SpecGoodsElectronics, 3.5, 40)
	seedArbiter(t, arbiterRepo, "arb-top", domain.SpecGoodsElectronics, 4.9, 10)
	seedArbiter(t, arbiterRepo, "arb-mid", domain.SpecGeneral, 4.9, 4)
	seedArbiter(t, arbiterRepo, "arb-offspec", domain.SpecRealEstate, 5.0, 50)

	candidates, err := uc.SelectCandidates(domain.CategoryGoodsSale, nil, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "arb-top", candidates[0].ID)
	assert.Equal(t, "arb-mid", candidates[1].ID)
	assert.Equal(t, "arb-low", candidates[2].ID)

	candidates, err = uc.SelectCandidates(domain.CategoryGoodsSale, nil, 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestSelectCandidatesSpecializationOverride(t *testing.T) {
	uc, _, arbiterRepo, _ := newTestUsecase()
	seedArbiter(t, arbiterRepo, "arb-goods", domain.SpecGoodsElectronics, 4.0, 5)
	seedArbiter(t, arbiterRepo, "arb-estate", domain.SpecRealEstate, 4.0, 5)

	override := domain.SpecRealEstate
	candidates, err := uc.SelectCandidates(domain.CategoryGoodsSale, &override, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "arb-estate", candidates[0].ID)
}
