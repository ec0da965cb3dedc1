package arbiter

import (
	"errors"
	"math/rand"

	"github.com/escrowline/dispute-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Assign binds the chosen arbiter to the dispute. In the normal flow this
// opens the evidence window; on an appealed dispute it starts the appeal
// review with a replacement arbiter.
func (uc *DefaultAssignmentUsecase) Assign(disputeID, arbiterID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}

	appealContext := dispute.Status == domain.StatusAppealed
	if dispute.ArbiterID != nil && !appealContext {
		return status.Error(codes.FailedPrecondition, domain.ErrAlreadyAssigned.Error())
	}

	candidate, err := uc.arbiterRepo.GetArbiterByID(arbiterID)
	if err != nil {
		return err
	}
	if err := uc.checkEligibility(dispute, candidate, appealContext); err != nil {
		return err
	}

	expected := dispute.Status
	dispute.ArbiterID = &candidate.ID

	events := []domain.Event{domain.EventArbiterChosen, domain.EventOpenEvidence}
	if appealContext {
		events = []domain.Event{domain.EventAppealReview}
	}
	return uc.applyTransition(dispute, expected, events)
}

// AssignRandom picks uniformly among the eligible candidates for the
// dispute's category.
func (uc *DefaultAssignmentUsecase) AssignRandom(disputeID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}

	appealContext := dispute.Status == domain.StatusAppealed
	if dispute.ArbiterID != nil && !appealContext {
		return status.Error(codes.FailedPrecondition, domain.ErrAlreadyAssigned.Error())
	}

	candidates, err := uc.arbiterRepo.SelectCandidates(domain.SpecializationForCategory(dispute.Category), defaultCandidateLimit)
	if err != nil {
		return err
	}
	eligible := make([]*domain.Arbiter, 0, len(candidates))
	for _, candidate := range candidates {
		if uc.checkEligibility(dispute, candidate, appealContext) == nil {
			eligible = append(eligible, candidate)
		}
	}
	if len(eligible) == 0 {
		return status.Error(codes.NotFound, domain.ErrNoCandidates.Error())
	}

	chosen := eligible[rand.Intn(len(eligible))]

	expected := dispute.Status
	dispute.ArbiterID = &chosen.ID

	events := []domain.Event{domain.EventArbiterChosen, domain.EventOpenEvidence}
	if appealContext {
		events = []domain.Event{domain.EventAppealReview}
	}
	return uc.applyTransition(dispute, expected, events)
}

// checkEligibility rejects inactive arbiters, dispute parties and, on
// appeal, the arbiter who issued the original ruling.
func (uc *DefaultAssignmentUsecase) checkEligibility(dispute *domain.Dispute, candidate *domain.Arbiter, appealContext bool) error {
	if !candidate.IsActive {
		return status.Error(codes.FailedPrecondition, domain.ErrArbiterInactive.Error())
	}
	if dispute.IsParty(candidate.ID) {
		return status.Error(codes.PermissionDenied, domain.ErrInvalidParty.Error())
	}
	if appealContext {
		original, err := uc.decisionRepo.GetLatestDecision(dispute.ID)
		if err != nil && !errors.Is(err, domain.ErrDecisionNotFound) {
			return err
		}
		if original != nil && original.ArbiterID == candidate.ID {
			return status.Error(codes.FailedPrecondition, domain.ErrAlreadyAssigned.Error())
		}
	}
	return nil
}
