package arbiter

import (
	"github.com/escrowline/dispute-service/internal/domain"
)

const defaultCandidateLimit = 5

// SelectCandidates returns active arbiters eligible for the category, ordered
// by rating then resolved cases. An explicit specialization overrides the
// category mapping.
func (uc *DefaultAssignmentUsecase) SelectCandidates(
	category domain.DisputeCategory,
	specialization *domain.ArbiterSpecialization,
	limit int,
) ([]*domain.Arbiter, error) {
	spec := domain.SpecializationForCategory(category)
	if specialization != nil {
		spec = *specialization
	}
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	return uc.arbiterRepo.SelectCandidates(spec, limit)
}
