package dispute

import (
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	disputedto "github.com/escrowline/dispute-service/internal/usecase/dto/dispute"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AddEvidence accepts material from one of the parties while the evidence
// window is open.
func (uc *DefaultDisputeUsecase) AddEvidence(input *disputedto.AddEvidenceInput) (*domain.Evidence, error) {
	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.StatusEvidenceUpload {
		return nil, status.Error(codes.FailedPrecondition, domain.ErrEvidenceClosed.Error())
	}
	if !dispute.IsParty(input.UploaderID) {
		return nil, status.Error(codes.PermissionDenied, domain.ErrInvalidParty.Error())
	}
	kind := domain.EvidenceKind(input.Kind)
	if !kind.Valid() {
		return nil, status.Error(codes.InvalidArgument, "unknown evidence kind")
	}

	evidence := domain.Evidence{
		ID:          uuid.New().String(),
		DisputeID:   dispute.ID,
		UploaderID:  input.UploaderID,
		Kind:        kind,
		Description: input.Description,
		FileHash:    input.FileHash,
		FileURL:     input.FileURL,
		UploadedAt:  time.Now(),
	}
	if err := uc.evidenceRepo.AddEvidence(&evidence); err != nil {
		return nil, err
	}
	return &evidence, nil
}

// BeginReview advances the dispute into arbiter deliberation before the
// evidence deadline; the scheduler forces the same transition at the deadline.
func (uc *DefaultDisputeUsecase) BeginReview(disputeID string) error {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	return uc.applyTransition(&transitionOp{
		Dispute: dispute,
		Events:  []domain.Event{domain.EventBeginReview},
	})
}
