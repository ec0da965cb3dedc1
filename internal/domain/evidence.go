package domain

import "time"

type EvidenceKind string

const (
	EvidenceText     EvidenceKind = "text"
	EvidencePhoto    EvidenceKind = "photo"
	EvidenceDocument EvidenceKind = "document"
	EvidenceLink     EvidenceKind = "link"
)

func (k EvidenceKind) Valid() bool {
	switch k {
	case EvidenceText, EvidencePhoto, EvidenceDocument, EvidenceLink:
		return true
	}
	return false
}

type Evidence struct {
	ID          string
	DisputeID   string
	UploaderID  string
	Kind        EvidenceKind
	Description string
	FileHash    string
	FileURL     string
	UploadedAt  time.Time
}

type EvidenceRepository interface {
	AddEvidence(evidence *Evidence) error
	GetDisputeEvidence(disputeID string) ([]*Evidence, error)
}
