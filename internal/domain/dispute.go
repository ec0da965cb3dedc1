package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisputeStatus string

const (
	StatusCreated          DisputeStatus = "CREATED"
	StatusAwaitingInvite   DisputeStatus = "AWAITING_INVITE"
	StatusInviteAccepted   DisputeStatus = "INVITE_ACCEPTED"
	StatusAwaitingDeposits DisputeStatus = "AWAITING_DEPOSITS"
	StatusDepositsPaid     DisputeStatus = "DEPOSITS_PAID"
	StatusChoosingArbiter  DisputeStatus = "CHOOSING_ARBITER"
	StatusArbiterChosen    DisputeStatus = "ARBITER_CHOSEN"
	StatusEvidenceUpload   DisputeStatus = "EVIDENCE_UPLOAD"
	StatusUnderReview      DisputeStatus = "UNDER_REVIEW"
	StatusResolved         DisputeStatus = "RESOLVED"
	StatusAppealed         DisputeStatus = "APPEALED"
	StatusAppealReview     DisputeStatus = "APPEAL_REVIEW"
	StatusAppealResolved   DisputeStatus = "APPEAL_RESOLVED"
	StatusRefunded         DisputeStatus = "REFUNDED"
	StatusCancelled        DisputeStatus = "CANCELLED"
	StatusExpired          DisputeStatus = "EXPIRED"
)

// IsTerminal reports whether no further transition can leave the status.
func (s DisputeStatus) IsTerminal() bool {
	switch s {
	case StatusAppealResolved, StatusRefunded, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

type DisputeCategory string

const (
	CategoryGoodsSale      DisputeCategory = "goods_sale"
	CategoryFreelance      DisputeCategory = "freelance"
	CategoryRental         DisputeCategory = "rental"
	CategoryServices       DisputeCategory = "services"
	CategoryLoan           DisputeCategory = "loan"
	CategorySharedPurchase DisputeCategory = "shared_purchase"
	CategoryOther          DisputeCategory = "other"
)

func (c DisputeCategory) Valid() bool {
	switch c {
	case CategoryGoodsSale, CategoryFreelance, CategoryRental,
		CategoryServices, CategoryLoan, CategorySharedPurchase, CategoryOther:
		return true
	}
	return false
}

type Dispute struct {
	ID                    string
	InitiatorID           string
	RespondentID          *string
	RespondentUsername    string
	Amount                decimal.Decimal
	Description           string
	Category              DisputeCategory
	Deposit               decimal.Decimal
	ArbiterFee            decimal.Decimal
	Status                DisputeStatus
	ArbiterID             *string
	InitiatorDepositPaid  bool
	RespondentDepositPaid bool
	InitiatorShare        *int
	ResolutionText        *string
	AppealCount           int
	Deadline              *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsParty reports whether userID is the initiator or the (accepted) respondent.
func (d *Dispute) IsParty(userID string) bool {
	if d.InitiatorID == userID {
		return true
	}
	return d.RespondentID != nil && *d.RespondentID == userID
}

type GetDisputesFilter struct {
	UserID    *string
	ArbiterID *string
	Status    *DisputeStatus
	Page      int
	Limit     int
}

type DisputeRepository interface {
	CreateDispute(dispute *Dispute) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	// SaveDispute persists the dispute only if its stored status still equals
	// expectedStatus. Returns ErrConflict when another writer advanced it first.
	SaveDispute(dispute *Dispute, expectedStatus DisputeStatus) error
	// SetDepositPaid flips one party's deposit flag as a targeted column
	// update, so two parties paying concurrently can never overwrite each
	// other's flag. Returns ErrConflict when the status moved on.
	SetDepositPaid(disputeID string, initiator bool, expectedStatus DisputeStatus) error
	ListDueDeadlines(now time.Time) ([]*Dispute, error)
	GetDisputes(filter GetDisputesFilter) ([]*Dispute, int64, error)
}
