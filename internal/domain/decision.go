package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is immutable once created; IsAppealed flips exactly once when an
// appeal is filed inside the appeal window.
type Decision struct {
	ID             string
	DisputeID      string
	ArbiterID      string
	InitiatorShare int
	Reasoning      string
	CreatedAt      time.Time
	IsAppealed     bool
}

type DecisionRepository interface {
	// CreateDecision stores the decision and posts the arbiter's earnings for
	// the case in the same transaction.
	CreateDecision(decision *Decision, earned decimal.Decimal) error
	// GetLatestDecision returns the most recent decision for the dispute.
	GetLatestDecision(disputeID string) (*Decision, error)
	MarkAppealed(decisionID string) error
}
