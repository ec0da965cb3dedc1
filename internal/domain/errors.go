package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDisputeNotFound    = errors.New("dispute not found")
	ErrArbiterNotFound    = errors.New("arbiter not found")
	ErrDecisionNotFound   = errors.New("decision not found")
	ErrConflict           = errors.New("dispute status already advanced")
	ErrAmountOutOfBounds  = errors.New("dispute amount out of configured bounds")
	ErrInvalidCategory    = errors.New("unknown dispute category")
	ErrInvalidShare       = errors.New("initiator share must be within [0,100]")
	ErrEmptyReasoning     = errors.New("decision reasoning must not be empty")
	ErrNotAssignedArbiter = errors.New("arbiter is not assigned to this dispute")
	ErrAlreadyAssigned    = errors.New("dispute already has an assigned arbiter")
	ErrInvalidParty       = errors.New("user is not an eligible party for this operation")
	ErrArbiterInactive    = errors.New("arbiter is not active")
	ErrNoCandidates       = errors.New("no eligible arbiter candidates")
	ErrDepositsPending    = errors.New("both deposits must be paid")
	ErrDepositPaid        = errors.New("cannot cancel after a deposit was paid")
	ErrNoDepositPaid      = errors.New("refund requires at least one paid deposit")
	ErrAppealExhausted    = errors.New("appeal limit reached")
	ErrAppealWindowClosed = errors.New("appeal window has closed")
	ErrDeadlineNotReached = errors.New("deadline has not passed yet")
	ErrEvidenceClosed     = errors.New("evidence upload is not open")
)

// InvalidTransitionError reports an event fired against a status that does
// not permit it.
type InvalidTransitionError struct {
	From  DisputeStatus
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %s not allowed in status %s", e.Event, e.From)
}
