package domain

import "time"

type Event string

const (
	EventSendInvite        Event = "SEND_INVITE"
	EventAcceptInvite      Event = "ACCEPT_INVITE"
	EventRequestDeposits   Event = "REQUEST_DEPOSITS"
	EventDepositsPaid      Event = "DEPOSITS_PAID"
	EventStartSelection    Event = "START_ARBITER_SELECTION"
	EventArbiterChosen     Event = "ARBITER_CHOSEN"
	EventOpenEvidence      Event = "OPEN_EVIDENCE"
	EventBeginReview       Event = "BEGIN_REVIEW"
	EventResolve           Event = "RESOLVE"
	EventAppeal            Event = "APPEAL"
	EventAppealReview      Event = "APPEAL_REVIEW"
	EventAppealResolve     Event = "APPEAL_RESOLVE"
	EventCloseAppealWindow Event = "CLOSE_APPEAL_WINDOW"
	EventCancel            Event = "CANCEL"
	EventRefund            Event = "REFUND"
	EventExpire            Event = "EXPIRE"
)

// Windows bounds the timed phases of a dispute.
type Windows struct {
	Evidence time.Duration
	Decision time.Duration
	Appeal   time.Duration
}

// allowedTransitions is the complete transition table. Any (status, event)
// pair missing here is rejected with InvalidTransitionError; the side
// terminals CANCELLED/REFUNDED/EXPIRED are handled separately because they
// are reachable from ranges of states under guards.
func allowedTransitions() map[DisputeStatus]map[Event]DisputeStatus {
	return map[DisputeStatus]map[Event]DisputeStatus{
		StatusCreated: {
			EventSendInvite: StatusAwaitingInvite,
		},
		StatusAwaitingInvite: {
			EventAcceptInvite: StatusInviteAccepted,
		},
		StatusInviteAccepted: {
			EventRequestDeposits: StatusAwaitingDeposits,
		},
		StatusAwaitingDeposits: {
			EventDepositsPaid: StatusDepositsPaid,
		},
		StatusDepositsPaid: {
			EventStartSelection: StatusChoosingArbiter,
		},
		StatusChoosingArbiter: {
			EventArbiterChosen: StatusArbiterChosen,
		},
		StatusArbiterChosen: {
			EventOpenEvidence: StatusEvidenceUpload,
		},
		StatusEvidenceUpload: {
			EventBeginReview: StatusUnderReview,
			EventExpire:      StatusExpired,
		},
		StatusUnderReview: {
			EventResolve: StatusResolved,
			EventExpire:  StatusExpired,
		},
		StatusResolved: {
			EventAppeal:            StatusAppealed,
			EventCloseAppealWindow: StatusAppealResolved,
		},
		StatusAppealed: {
			EventAppealReview: StatusAppealReview,
		},
		StatusAppealReview: {
			EventAppealResolve: StatusAppealResolved,
		},
	}
}

// StateMachine owns the dispute transition table and the deadline stamping
// attached to timed phases.
type StateMachine struct {
	windows Windows
}

func NewStateMachine(windows Windows) *StateMachine {
	return &StateMachine{windows: windows}
}

// Allowed reports whether event may fire in the given status, ignoring guards.
func (m *StateMachine) Allowed(status DisputeStatus, event Event) bool {
	switch event {
	case EventCancel, EventRefund:
		return !status.IsTerminal()
	}
	_, ok := allowedTransitions()[status][event]
	return ok
}

// Apply fires event against the dispute, mutating status, deadline and
// updatedAt in place. Guard failures and disallowed pairs leave the dispute
// untouched. Persistence (and its compare-and-swap) is the caller's concern.
func (m *StateMachine) Apply(d *Dispute, event Event, now time.Time) error {
	switch event {
	case EventCancel:
		if d.Status.IsTerminal() {
			return &InvalidTransitionError{From: d.Status, Event: event}
		}
		if d.InitiatorDepositPaid || d.RespondentDepositPaid {
			return ErrDepositPaid
		}
		return m.settle(d, StatusCancelled, nil, now)
	case EventRefund:
		if d.Status.IsTerminal() {
			return &InvalidTransitionError{From: d.Status, Event: event}
		}
		if !d.InitiatorDepositPaid && !d.RespondentDepositPaid {
			return ErrNoDepositPaid
		}
		return m.settle(d, StatusRefunded, nil, now)
	}

	next, ok := allowedTransitions()[d.Status][event]
	if !ok {
		return &InvalidTransitionError{From: d.Status, Event: event}
	}

	switch event {
	case EventDepositsPaid:
		if !d.InitiatorDepositPaid || !d.RespondentDepositPaid {
			return ErrDepositsPending
		}
	case EventExpire:
		if d.Deadline == nil {
			return &InvalidTransitionError{From: d.Status, Event: event}
		}
		if now.Before(*d.Deadline) {
			return ErrDeadlineNotReached
		}
	case EventCloseAppealWindow:
		if d.Deadline != nil && now.Before(*d.Deadline) {
			return ErrDeadlineNotReached
		}
	case EventAppeal:
		if d.AppealCount >= 1 {
			return ErrAppealExhausted
		}
		if d.Deadline == nil || now.After(*d.Deadline) {
			return ErrAppealWindowClosed
		}
	}

	var deadline *time.Time
	switch next {
	case StatusEvidenceUpload:
		t := now.Add(m.windows.Evidence)
		deadline = &t
	case StatusUnderReview:
		t := now.Add(m.windows.Decision)
		deadline = &t
	case StatusResolved:
		t := now.Add(m.windows.Appeal)
		deadline = &t
	}

	return m.settle(d, next, deadline, now)
}

func (m *StateMachine) settle(d *Dispute, next DisputeStatus, deadline *time.Time, now time.Time) error {
	d.Status = next
	d.Deadline = deadline
	d.UpdatedAt = now
	return nil
}
