package domain

import "time"

type EventType string

const (
	EventTypeDisputeCreated   EventType = "DISPUTE_CREATED"
	EventTypeStatusChanged    EventType = "STATUS_CHANGED"
	EventTypeDecisionRecorded EventType = "DECISION_RECORDED"
	EventTypeDisputeExpired   EventType = "DISPUTE_EXPIRED"
)

// DisputeEvent is the payload handed to the notification sink. The core never
// formats user-facing text; delivery and rendering belong to the messaging
// layer consuming these events.
type DisputeEvent struct {
	Type           EventType     `json:"type"`
	DisputeID      string        `json:"dispute_id"`
	FromStatus     DisputeStatus `json:"from_status,omitempty"`
	ToStatus       DisputeStatus `json:"to_status,omitempty"`
	ArbiterID      string        `json:"arbiter_id,omitempty"`
	InitiatorShare *int          `json:"initiator_share,omitempty"`
	Amount         string        `json:"amount,omitempty"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

type EventPublisher interface {
	PublishDisputeEvent(event DisputeEvent) error
}
