package events

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted     EventType = "complaint_submitted"
	EventComplaintStatusUpdated EventType = "complaint_status_updated"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID int64       `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintSubmittedPayload payload.
type ComplaintSubmittedPayload struct {
	Department  domain.Department `json:"department"`
	Region      domain.Region     `json:"region"`
	Description string            `json:"description"`
}

// ComplaintStatusUpdatedPayload payload.
type ComplaintStatusUpdatedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	OwnerID   int64  `json:"owner_id"`
}
