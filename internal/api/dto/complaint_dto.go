package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// SubmitComplaintRequest payload.
type SubmitComplaintRequest struct {
	Department  string `json:"department"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

// UpdateStatusRequest payload for the admin status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ComplaintResponse is the citizen-facing view of a complaint.
type ComplaintResponse struct {
	ID          int64             `json:"id"`
	Department  domain.Department `json:"department"`
	Region      domain.Region     `json:"region"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// AdminComplaintResponse adds submitter identity for the admin view.
// Submitter fields are null when the owning account no longer resolves.
type AdminComplaintResponse struct {
	ComplaintResponse
	OwnerID        int64   `json:"owner_id"`
	SubmitterName  *string `json:"submitter_name"`
	SubmitterEmail *string `json:"submitter_email"`
}

// MetaResponse exposes the closed department/region enumerations to forms.
type MetaResponse struct {
	Departments []domain.Department `json:"departments"`
	Regions     []domain.Region     `json:"regions"`
}

// NewComplaintResponse maps a domain complaint.
func NewComplaintResponse(c *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		Department:  c.Department,
		Region:      c.Region,
		Description: c.Description,
		Status:      c.Status,
		SubmittedAt: c.SubmittedAt,
	}
}

// NewAdminComplaintResponse maps an enriched complaint.
func NewAdminComplaintResponse(c *domain.ComplaintWithSubmitter) AdminComplaintResponse {
	return AdminComplaintResponse{
		ComplaintResponse: NewComplaintResponse(&c.Complaint),
		OwnerID:           c.OwnerID,
		SubmitterName:     c.SubmitterName,
		SubmitterEmail:    c.SubmitterEmail,
	}
}
