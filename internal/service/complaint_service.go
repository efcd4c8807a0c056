package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// ComplaintService coordinates the complaint lifecycle.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	UserRepo      repository.UserRepository
	Dispatcher    events.Dispatcher
}

// SubmitInput describes a complaint submission payload.
type SubmitInput struct {
	Department  string
	Region      string
	Description string
}

// ListFilter narrows the admin listing. Empty values impose no constraint and
// are passed through as opaque equality predicates otherwise.
type ListFilter struct {
	Department string
	Region     string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit validates and persists a new complaint for the actor. New complaints
// always start in the Pending status.
func (s *ComplaintService) Submit(ctx context.Context, actor auth.Principal, input SubmitInput) (*domain.Complaint, error) {
	department, err := domain.ParseDepartment(input.Department)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid department", map[string]any{"department": input.Department})
	}
	region, err := domain.ParseRegion(input.Region)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid region", map[string]any{"region": input.Region})
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}

	if _, err := s.users.GetByID(ctx, actor.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnknownOwner(actor.UserID)
		}
		return nil, err
	}

	complaint := &domain.Complaint{
		OwnerID:     actor.UserID,
		Department:  department,
		Region:      region,
		Description: description,
		Status:      domain.StatusPending,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintSubmitted,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: actor.UserID, Role: actor.Role},
		Payload: events.ComplaintSubmittedPayload{
			Department:  complaint.Department,
			Region:      complaint.Region,
			Description: complaint.Description,
		},
	})
	return complaint, nil
}

// ListByOwner returns the owner's complaints, newest first.
func (s *ComplaintService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Complaint, error) {
	return s.complaints.ListByOwner(ctx, ownerID)
}

// ListFiltered returns complaints matching every supplied non-empty filter,
// enriched with submitter identity, newest first.
func (s *ComplaintService) ListFiltered(ctx context.Context, filter ListFilter) ([]domain.ComplaintWithSubmitter, error) {
	repoFilter := repository.ComplaintFilter{}
	if dept := strings.TrimSpace(filter.Department); dept != "" {
		repoFilter.Department = &dept
	}
	if region := strings.TrimSpace(filter.Region); region != "" {
		repoFilter.Region = &region
	}
	return s.complaints.ListWithFilter(ctx, repoFilter)
}

// UpdateStatus overwrites a complaint's status with the provided value. The
// target value is deliberately unvalidated, matching the admin workflow.
func (s *ComplaintService) UpdateStatus(ctx context.Context, actor auth.Principal, id int64, status string) (*domain.Complaint, error) {
	current, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}

	updated, err := s.complaints.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusUpdated,
		ComplaintID: updated.ID,
		Actor:       events.Actor{UserID: actor.UserID, Role: actor.Role},
		Payload: events.ComplaintStatusUpdatedPayload{
			OldStatus: current.Status,
			NewStatus: updated.Status,
			OwnerID:   updated.OwnerID,
		},
	})
	return updated, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
